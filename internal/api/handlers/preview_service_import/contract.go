package preview_service_import

import (
	"context"

	previewServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/preview_service_import"
)

type PreviewServiceImportUseCase interface {
	Execute(ctx context.Context, req *previewServiceImport.Request) (*previewServiceImport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

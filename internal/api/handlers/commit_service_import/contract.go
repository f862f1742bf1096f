package commit_service_import

import (
	"context"

	commitServiceImport "github.com/m04kA/SMC-SchedulingService/internal/usecase/commit_service_import"
)

type CommitServiceImportUseCase interface {
	Execute(ctx context.Context, req *commitServiceImport.Request) (*commitServiceImport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

package commit_service_import

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	ListActiveNames(ctx context.Context, companyID int64) ([]string, error)
	// Create возвращает ErrDuplicateService, если активная услуга с таким названием уже есть
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder интерфейс для записи доменных метрик
type MetricsRecorder interface {
	RecordImportRows(stage, status string, count int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

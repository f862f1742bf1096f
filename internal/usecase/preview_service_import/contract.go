package preview_service_import

import "context"

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	// ListActiveNames возвращает названия активных услуг компании
	ListActiveNames(ctx context.Context, companyID int64) ([]string, error)
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

package get_fittable_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/schedulingservice"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	// GetByIDs получает активные услуги компании; если какой-то нет, возвращает ErrServiceNotFound
	GetByIDs(ctx context.Context, companyID int64, ids []int64) ([]*domain.Service, error)
}

// SchedulingClient интерфейс клиента сервиса расписаний
type SchedulingClient interface {
	GetOpenSlots(ctx context.Context, companyID int64, date string) (*schedulingservice.OpenSlotsResponse, error)
}

// MetricsRecorder интерфейс для записи доменных метрик
type MetricsRecorder interface {
	RecordFittableSlots(offered, returned int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

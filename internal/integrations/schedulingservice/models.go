package schedulingservice

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// OpenSlotsResponse ответ сервиса расписаний со свободными слотами на день
// Забронированные слоты в ответ не попадают
type OpenSlotsResponse struct {
	CompanyID int64      `json:"company_id"`
	Date      string     `json:"date"`
	Slots     []TimeSlot `json:"slots"`
}

// TimeSlot модель слота из сервиса расписаний
type TimeSlot struct {
	ID        string           `json:"id"`
	StartTime types.TimeString `json:"start_time"`
	EndTime   types.TimeString `json:"end_time"`
}

// ToDomain конвертирует слоты ответа в доменную модель с сохранением порядка
func (r *OpenSlotsResponse) ToDomain() []domain.TimeSlot {
	slots := make([]domain.TimeSlot, len(r.Slots))
	for i, s := range r.Slots {
		slots[i] = domain.TimeSlot{
			ID:        s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		}
	}
	return slots
}

// ErrorResponse модель ошибки от сервиса расписаний
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

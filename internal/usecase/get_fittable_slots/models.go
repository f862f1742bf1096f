package get_fittable_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение слотов, в которые помещается набор услуг
type Request struct {
	UserID          int64     // ID пользователя (для логирования, 0 - аноним)
	CompanyID       int64     // ID компании
	Date            time.Time // Дата (без времени)
	ServiceIDs      []int64   // Выбранные услуги; их длительности суммируются
	DurationMinutes int       // Явная длительность; если > 0, услуги не загружаются
}

// Response модель ответа
type Response struct {
	Date                 time.Time
	CompanyID            int64
	TotalDurationMinutes int // 0 - подбор не требуется, возвращаются все слоты
	SlotDurationMinutes  int // 0 - длительность слота не удалось определить
	SlotsNeeded          int
	TotalSlots           int // Количество свободных слотов до подбора
	Morning              []Slot
	Afternoon            []Slot
	Evening              []Slot
}

// Slot слот, с которого можно начать запись
type Slot struct {
	ID             string
	StartTime      types.TimeString
	EndTime        types.TimeString
	BookingEndTime types.TimeString // Окончание записи с учетом длительности всех услуг
}

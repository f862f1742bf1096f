package get_fittable_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getFittableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_fittable_slots"
)

// FittableSlotsQuery параметры запроса
type FittableSlotsQuery struct {
	Date            string  `validate:"required,datetime=2006-01-02"`
	ServiceIDs      []int64 `validate:"max=20,dive,gt=0"`
	DurationMinutes int     `validate:"gte=0,lte=1440"`
}

// ParseQuery разбирает query параметры: date, serviceIds (через запятую), durationMinutes
func ParseQuery(values url.Values) (*FittableSlotsQuery, error) {
	q := &FittableSlotsQuery{
		Date:       strings.TrimSpace(values.Get("date")),
		ServiceIDs: make([]int64, 0),
	}

	for _, raw := range strings.Split(values.Get("serviceIds"), ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid service id %q: %w", raw, err)
		}
		q.ServiceIDs = append(q.ServiceIDs, id)
	}

	if raw := strings.TrimSpace(values.Get("durationMinutes")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid durationMinutes %q: %w", raw, err)
		}
		q.DurationMinutes = minutes
	}

	return q, nil
}

// ToUseCaseRequest создает запрос use case
func (q *FittableSlotsQuery) ToUseCaseRequest(userID, companyID int64) (*getFittableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, q.Date)
	if err != nil {
		return nil, err
	}

	return &getFittableSlots.Request{
		UserID:          userID,
		CompanyID:       companyID,
		Date:            date,
		ServiceIDs:      q.ServiceIDs,
		DurationMinutes: q.DurationMinutes,
	}, nil
}

// FittableSlotsResponse HTTP response model
type FittableSlotsResponse struct {
	Date                 string  `json:"date"`
	CompanyID            int64   `json:"companyId"`
	TotalDurationMinutes int     `json:"totalDurationMinutes"`
	SlotDurationMinutes  int     `json:"slotDurationMinutes"`
	SlotsNeeded          int     `json:"slotsNeeded"`
	TotalSlots           int     `json:"totalSlots"`
	FittableSlots        int     `json:"fittableSlots"`
	Periods              Periods `json:"periods"`
}

// Periods слоты по времени суток
type Periods struct {
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
	Evening   []Slot `json:"evening"`
}

// Slot модель слота
type Slot struct {
	ID             string `json:"id"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	BookingEndTime string `json:"bookingEndTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFittableSlots.Response) *FittableSlotsResponse {
	periods := Periods{
		Morning:   toSlots(resp.Morning),
		Afternoon: toSlots(resp.Afternoon),
		Evening:   toSlots(resp.Evening),
	}

	return &FittableSlotsResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		CompanyID:            resp.CompanyID,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		SlotDurationMinutes:  resp.SlotDurationMinutes,
		SlotsNeeded:          resp.SlotsNeeded,
		TotalSlots:           resp.TotalSlots,
		FittableSlots:        len(periods.Morning) + len(periods.Afternoon) + len(periods.Evening),
		Periods:              periods,
	}
}

func toSlots(slots []getFittableSlots.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:             s.ID,
			StartTime:      s.StartTime.String(),
			EndTime:        s.EndTime.String(),
			BookingEndTime: s.BookingEndTime.String(),
		}
	}
	return result
}

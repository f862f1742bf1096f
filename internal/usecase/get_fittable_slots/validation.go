package get_fittable_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const maxDurationMinutes = 24 * 60

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) > domain.MaxSelectedServices {
		return fmt.Errorf("%w: at most %d services can be selected", ErrInvalidInput, domain.MaxSelectedServices)
	}

	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceIDs must be positive", ErrInvalidInput)
		}
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > maxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be between 0 and %d", ErrInvalidInput, maxDurationMinutes)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом (сравнение по дням)
func validateDate(requestDate time.Time, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(requestDate.Year(), requestDate.Month(), requestDate.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, requestDate.Format(domain.DateFormat))
	}
	return nil
}

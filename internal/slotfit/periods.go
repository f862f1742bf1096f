package slotfit

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// PeriodOf returns the display period of a slot by its start hour.
// A slot whose start hour cannot be read lands in the evening.
func PeriodOf(slot domain.TimeSlot) domain.Period {
	hour, err := slot.StartTime.Hour()
	switch {
	case err != nil:
		return domain.PeriodEvening
	case hour < domain.AfternoonStartHour:
		return domain.PeriodMorning
	case hour < domain.EveningStartHour:
		return domain.PeriodAfternoon
	default:
		return domain.PeriodEvening
	}
}

// GroupByPeriod splits slots into morning, afternoon and evening.
// Every slot lands in exactly one bucket and buckets keep the input order.
func GroupByPeriod(slots []domain.TimeSlot) domain.PeriodGroups {
	groups := domain.PeriodGroups{
		Morning:   make([]domain.TimeSlot, 0),
		Afternoon: make([]domain.TimeSlot, 0),
		Evening:   make([]domain.TimeSlot, 0),
	}

	for _, slot := range slots {
		switch PeriodOf(slot) {
		case domain.PeriodMorning:
			groups.Morning = append(groups.Morning, slot)
		case domain.PeriodAfternoon:
			groups.Afternoon = append(groups.Afternoon, slot)
		default:
			groups.Evening = append(groups.Evening, slot)
		}
	}

	return groups
}

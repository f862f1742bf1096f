package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// TimeSlot is one bookable interval of a day as published by the scheduling service.
// Slots of a day are ordered by StartTime; gaps between them are allowed.
type TimeSlot struct {
	ID        string
	StartTime types.TimeString
	EndTime   types.TimeString
}

// HasTimes reports whether at least one of the slot bounds is set
func (s TimeSlot) HasTimes() bool {
	return !s.StartTime.IsZero() || !s.EndTime.IsZero()
}

// Period is a display bucket of the day
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// PeriodGroups partitions slots into morning, afternoon and evening buckets.
// Order inside each bucket follows the input order.
type PeriodGroups struct {
	Morning   []TimeSlot
	Afternoon []TimeSlot
	Evening   []TimeSlot
}

// Len returns the total number of slots across all buckets
func (g PeriodGroups) Len() int {
	return len(g.Morning) + len(g.Afternoon) + len(g.Evening)
}

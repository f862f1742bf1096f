// Package slotfit decides which slots of a day can start a booking that spans
// several back-to-back slots, and groups slots into display periods.
//
// All functions are pure. They never return errors; malformed input degrades to
// permissive results and booking creation makes the final check.
package slotfit

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// ComputeSlotDuration infers the nominal slot length in minutes from the first slot.
// ok is false when it cannot be inferred (no slots, or the first slot has neither
// bound), in which case no fitting constraint applies.
// A non-positive or unparseable length falls back to domain.DefaultSlotDurationMinutes.
func ComputeSlotDuration(slots []domain.TimeSlot) (minutes int, ok bool) {
	if len(slots) == 0 || !slots[0].HasTimes() {
		return 0, false
	}

	start, errStart := slots[0].StartTime.Minutes()
	end, errEnd := slots[0].EndTime.Minutes()
	if errStart != nil || errEnd != nil || end-start <= 0 {
		return domain.DefaultSlotDurationMinutes, true
	}

	return end - start, true
}

// SlotsNeeded returns how many consecutive slots a booking of totalMinutes occupies.
// 1 means every slot is individually sufficient.
func SlotsNeeded(slots []domain.TimeSlot, totalMinutes int) int {
	if len(slots) == 0 || totalMinutes <= 0 {
		return 1
	}

	slotDuration, ok := ComputeSlotDuration(slots)
	if !ok {
		return 1
	}

	return (totalMinutes + slotDuration - 1) / slotDuration
}

// FittableIndexes returns indexes of slots that can start a gap-free chain long
// enough for totalMinutes. Without a constraint every index is returned.
func FittableIndexes(slots []domain.TimeSlot, totalMinutes int) []int {
	needed := SlotsNeeded(slots, totalMinutes)

	indexes := make([]int, 0, len(slots))
	for i := range slots {
		if needed <= 1 || isChainStart(slots, i, needed) {
			indexes = append(indexes, i)
		}
	}

	return indexes
}

// FilterFittableSlots returns the slots usable as a booking start, in input order.
// Empty input, totalMinutes <= 0, an uninferable slot length or a single-slot
// requirement return slots unchanged.
func FilterFittableSlots(slots []domain.TimeSlot, totalMinutes int) []domain.TimeSlot {
	if len(slots) == 0 || totalMinutes <= 0 {
		return slots
	}
	if SlotsNeeded(slots, totalMinutes) <= 1 {
		return slots
	}

	indexes := FittableIndexes(slots, totalMinutes)
	fittable := make([]domain.TimeSlot, 0, len(indexes))
	for _, i := range indexes {
		fittable = append(fittable, slots[i])
	}

	return fittable
}

// isChainStart checks that needed slots starting at i exist and touch each other
func isChainStart(slots []domain.TimeSlot, i, needed int) bool {
	if i+needed > len(slots) {
		return false
	}

	for j := 1; j < needed; j++ {
		if !adjoins(slots[i+j-1], slots[i+j]) {
			return false
		}
	}

	return true
}

// adjoins reports whether next starts exactly where prev ends (minute precision).
// Unparseable bounds are compared as HH:MM strings.
func adjoins(prev, next domain.TimeSlot) bool {
	end, errEnd := prev.EndTime.Minutes()
	start, errStart := next.StartTime.Minutes()
	if errEnd == nil && errStart == nil {
		return end == start
	}
	return prev.EndTime.HHMM() == next.StartTime.HHMM()
}

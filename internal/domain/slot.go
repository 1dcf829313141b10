package domain

import (
	"github.com/SaimAkramGill/bewanted/pkg/types"
)

// TimeSlot is a derived value, never persisted as an entity: the slot grid
// is recomputed deterministically from the interview unit and the fixed
// event window. Identity for comparison purposes is the Label() string.
type TimeSlot struct {
	// Start and End are minute-of-day offsets within the event window
	Start int
	End   int
}

// Label returns the canonical "HH:MM - HH:MM" identifier of the slot
func (s TimeSlot) Label() string {
	return types.NewTimeStringFromMinutes(s.Start).String() +
		SlotLabelSeparator +
		types.NewTimeStringFromMinutes(s.End).String()
}

// StartTime returns the slot start as a TimeString
func (s TimeSlot) StartTime() types.TimeString {
	return types.NewTimeStringFromMinutes(s.Start)
}

// EndTime returns the slot end as a TimeString
func (s TimeSlot) EndTime() types.TimeString {
	return types.NewTimeStringFromMinutes(s.End)
}

// DurationMinutes returns the slot length
func (s TimeSlot) DurationMinutes() int {
	return s.End - s.Start
}

// Слоты фиксированы на весь день мероприятия, поэтому считаются один раз
// на пакет. GenerateSlots остаётся чистой функцией для тестов.
var (
	standardSlots = GenerateSlots(UnitStandard.SlotDurationMinutes())
	quickSlots    = GenerateSlots(UnitQuick.SlotDurationMinutes())
)

// GenerateSlots computes the ordered, non-overlapping slot grid for the
// given duration within the fixed event window. Slots start at the window
// start and advance by the full duration; a final slot that would cross
// the window end is dropped (strict boundary, never rounded up).
func GenerateSlots(durationMinutes int) []TimeSlot {
	if durationMinutes <= 0 {
		return nil
	}

	slots := make([]TimeSlot, 0, (EventEndMinutes-EventStartMinutes)/durationMinutes)
	for start := EventStartMinutes; start+durationMinutes <= EventEndMinutes; start += durationMinutes {
		slots = append(slots, TimeSlot{Start: start, End: start + durationMinutes})
	}
	return slots
}

// SlotsForUnit returns a copy of the precomputed slot grid for the unit
func SlotsForUnit(unit InterviewUnit) []TimeSlot {
	var cached []TimeSlot
	switch unit {
	case UnitQuick:
		cached = quickSlots
	default:
		cached = standardSlots
	}

	out := make([]TimeSlot, len(cached))
	copy(out, cached)
	return out
}

// SlotLabels returns the ordered slot identifiers for the unit
func SlotLabels(unit InterviewUnit) []string {
	slots := SlotsForUnit(unit)
	labels := make([]string, len(slots))
	for i, s := range slots {
		labels[i] = s.Label()
	}
	return labels
}

// IsValidSlot reports whether label is a member of the slot grid generated
// for the unit. Membership is checked on the exact formatted string.
func IsValidSlot(unit InterviewUnit, label string) bool {
	for _, s := range SlotsForUnit(unit) {
		if s.Label() == label {
			return true
		}
	}
	return false
}

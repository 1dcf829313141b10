package domain

import "time"

// Event constants. The career fair is a single fixed day; the window and
// date are not configurable.
const (
	EventDateString = "2025-11-26"

	// Event window: 09:00 - 17:20, expressed as minute-of-day offsets
	EventStartMinutes = 9 * 60
	EventEndMinutes   = 17*60 + 20
)

// EventDate возвращает дату проведения ярмарки (UTC, без времени)
func EventDate() time.Time {
	return time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)
}

// Default configuration values
const (
	// DefaultCapacityPerSlot два параллельных интервьюера на слот
	DefaultCapacityPerSlot = 2

	// ReducedCapacityPerSlot для компаний с одним интервьюером на слот
	ReducedCapacityPerSlot = 1
)

// Business validation constants
const (
	MinCapacityPerSlot = 1
	MaxCapacityPerSlot = 2

	MaxMotivationLength         = 1000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// SlotLabelSeparator разделитель в идентификаторе слота "HH:MM - HH:MM"
	SlotLabelSeparator = " - "
)

// InactiveStatuses список статусов, не учитываемых при подсчёте занятости
// слотов и конфликтов студента. Отменённая запись сразу освобождает слот.
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

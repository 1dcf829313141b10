package get_available_slots

import "github.com/SaimAkramGill/bewanted/internal/domain"

// SlotStatus классификация слота для конкретного студента
type SlotStatus string

const (
	// StatusAvailable слот можно забронировать
	StatusAvailable SlotStatus = "available"
	// StatusFull все места в слоте заняты
	StatusFull SlotStatus = "full"
	// StatusConflict студент уже занят в это время (у любой компании)
	StatusConflict SlotStatus = "conflict"
)

// Request запрос сетки доступности
type Request struct {
	CompanyID int64
	// StudentEmail опционален: без него слоты классифицируются
	// только как available/full
	StudentEmail string
}

// Slot один слот сетки с вердиктом доступности
type Slot struct {
	TimeSlot       string
	StartTime      string
	EndTime        string
	Capacity       int
	AvailableSpots int
	Status         SlotStatus
}

// Response сетка доступности компании
type Response struct {
	CompanyID       int64
	CompanyName     string
	InterviewUnit   domain.InterviewUnit
	DurationMinutes int
	EventDate       string
	Slots           []Slot
}

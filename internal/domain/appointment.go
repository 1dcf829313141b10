package domain

import (
	"fmt"
	"strings"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no-show"
)

// ParseAppointmentStatus конвертирует строку в AppointmentStatus
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}

// StudentInfo is the student profile snapshot captured at booking time.
// It is a value, not a foreign reference: the appointment stays meaningful
// even when no student account exists.
type StudentInfo struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	FieldOfStudy string
	Motivation   string
}

// Normalized returns a copy with trimmed fields and a lower-cased email.
// The normalized email is the student identity for all conflict checks.
func (s StudentInfo) Normalized() StudentInfo {
	return StudentInfo{
		FirstName:    strings.TrimSpace(s.FirstName),
		LastName:     strings.TrimSpace(s.LastName),
		Email:        strings.ToLower(strings.TrimSpace(s.Email)),
		PhoneNumber:  strings.TrimSpace(s.PhoneNumber),
		FieldOfStudy: strings.TrimSpace(s.FieldOfStudy),
		Motivation:   strings.TrimSpace(s.Motivation),
	}
}

// FullName возвращает полное имя студента
func (s StudentInfo) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Appointment represents a booked interview at the career fair
type Appointment struct {
	ID        int64
	Student   StudentInfo
	CompanyID int64
	EventDate time.Time
	TimeSlot  string
	Status    AppointmentStatus

	// Opaque reference to the uploaded CV, optional
	CVReference *string

	// Advisory confirmations collected at registration
	GermanLanguageConfirmed bool
	InternshipInterest      bool
	HasValidVisa            bool

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity returns true if the appointment occupies a slot.
// Cancelled appointments are retained for audit but free their slot
// immediately.
func (a *Appointment) CountsTowardCapacity() bool {
	return a.Status != StatusCancelled
}

// IsScheduled returns true if the appointment is still upcoming
func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanTransitionTo reports whether the status machine permits the change.
// scheduled -> completed | cancelled | no-show; cancelled is terminal.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if a.Status == next {
		return false
	}
	if a.Status != StatusScheduled {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled || next == StatusNoShow
}

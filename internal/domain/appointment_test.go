package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudentInfo_Normalized(t *testing.T) {
	s := StudentInfo{
		FirstName:    "  Max ",
		LastName:     " Mustermann",
		Email:        " Max.Mustermann@Example.COM ",
		PhoneNumber:  " +43 660 1234567 ",
		FieldOfStudy: " Computer Science ",
		Motivation:   "  I want to join  ",
	}

	n := s.Normalized()

	assert.Equal(t, "Max", n.FirstName)
	assert.Equal(t, "Mustermann", n.LastName)
	assert.Equal(t, "max.mustermann@example.com", n.Email)
	assert.Equal(t, "+43 660 1234567", n.PhoneNumber)
	assert.Equal(t, "Computer Science", n.FieldOfStudy)
	assert.Equal(t, "I want to join", n.Motivation)
	assert.Equal(t, "Max Mustermann", n.FullName())
}

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"scheduled to completed", StatusScheduled, StatusCompleted, true},
		{"scheduled to cancelled", StatusScheduled, StatusCancelled, true},
		{"scheduled to no-show", StatusScheduled, StatusNoShow, true},
		{"same status", StatusScheduled, StatusScheduled, false},
		{"cancelled is terminal", StatusCancelled, StatusScheduled, false},
		{"cancelled to completed", StatusCancelled, StatusCompleted, false},
		{"completed to no-show", StatusCompleted, StatusNoShow, false},
		{"no-show to completed", StatusNoShow, StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, apt.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_CountsTowardCapacity(t *testing.T) {
	assert.True(t, (&Appointment{Status: StatusScheduled}).CountsTowardCapacity())
	assert.True(t, (&Appointment{Status: StatusCompleted}).CountsTowardCapacity())
	assert.True(t, (&Appointment{Status: StatusNoShow}).CountsTowardCapacity())
	// Отменённая запись освобождает место сразу
	assert.False(t, (&Appointment{Status: StatusCancelled}).CountsTowardCapacity())
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, valid := range []string{"scheduled", "completed", "cancelled", "no-show"} {
		status, err := ParseAppointmentStatus(valid)
		assert.NoError(t, err)
		assert.Equal(t, AppointmentStatus(valid), status)
	}

	_, err := ParseAppointmentStatus("rescheduled")
	assert.Error(t, err)
}

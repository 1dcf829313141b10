package get_student_appointments

import (
	"time"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// AppointmentResponse одна запись студента
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	CompanyID          int64      `json:"companyId"`
	CompanyName        string     `json:"companyName,omitempty"`
	EventDate          string     `json:"eventDate"`
	TimeSlot           string     `json:"timeSlot"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// Response список записей студента
type Response struct {
	StudentEmail string                `json:"studentEmail"`
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromDomainAppointment конвертирует доменную запись в ответ API
func FromDomainAppointment(apt *domain.Appointment, companyName string) AppointmentResponse {
	return AppointmentResponse{
		ID:                 apt.ID,
		CompanyID:          apt.CompanyID,
		CompanyName:        companyName,
		EventDate:          apt.EventDate.Format(domain.DateFormat),
		TimeSlot:           apt.TimeSlot,
		Status:             string(apt.Status),
		CancellationReason: apt.CancellationReason,
		CancelledAt:        apt.CancelledAt,
		CreatedAt:          apt.CreatedAt,
	}
}

package cancel_appointment

import (
	"time"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// Request тело запроса отмены
type Request struct {
	Reason string `json:"reason,omitempty"`
}

// Response результат отмены
type Response struct {
	ID                 int64      `json:"id"`
	CompanyID          int64      `json:"companyId"`
	TimeSlot           string     `json:"timeSlot"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
}

// FromDomainAppointment конвертирует доменную запись в ответ API
func FromDomainAppointment(apt *domain.Appointment) Response {
	return Response{
		ID:                 apt.ID,
		CompanyID:          apt.CompanyID,
		TimeSlot:           apt.TimeSlot,
		Status:             string(apt.Status),
		CancellationReason: apt.CancellationReason,
		CancelledAt:        apt.CancelledAt,
	}
}

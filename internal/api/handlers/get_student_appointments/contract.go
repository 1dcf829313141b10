package get_student_appointments

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// AppointmentService сервис записей
type AppointmentService interface {
	GetStudentAppointments(ctx context.Context, email string) ([]*domain.Appointment, error)
}

// CompanyService сервис компаний (имена компаний для ответа)
type CompanyService interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, args ...interface{})
}

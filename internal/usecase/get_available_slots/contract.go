package get_available_slots

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// CompanyService сервис компаний
type CompanyService interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// AppointmentRepo доступ к активным записям
type AppointmentRepo interface {
	GetActiveByCompany(ctx context.Context, companyID int64) ([]*domain.Appointment, error)
	GetActiveByStudent(ctx context.Context, email string) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

package appointments

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
)

// AppointmentRepo интерфейс репозитория записей
type AppointmentRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByStudentEmail(ctx context.Context, email string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// CompanyRepo интерфейс репозитория компаний (нужны имена для уведомлений)
type CompanyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// Notifier клиент сервиса уведомлений
type Notifier interface {
	SendCancellation(ctx context.Context, event notifier.CancellationEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

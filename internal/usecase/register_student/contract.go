package register_student

import (
	"context"
	"time"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
)

// CompanyService сервис компаний
type CompanyService interface {
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
}

// AppointmentRepo доступ к записям. Все проверки занятости выполняются
// внутри транзакции, которую открывает TxManager.
type AppointmentRepo interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	GetActiveByCompanyAndSlot(ctx context.Context, companyID int64, timeSlot string) ([]*domain.Appointment, error)
	ExistsActiveByStudentAndSlot(ctx context.Context, email string, timeSlot string) (bool, error)
	ExistsActiveByStudentAndCompany(ctx context.Context, email string, companyID int64) (bool, error)
}

// TxManager менеджер транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier клиент сервиса уведомлений
type Notifier interface {
	SendRegistrationCompleted(ctx context.Context, event notifier.RegistrationCompletedEvent) error
}

// TimeProvider провайдер текущего времени (для тестов)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает системное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

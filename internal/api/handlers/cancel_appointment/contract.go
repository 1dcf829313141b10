package cancel_appointment

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// AppointmentService сервис записей
type AppointmentService interface {
	Cancel(ctx context.Context, id int64, reason string) (*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

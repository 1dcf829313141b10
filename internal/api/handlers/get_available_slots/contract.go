package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/SaimAkramGill/bewanted/internal/usecase/get_available_slots"
)

// UseCase usecase расчёта доступности слотов
type UseCase interface {
	Execute(ctx context.Context, req getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

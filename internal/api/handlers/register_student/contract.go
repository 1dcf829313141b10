package register_student

import (
	"context"

	registerStudent "github.com/SaimAkramGill/bewanted/internal/usecase/register_student"
)

// UseCase usecase регистрации студента
type UseCase interface {
	Execute(ctx context.Context, req registerStudent.Request) (*registerStudent.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

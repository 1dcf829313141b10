package list_companies

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

// CompanyService сервис компаний
type CompanyService interface {
	List(ctx context.Context, onlyBookable bool) ([]*domain.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, args ...interface{})
}

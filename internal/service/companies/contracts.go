package companies

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	companystorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
)

// CompanyRepo интерфейс репозитория компаний
type CompanyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context, onlyBookable bool) ([]*domain.Company, error)
	UpdateConfig(ctx context.Context, id int64, update companystorage.ConfigUpdate) (*domain.Company, error)
	CountActive(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

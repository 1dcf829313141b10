package update_company_config

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	companystorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
)

// CompanyService сервис компаний
type CompanyService interface {
	UpdateConfig(ctx context.Context, id int64, update companystorage.ConfigUpdate) (*domain.Company, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

package stats

import (
	"context"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	appointmentstorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
)

// AppointmentRepo агрегатные запросы по записям
type AppointmentRepo interface {
	CountDistinctStudents(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error)
	ActiveCountByCompany(ctx context.Context, limit uint64) ([]appointmentstorage.CompanyBookingCount, error)
	FieldOfStudyDistribution(ctx context.Context) ([]appointmentstorage.FieldCount, error)
}

// CompanyRepo агрегатные запросы по компаниям
type CompanyRepo interface {
	CountActive(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, args ...interface{})
	Error(format string, args ...interface{})
}

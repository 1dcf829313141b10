package stats

import (
	"context"
	"fmt"

	"github.com/SaimAkramGill/bewanted/internal/domain"
)

const popularCompaniesLimit = 5

// CompanyStat популярность компании по числу активных записей
type CompanyStat struct {
	CompanyID   int64
	CompanyName string
	Bookings    int
}

// FieldStat распределение записей по направлению обучения
type FieldStat struct {
	FieldOfStudy string
	Bookings     int
}

// FairStats сводная статистика ярмарки
type FairStats struct {
	UniqueStudents        int
	ScheduledAppointments int
	CompletedAppointments int
	CancelledAppointments int
	NoShowAppointments    int
	ActiveCompanies       int
	PopularCompanies      []CompanyStat
	FieldDistribution     []FieldStat
}

// Service сервис статистики ярмарки
type Service struct {
	appointmentRepo AppointmentRepo
	companyRepo     CompanyRepo
	logger          Logger
}

// NewService создает новый сервис статистики
func NewService(appointmentRepo AppointmentRepo, companyRepo CompanyRepo, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

// GetFairStats собирает сводную статистику по ярмарке.
// Отменённые записи не входят в популярность компаний и распределение
// по направлениям, но считаются отдельной строкой.
func (s *Service) GetFairStats(ctx context.Context) (*FairStats, error) {
	result := &FairStats{}

	var err error
	if result.UniqueStudents, err = s.appointmentRepo.CountDistinctStudents(ctx); err != nil {
		return nil, s.wrap("CountDistinctStudents", err)
	}
	if result.ScheduledAppointments, err = s.appointmentRepo.CountByStatus(ctx, domain.StatusScheduled); err != nil {
		return nil, s.wrap("CountByStatus scheduled", err)
	}
	if result.CompletedAppointments, err = s.appointmentRepo.CountByStatus(ctx, domain.StatusCompleted); err != nil {
		return nil, s.wrap("CountByStatus completed", err)
	}
	if result.CancelledAppointments, err = s.appointmentRepo.CountByStatus(ctx, domain.StatusCancelled); err != nil {
		return nil, s.wrap("CountByStatus cancelled", err)
	}
	if result.NoShowAppointments, err = s.appointmentRepo.CountByStatus(ctx, domain.StatusNoShow); err != nil {
		return nil, s.wrap("CountByStatus no-show", err)
	}
	if result.ActiveCompanies, err = s.companyRepo.CountActive(ctx); err != nil {
		return nil, s.wrap("CountActive", err)
	}

	byCompany, err := s.appointmentRepo.ActiveCountByCompany(ctx, popularCompaniesLimit)
	if err != nil {
		return nil, s.wrap("ActiveCountByCompany", err)
	}
	result.PopularCompanies = make([]CompanyStat, 0, len(byCompany))
	for _, c := range byCompany {
		result.PopularCompanies = append(result.PopularCompanies, CompanyStat{
			CompanyID:   c.CompanyID,
			CompanyName: c.CompanyName,
			Bookings:    c.Count,
		})
	}

	byField, err := s.appointmentRepo.FieldOfStudyDistribution(ctx)
	if err != nil {
		return nil, s.wrap("FieldOfStudyDistribution", err)
	}
	result.FieldDistribution = make([]FieldStat, 0, len(byField))
	for _, f := range byField {
		result.FieldDistribution = append(result.FieldDistribution, FieldStat{
			FieldOfStudy: f.FieldOfStudy,
			Bookings:     f.Count,
		})
	}

	return result, nil
}

func (s *Service) wrap(op string, err error) error {
	s.logger.Error("GetFairStats: %s: %v", op, err)
	return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
}

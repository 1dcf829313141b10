package companies

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	companystorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
)

// Service сервис управления компаниями-участниками ярмарки
type Service struct {
	repo   CompanyRepo
	logger Logger
}

// NewService создает новый сервис компаний
func NewService(repo CompanyRepo, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create создает новую компанию (используется сидером)
func (s *Service) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	if !c.InterviewUnit.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterviewUnit, c.InterviewUnit)
	}
	if err := validateCapacity(c.CapacityPerSlot); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, c)
	if err != nil {
		if errors.Is(err, companystorage.ErrCompanyExists) {
			return nil, ErrCompanyExists
		}
		s.logger.Error("Create: repo error: %v", err)
		return nil, fmt.Errorf("%w: Create: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created company %d (%s)", created.ID, created.Name)
	return created, nil
}

// List возвращает активные компании.
// onlyBookable скрывает компании с закрытой записью.
func (s *Service) List(ctx context.Context, onlyBookable bool) ([]*domain.Company, error) {
	list, err := s.repo.List(ctx, onlyBookable)
	if err != nil {
		s.logger.Error("List: repo error: %v", err)
		return nil, fmt.Errorf("%w: List: %v", ErrInternal, err)
	}
	return list, nil
}

// GetByID возвращает компанию по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, companystorage.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("GetByID: repo error: %v", err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}
	return c, nil
}

// UpdateConfig применяет частичное обновление конфигурации компании.
// Изменение ёмкости или типа собеседования влияет только на будущие
// проверки доступности, существующие записи не трогаются.
func (s *Service) UpdateConfig(ctx context.Context, id int64, update companystorage.ConfigUpdate) (*domain.Company, error) {
	if update.IsEmpty() {
		return nil, ErrEmptyUpdate
	}
	if update.CapacityPerSlot != nil {
		if err := validateCapacity(*update.CapacityPerSlot); err != nil {
			return nil, err
		}
	}
	if update.InterviewUnit != nil && !update.InterviewUnit.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidInterviewUnit, *update.InterviewUnit)
	}

	updated, err := s.repo.UpdateConfig(ctx, id, update)
	if err != nil {
		if errors.Is(err, companystorage.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		s.logger.Error("UpdateConfig: repo error: %v", err)
		return nil, fmt.Errorf("%w: UpdateConfig: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateConfig: updated company %d config", id)
	return updated, nil
}

func validateCapacity(capacity int) error {
	if capacity < domain.MinCapacityPerSlot || capacity > domain.MaxCapacityPerSlot {
		return fmt.Errorf("%w: %d (allowed %d..%d)",
			ErrInvalidCapacity, capacity, domain.MinCapacityPerSlot, domain.MaxCapacityPerSlot)
	}
	return nil
}

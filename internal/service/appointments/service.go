package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	appointmentstorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
)

const notifyTimeout = 5 * time.Second

// Service сервис управления записями на собеседования
type Service struct {
	repo        AppointmentRepo
	companyRepo CompanyRepo
	notifier    Notifier
	logger      Logger
}

// NewService создает новый сервис записей
func NewService(repo AppointmentRepo, companyRepo CompanyRepo, n Notifier, logger Logger) *Service {
	return &Service{
		repo:        repo,
		companyRepo: companyRepo,
		notifier:    n,
		logger:      logger,
	}
}

// GetByID возвращает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	apt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repo error: %v", err)
		return nil, fmt.Errorf("%w: GetByID: %v", ErrInternal, err)
	}
	return apt, nil
}

// GetStudentAppointments возвращает все записи студента, включая отменённые.
// Email нормализуется так же, как при регистрации.
func (s *Service) GetStudentAppointments(ctx context.Context, email string) ([]*domain.Appointment, error) {
	normalized := domain.StudentInfo{Email: email}.Normalized().Email

	list, err := s.repo.GetByStudentEmail(ctx, normalized)
	if err != nil {
		s.logger.Error("GetStudentAppointments: repo error: %v", err)
		return nil, fmt.Errorf("%w: GetStudentAppointments: %v", ErrInternal, err)
	}
	return list, nil
}

// Cancel отменяет запись. Повторная отмена уже отменённой записи считается
// успехом без каких-либо изменений, клиенты могут безопасно ретраить.
func (s *Service) Cancel(ctx context.Context, id int64, reason string) (*domain.Appointment, error) {
	if len(reason) > domain.MaxCancellationReasonLength {
		return nil, ErrReasonTooLong
	}

	apt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repo error: %v", err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	if apt.IsCancelled() {
		s.logger.Debug("Cancel: appointment %d already cancelled, no-op", id)
		return apt, nil
	}

	// Отменить можно только запланированную запись: completed и no-show
	// уже состоялись (или нет) и слот не освобождают
	if !apt.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, domain.StatusCancelled)
	}

	if err := s.repo.Cancel(ctx, id, reason); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repo error: %v", err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: cancelled appointment %d", id)

	cancelled, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: reload after cancel: %v", err)
		return nil, fmt.Errorf("%w: Cancel: %v", ErrInternal, err)
	}

	s.notifyCancellation(cancelled, reason)

	return cancelled, nil
}

// UpdateStatus переводит запись в новый статус с проверкой допустимости
// перехода (отмена идёт через Cancel, здесь остальные переходы)
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) (*domain.Appointment, error) {
	apt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repo error: %v", err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	if !apt.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, apt.Status, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentstorage.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repo error: %v", err)
		return nil, fmt.Errorf("%w: UpdateStatus: %v", ErrInternal, err)
	}

	apt.Status = status
	return apt, nil
}

// notifyCancellation отправляет уведомление об отмене в фоне.
// Ошибка доставки не влияет на результат отмены.
func (s *Service) notifyCancellation(apt *domain.Appointment, reason string) {
	companyName := ""
	if company, err := s.companyRepo.GetByID(context.Background(), apt.CompanyID); err == nil {
		companyName = company.Name
	}

	event := notifier.CancellationEvent{
		EventID:       uuid.NewString(),
		AppointmentID: apt.ID,
		StudentEmail:  apt.Student.Email,
		CompanyName:   companyName,
		TimeSlot:      apt.TimeSlot,
		Reason:        reason,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.SendCancellation(ctx, event); err != nil {
			s.logger.Warn("notifyCancellation: event %s not delivered: %v", event.EventID, err)
		}
	}()
}

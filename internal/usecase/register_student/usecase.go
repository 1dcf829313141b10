package register_student

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	appointmentstorage "github.com/SaimAkramGill/bewanted/internal/infra/storage/appointment"
	"github.com/SaimAkramGill/bewanted/internal/integrations/notifier"
	"github.com/SaimAkramGill/bewanted/internal/service/companies"
)

const notifyTimeout = 5 * time.Second

// UseCase регистрация студента: батч бронирований с независимым коммитом
// по каждому выбранному слоту
type UseCase struct {
	companyService  CompanyService
	appointmentRepo AppointmentRepo
	txManager       TxManager
	notifier        Notifier
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый usecase регистрации
func NewUseCase(
	companyService CompanyService,
	appointmentRepo AppointmentRepo,
	txManager TxManager,
	n Notifier,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		companyService:  companyService,
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        n,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute обрабатывает регистрацию. Ошибка валидации снапшота отменяет
// весь батч; после неё каждый выбранный слот бронируется в собственной
// SERIALIZABLE транзакции, отказ по одному элементу не трогает остальные.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	student := req.Student.Normalized()

	result := &Response{StudentEmail: student.Email}

	for _, sel := range req.Selections {
		booked, rejection := uc.bookOne(ctx, student, req, sel)
		if rejection != nil {
			result.Rejected = append(result.Rejected, *rejection)
			continue
		}
		result.Booked = append(result.Booked, *booked)
	}

	uc.logger.Info("RegisterStudent: %s booked=%d rejected=%d",
		student.Email, len(result.Booked), len(result.Rejected))

	if len(result.Booked) > 0 {
		uc.notifyRegistrationCompleted(student, result.Booked)
	}

	return result, nil
}

// bookOne бронирует один слот в отдельной транзакции
func (uc *UseCase) bookOne(ctx context.Context, student domain.StudentInfo, req Request, sel Selection) (*BookedAppointment, *Rejection) {
	// Компанию читаем вне транзакции: конфигурация меняется редко,
	// а ёмкость всё равно перепроверяется под блокировкой
	company, err := uc.companyService.GetByID(ctx, sel.CompanyID)
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			return nil, reject(sel, ReasonCompanyUnavailable, "company not found")
		}
		uc.logger.Error("RegisterStudent: get company %d: %v", sel.CompanyID, err)
		return nil, reject(sel, ReasonInternalError, "failed to load company")
	}

	if !company.AcceptsBookings() {
		return nil, reject(sel, ReasonCompanyUnavailable, "company is not accepting bookings")
	}

	if !domain.IsValidSlot(company.InterviewUnit, sel.TimeSlot) {
		return nil, reject(sel, ReasonInvalidSlot, "time slot is not in the company schedule")
	}

	var created *domain.Appointment
	var rejection *Rejection

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created, rejection = nil, nil

		// Порядок проверок фиксирован: ёмкость слота, занятость студента
		// в это время, повторная запись к той же компании
		existing, err := uc.appointmentRepo.GetActiveByCompanyAndSlot(txCtx, company.ID, sel.TimeSlot)
		if err != nil {
			return err
		}
		if countScheduled(existing) >= company.CapacityPerSlot {
			rejection = reject(sel, ReasonSlotFull, "time slot is fully booked")
			return nil
		}

		busy, err := uc.appointmentRepo.ExistsActiveByStudentAndSlot(txCtx, student.Email, sel.TimeSlot)
		if err != nil {
			return err
		}
		if busy {
			rejection = reject(sel, ReasonTimeConflict, "you already have an appointment at this time")
			return nil
		}

		duplicate, err := uc.appointmentRepo.ExistsActiveByStudentAndCompany(txCtx, student.Email, company.ID)
		if err != nil {
			return err
		}
		if duplicate {
			rejection = reject(sel, ReasonDuplicateCompanyBooking, "you already have an appointment with this company")
			return nil
		}

		apt := &domain.Appointment{
			Student:                 student,
			CompanyID:               company.ID,
			EventDate:               domain.EventDate(),
			TimeSlot:                sel.TimeSlot,
			Status:                  domain.StatusScheduled,
			CVReference:             req.CVReference,
			GermanLanguageConfirmed: req.GermanLanguageConfirmed,
			InternshipInterest:      req.InternshipInterest,
			HasValidVisa:            req.HasValidVisa,
		}

		created, err = uc.appointmentRepo.Create(txCtx, apt)
		return err
	})

	if err != nil {
		// Проигрыш гонки на уникальных индексах эквивалентен обычному отказу
		switch {
		case errors.Is(err, appointmentstorage.ErrStudentSlotTaken):
			return nil, reject(sel, ReasonTimeConflict, "you already have an appointment at this time")
		case errors.Is(err, appointmentstorage.ErrStudentCompanyTaken):
			return nil, reject(sel, ReasonDuplicateCompanyBooking, "you already have an appointment with this company")
		}
		uc.logger.Error("RegisterStudent: company %d slot %q: %v", sel.CompanyID, sel.TimeSlot, err)
		return nil, reject(sel, ReasonInternalError, "failed to book the time slot")
	}

	if rejection != nil {
		return nil, rejection
	}

	return &BookedAppointment{
		AppointmentID: created.ID,
		CompanyID:     company.ID,
		CompanyName:   company.Name,
		TimeSlot:      sel.TimeSlot,
		EventDate:     domain.EventDateString,
	}, nil
}

// notifyRegistrationCompleted отправляет подтверждение в фоне.
// Ошибка доставки логируется и не влияет на результат регистрации.
func (uc *UseCase) notifyRegistrationCompleted(student domain.StudentInfo, booked []BookedAppointment) {
	summaries := make([]notifier.AppointmentSummary, 0, len(booked))
	for _, b := range booked {
		summaries = append(summaries, notifier.AppointmentSummary{
			AppointmentID: b.AppointmentID,
			CompanyName:   b.CompanyName,
			TimeSlot:      b.TimeSlot,
			EventDate:     b.EventDate,
		})
	}

	event := notifier.RegistrationCompletedEvent{
		EventID:      uuid.NewString(),
		StudentName:  student.FullName(),
		StudentEmail: student.Email,
		Appointments: summaries,
		OccurredAt:   uc.timeProvider.Now().UTC().Format(time.RFC3339),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := uc.notifier.SendRegistrationCompleted(ctx, event); err != nil {
			uc.logger.Warn("RegisterStudent: event %s not delivered: %v", event.EventID, err)
		}
	}()
}

// countScheduled считает записи, занимающие место в слоте
func countScheduled(appointments []*domain.Appointment) int {
	count := 0
	for _, apt := range appointments {
		if apt.CountsTowardCapacity() {
			count++
		}
	}
	return count
}

func reject(sel Selection, reason RejectionReason, message string) *Rejection {
	return &Rejection{
		CompanyID: sel.CompanyID,
		TimeSlot:  sel.TimeSlot,
		Reason:    reason,
		Message:   message,
	}
}

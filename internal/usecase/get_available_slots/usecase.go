package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/internal/service/companies"
)

// UseCase расчёт сетки доступности слотов компании
type UseCase struct {
	companyService  CompanyService
	appointmentRepo AppointmentRepo
	logger          Logger
}

// NewUseCase создает новый usecase расчёта доступности
func NewUseCase(companyService CompanyService, appointmentRepo AppointmentRepo, logger Logger) *UseCase {
	return &UseCase{
		companyService:  companyService,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute возвращает полную сетку слотов компании с вердиктом по каждому.
// Порядок слотов всегда хронологический и не зависит от вердиктов.
// Конфликт студента имеет приоритет над заполненностью слота.
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	company, err := uc.companyService.GetByID(ctx, req.CompanyID)
	if err != nil {
		if errors.Is(err, companies.ErrCompanyNotFound) {
			return nil, ErrCompanyNotFound
		}
		uc.logger.Error("GetAvailableSlots: get company %d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: Execute: %v", ErrInternal, err)
	}

	// Закрытая запись скрывает сетку целиком, а не показывает пустую
	if !company.AcceptsBookings() {
		return nil, ErrBookingUnavailable
	}

	bookedCounts, err := uc.scheduledCountsBySlot(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	// Email нормализуется так же, как при регистрации,
	// иначе конфликт не найдётся из-за регистра
	studentEmail := domain.StudentInfo{Email: req.StudentEmail}.Normalized().Email

	studentSlots, err := uc.studentBusySlots(ctx, studentEmail)
	if err != nil {
		return nil, err
	}

	grid := domain.SlotsForUnit(company.InterviewUnit)
	slots := make([]Slot, 0, len(grid))

	for _, ts := range grid {
		label := ts.Label()
		booked := bookedCounts[label]

		spots := company.CapacityPerSlot - booked
		if spots < 0 {
			spots = 0
		}

		status := StatusAvailable
		switch {
		// Конфликт студента важнее заполненности: студенту нужно знать,
		// что слот недоступен именно из-за его собственной записи
		case studentSlots[label]:
			status = StatusConflict
		case spots == 0:
			status = StatusFull
		}

		slots = append(slots, Slot{
			TimeSlot:       label,
			StartTime:      ts.StartTime().String(),
			EndTime:        ts.EndTime().String(),
			Capacity:       company.CapacityPerSlot,
			AvailableSpots: spots,
			Status:         status,
		})
	}

	return &Response{
		CompanyID:       company.ID,
		CompanyName:     company.Name,
		InterviewUnit:   company.InterviewUnit,
		DurationMinutes: company.SlotDurationMinutes(),
		EventDate:       domain.EventDateString,
		Slots:           slots,
	}, nil
}

// scheduledCountsBySlot считает занятые места по каждому слоту компании
func (uc *UseCase) scheduledCountsBySlot(ctx context.Context, companyID int64) (map[string]int, error) {
	active, err := uc.appointmentRepo.GetActiveByCompany(ctx, companyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: scheduledCountsBySlot: %v", ErrInternal, err)
	}

	counts := make(map[string]int, len(active))
	for _, apt := range active {
		if apt.IsScheduled() {
			counts[apt.TimeSlot]++
		}
	}
	return counts, nil
}

// studentBusySlots возвращает множество слотов, где студент уже записан
// (к любой компании)
func (uc *UseCase) studentBusySlots(ctx context.Context, email string) (map[string]bool, error) {
	if email == "" {
		return nil, nil
	}

	active, err := uc.appointmentRepo.GetActiveByStudent(ctx, email)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: studentBusySlots: %v", ErrInternal, err)
	}

	busy := make(map[string]bool, len(active))
	for _, apt := range active {
		busy[apt.TimeSlot] = true
	}
	return busy, nil
}

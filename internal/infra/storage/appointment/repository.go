package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/pkg/dbmetrics"
	"github.com/SaimAkramGill/bewanted/pkg/psqlbuilder"
)

// Имена partial unique индексов из миграций. По ним различаем, какой
// инвариант нарушил конкурентный insert.
const (
	constraintStudentSlot    = "uq_appointments_student_slot_active"
	constraintStudentCompany = "uq_appointments_student_company_active"

	uniqueViolationCode = "23505"
)

var appointmentColumns = []string{
	"id",
	"student_first_name",
	"student_last_name",
	"student_email",
	"student_phone",
	"field_of_study",
	"motivation",
	"company_id",
	"event_date",
	"time_slot",
	"status",
	"cv_reference",
	"german_language_confirmed",
	"internship_interest",
	"has_valid_visa",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// activeOnly фильтр по статусам, учитываемым при занятости слотов
func activeOnly() squirrel.NotEq {
	inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactiveStatusStrings[i] = string(s)
	}
	return squirrel.NotEq{"status": inactiveStatusStrings}
}

// Repository репозиторий для работы с записями на собеседования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись на собеседование.
// Если в контексте передана активная транзакция (через context.Value),
// использует её: при создании записи с проверкой занятости слота это
// обязательно, иначе проверка и insert не атомарны.
//
// Нарушения partial unique индексов БД транслируются в типизированные
// ошибки ErrStudentSlotTaken / ErrStudentCompanyTaken: проигравший гонку
// insert получает тот же отказ, что и обычная бизнес-проверка.
func (r *Repository) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"student_first_name",
			"student_last_name",
			"student_email",
			"student_phone",
			"field_of_study",
			"motivation",
			"company_id",
			"event_date",
			"time_slot",
			"status",
			"cv_reference",
			"german_language_confirmed",
			"internship_interest",
			"has_valid_visa",
		).
		Values(
			apt.Student.FirstName,
			apt.Student.LastName,
			apt.Student.Email,
			apt.Student.PhoneNumber,
			apt.Student.FieldOfStudy,
			apt.Student.Motivation,
			apt.CompanyID,
			apt.EventDate,
			apt.TimeSlot,
			apt.Status,
			apt.CVReference,
			apt.GermanLanguageConfirmed,
			apt.InternshipInterest,
			apt.HasValidVisa,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&apt.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if constraintErr := translateConstraintError(err); constraintErr != nil {
			return nil, constraintErr
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return apt, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	apt, err := r.scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return apt, nil
}

// GetActiveByCompanyAndSlot получает неотменённые записи компании на
// конкретный слот. Внутри транзакции строки блокируются FOR UPDATE,
// это сериализует конкурентные проверки ёмкости одного слота.
func (r *Repository) GetActiveByCompanyAndSlot(ctx context.Context, companyID int64, timeSlot string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"company_id": companyID, "time_slot": timeSlot}).
		Where(activeOnly()).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompanyAndSlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompanyAndSlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetActiveByCompany получает все неотменённые записи компании
// (для расчёта сетки доступности на весь день)
func (r *Repository) GetActiveByCompany(ctx context.Context, companyID int64) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"company_id": companyID}).
		Where(activeOnly()).
		OrderBy("time_slot ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompany - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetActiveByStudent получает все неотменённые записи студента по email
// (по всем компаниям)
func (r *Repository) GetActiveByStudent(ctx context.Context, email string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"student_email": email}).
		Where(activeOnly()).
		OrderBy("event_date ASC, time_slot ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStudent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByStudent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetByStudentEmail получает все записи студента, включая отменённые
// (история для личного кабинета)
func (r *Repository) GetByStudentEmail(ctx context.Context, email string) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"student_email": email}).
		OrderBy("event_date ASC, time_slot ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStudentEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ExistsActiveByStudentAndSlot проверяет, занят ли студент в указанный слот
// (любой компанией)
func (r *Repository) ExistsActiveByStudentAndSlot(ctx context.Context, email string, timeSlot string) (bool, error) {
	return r.existsActive(ctx, squirrel.Eq{"student_email": email, "time_slot": timeSlot},
		"ExistsActiveByStudentAndSlot")
}

// ExistsActiveByStudentAndCompany проверяет, есть ли у студента неотменённая
// запись к указанной компании
func (r *Repository) ExistsActiveByStudentAndCompany(ctx context.Context, email string, companyID int64) (bool, error) {
	return r.existsActive(ctx, squirrel.Eq{"student_email": email, "company_id": companyID},
		"ExistsActiveByStudentAndCompany")
}

func (r *Repository) existsActive(ctx context.Context, where squirrel.Eq, op string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(where).
		Where(activeOnly()).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count > 0, nil
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel переводит запись в статус cancelled с указанием причины.
// Физическое удаление записей не поддерживается, история сохраняется.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointment сканирует одну строку результата
func (r *Repository) scanAppointment(row *sql.Row) (*domain.Appointment, error) {
	var apt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&apt.ID,
		&apt.Student.FirstName,
		&apt.Student.LastName,
		&apt.Student.Email,
		&apt.Student.PhoneNumber,
		&apt.Student.FieldOfStudy,
		&apt.Student.Motivation,
		&apt.CompanyID,
		&apt.EventDate,
		&apt.TimeSlot,
		&apt.Status,
		&apt.CVReference,
		&apt.GermanLanguageConfirmed,
		&apt.InternshipInterest,
		&apt.HasValidVisa,
		&apt.CancellationReason,
		&apt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	apt.CreatedAt = createdAt.Time
	apt.UpdatedAt = updatedAt.Time

	return &apt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var apt domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&apt.ID,
			&apt.Student.FirstName,
			&apt.Student.LastName,
			&apt.Student.Email,
			&apt.Student.PhoneNumber,
			&apt.Student.FieldOfStudy,
			&apt.Student.Motivation,
			&apt.CompanyID,
			&apt.EventDate,
			&apt.TimeSlot,
			&apt.Status,
			&apt.CVReference,
			&apt.GermanLanguageConfirmed,
			&apt.InternshipInterest,
			&apt.HasValidVisa,
			&apt.CancellationReason,
			&apt.CancelledAt,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		apt.CreatedAt = createdAt.Time
		apt.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &apt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// translateConstraintError распознаёт нарушения уникальных индексов
// и возвращает соответствующую типизированную ошибку (nil, если ошибка
// не про наши индексы)
func translateConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolationCode {
		return nil
	}

	switch pqErr.Constraint {
	case constraintStudentSlot:
		return ErrStudentSlotTaken
	case constraintStudentCompany:
		return ErrStudentCompanyTaken
	default:
		return nil
	}
}

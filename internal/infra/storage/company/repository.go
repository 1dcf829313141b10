package company

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/pkg/dbmetrics"
	"github.com/SaimAkramGill/bewanted/pkg/psqlbuilder"
)

const uniqueViolationCode = "23505"

var companyColumns = []string{
	"id",
	"name",
	"industry",
	"package_type",
	"interview_unit",
	"capacity_per_slot",
	"booking_enabled",
	"german_required",
	"internship_visa_required",
	"positions",
	"description",
	"website",
	"logo_url",
	"contact_name",
	"contact_email",
	"contact_phone",
	"is_active",
	"created_at",
	"updated_at",
}

// ConfigUpdate частичное обновление конфигурации компании.
// nil поля не трогаем.
type ConfigUpdate struct {
	BookingEnabled         *bool
	CapacityPerSlot        *int
	InterviewUnit          *domain.InterviewUnit
	GermanRequired         *bool
	InternshipVisaRequired *bool
	IsActive               *bool
}

// IsEmpty возвращает true, если обновлять нечего
func (u ConfigUpdate) IsEmpty() bool {
	return u.BookingEnabled == nil &&
		u.CapacityPerSlot == nil &&
		u.InterviewUnit == nil &&
		u.GermanRequired == nil &&
		u.InternshipVisaRequired == nil &&
		u.IsActive == nil
}

// Repository репозиторий для работы с компаниями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория компаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую компанию
func (r *Repository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("companies").
		Columns(
			"name",
			"industry",
			"package_type",
			"interview_unit",
			"capacity_per_slot",
			"booking_enabled",
			"german_required",
			"internship_visa_required",
			"positions",
			"description",
			"website",
			"logo_url",
			"contact_name",
			"contact_email",
			"contact_phone",
			"is_active",
		).
		Values(
			c.Name,
			c.Industry,
			c.PackageType,
			c.InterviewUnit,
			c.CapacityPerSlot,
			c.BookingEnabled,
			c.GermanRequired,
			c.InternshipVisaRequired,
			pq.Array(c.Positions),
			c.Description,
			c.Website,
			c.LogoURL,
			c.Contact.Name,
			c.Contact.Email,
			c.Contact.Phone,
			c.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			return nil, ErrCompanyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID получает компанию по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanCompanyRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan company: %v", ErrScanRow, err)
	}

	return c, nil
}

// List получает активные компании, отсортированные по имени.
// onlyBookable дополнительно фильтрует компании с закрытой записью.
func (r *Repository) List(ctx context.Context, onlyBookable bool) ([]*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(companyColumns...).
		From("companies").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	if onlyBookable {
		builder = builder.Where(squirrel.Eq{"booking_enabled": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		c, err := scanCompanyRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan company: %v", ErrScanRow, err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return companies, nil
}

// CountActive считает активные компании
func (r *Repository) CountActive(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("companies").
		Where(squirrel.Eq{"is_active": true}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActive - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateConfig применяет частичное обновление конфигурации компании
// и возвращает обновлённую компанию
func (r *Repository) UpdateConfig(ctx context.Context, id int64, update ConfigUpdate) (*domain.Company, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("companies").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if update.BookingEnabled != nil {
		builder = builder.Set("booking_enabled", *update.BookingEnabled)
	}
	if update.CapacityPerSlot != nil {
		builder = builder.Set("capacity_per_slot", *update.CapacityPerSlot)
	}
	if update.InterviewUnit != nil {
		builder = builder.Set("interview_unit", *update.InterviewUnit)
	}
	if update.GermanRequired != nil {
		builder = builder.Set("german_required", *update.GermanRequired)
	}
	if update.InternshipVisaRequired != nil {
		builder = builder.Set("internship_visa_required", *update.InternshipVisaRequired)
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
	}

	query, args, err := builder.Suffix("RETURNING " + joinColumns(companyColumns)).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateConfig - build update query: %v", ErrBuildQuery, err)
	}

	c, err := scanCompanyRow(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCompanyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateConfig - scan company: %v", ErrScanRow, err)
	}

	return c, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCompany(s rowScanner) (*domain.Company, error) {
	var c domain.Company
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Industry,
		&c.PackageType,
		&c.InterviewUnit,
		&c.CapacityPerSlot,
		&c.BookingEnabled,
		&c.GermanRequired,
		&c.InternshipVisaRequired,
		pq.Array(&c.Positions),
		&c.Description,
		&c.Website,
		&c.LogoURL,
		&c.Contact.Name,
		&c.Contact.Email,
		&c.Contact.Phone,
		&c.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func scanCompanyRow(row *sql.Row) (*domain.Company, error) {
	return scanCompany(row)
}

func scanCompanyRows(rows *sql.Rows) (*domain.Company, error) {
	return scanCompany(rows)
}

func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}

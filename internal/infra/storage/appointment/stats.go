package appointment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/SaimAkramGill/bewanted/internal/domain"
	"github.com/SaimAkramGill/bewanted/pkg/dbmetrics"
	"github.com/SaimAkramGill/bewanted/pkg/psqlbuilder"
)

// CompanyBookingCount количество активных записей по компании
type CompanyBookingCount struct {
	CompanyID   int64
	CompanyName string
	Count       int
}

// FieldCount распределение записей по направлению обучения
type FieldCount struct {
	FieldOfStudy string
	Count        int
}

// CountDistinctStudents считает уникальных студентов с неотменёнными записями
func (r *Repository) CountDistinctStudents(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(DISTINCT student_email)").
		From("appointments").
		Where(activeOnly()).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountDistinctStudents - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountDistinctStudents - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountByStatus считает записи в указанном статусе
func (r *Repository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("appointments").
		Where(squirrel.Eq{"status": status}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - build query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByStatus - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ActiveCountByCompany возвращает компании с количеством неотменённых записей,
// отсортированные по убыванию популярности
func (r *Repository) ActiveCountByCompany(ctx context.Context, limit uint64) ([]CompanyBookingCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("a.company_id", "c.name", "COUNT(*) AS cnt").
		From("appointments a").
		Join("companies c ON c.id = a.company_id").
		Where(squirrel.NotEq{"a.status": domain.StatusCancelled}).
		GroupBy("a.company_id", "c.name").
		OrderBy("cnt DESC", "c.name ASC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveCountByCompany - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ActiveCountByCompany - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make([]CompanyBookingCount, 0)
	for rows.Next() {
		var c CompanyBookingCount
		if err := rows.Scan(&c.CompanyID, &c.CompanyName, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: ActiveCountByCompany - scan row: %v", ErrScanRow, err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ActiveCountByCompany - rows error: %v", ErrScanRow, err)
	}

	return counts, nil
}

// FieldOfStudyDistribution возвращает распределение неотменённых записей
// по направлениям обучения
func (r *Repository) FieldOfStudyDistribution(ctx context.Context) ([]FieldCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("field_of_study", "COUNT(*) AS cnt").
		From("appointments").
		Where(activeOnly()).
		GroupBy("field_of_study").
		OrderBy("cnt DESC", "field_of_study ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FieldOfStudyDistribution - build query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FieldOfStudyDistribution - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	fields := make([]FieldCount, 0)
	for rows.Next() {
		var f FieldCount
		if err := rows.Scan(&f.FieldOfStudy, &f.Count); err != nil {
			return nil, fmt.Errorf("%w: FieldOfStudyDistribution - scan row: %v", ErrScanRow, err)
		}
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FieldOfStudyDistribution - rows error: %v", ErrScanRow, err)
	}

	return fields, nil
}

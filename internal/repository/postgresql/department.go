package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.DepartmentRepository {
	return &departmentRepositoryImpl{db: db}
}

const departmentColumns = `id, department_name, max_clock_in_time, max_clock_out_time, created_at, updated_at`

func scanDepartment(row pgx.Row) (department.Department, error) {
	var d department.Department
	var clockIn, clockOut pgtype.Time
	if err := row.Scan(&d.ID, &d.DepartmentName, &clockIn, &clockOut, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return department.Department{}, err
	}
	d.MaxClockInTime = fromPgTime(clockIn)
	d.MaxClockOutTime = fromPgTime(clockOut)
	return d, nil
}

// Create implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, newDepartment department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, department_name, max_clock_in_time, max_clock_out_time)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + departmentColumns

	created, err := scanDepartment(q.QueryRow(ctx, query,
		newDepartment.ID,
		newDepartment.DepartmentName,
		toPgTime(newDepartment.MaxClockInTime),
		toPgTime(newDepartment.MaxClockOutTime),
	))
	if err != nil {
		if isPgError(err, database.UniqueViolation) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return created, nil
}

// GetByID implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`

	d, err := scanDepartment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("failed to get department by id: %w", err)
	}

	return d, nil
}

// ExistsByName implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM departments WHERE department_name = $1 AND ($2::uuid IS NULL OR id <> $2::uuid))`

	var exists bool
	if err := q.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check department name: %w", err)
	}

	return exists, nil
}

// Update implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE departments
		SET department_name = $2, max_clock_in_time = $3, max_clock_out_time = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + departmentColumns

	updated, err := scanDepartment(q.QueryRow(ctx, query,
		d.ID,
		d.DepartmentName,
		toPgTime(d.MaxClockInTime),
		toPgTime(d.MaxClockOutTime),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		if isPgError(err, database.UniqueViolation) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return updated, nil
}

// Delete implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if isPgError(err, database.ForeignKeyViolation) {
			return department.ErrDepartmentHasEmployees
		}
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}

	return nil
}

// List implements department.DepartmentRepository.
func (r *departmentRepositoryImpl) List(ctx context.Context, filter department.DepartmentFilter) ([]department.Department, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		conditions = append(conditions, fmt.Sprintf("department_name ILIKE $%d", argIdx))
		args = append(args, containsPattern(*filter.Search))
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM departments WHERE %s", whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count departments: %w", err)
	}

	// Main query with pagination
	query := fmt.Sprintf(`
		SELECT %s
		FROM departments
		WHERE %s
		ORDER BY created_at DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, departmentColumns, whereClause, argIdx, argIdx+1)

	args = append(args, filter.PerPage, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return departments, total, nil
}

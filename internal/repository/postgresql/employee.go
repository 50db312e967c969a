package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeSelect = `
	SELECT
		e.id, e.department_id, e.name, e.address, e.created_at, e.updated_at,
		d.id, d.department_name, d.max_clock_in_time, d.max_clock_out_time, d.created_at, d.updated_at
	FROM employees e
	JOIN departments d ON d.id = e.department_id
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	var clockIn, clockOut pgtype.Time
	err := row.Scan(
		&e.ID, &e.DepartmentID, &e.Name, &e.Address, &e.CreatedAt, &e.UpdatedAt,
		&e.Department.ID, &e.Department.DepartmentName, &clockIn, &clockOut,
		&e.Department.CreatedAt, &e.Department.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	e.Department.MaxClockInTime = fromPgTime(clockIn)
	e.Department.MaxClockOutTime = fromPgTime(clockOut)
	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEmployee(q.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}

	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (id, department_id, name, address)
		VALUES ($1, $2, $3, $4)
	`

	_, err := q.Exec(ctx, query, newEmployee.ID, newEmployee.DepartmentID, newEmployee.Name, newEmployee.Address)
	if err != nil {
		if isPgError(err, database.ForeignKeyViolation) {
			return employee.Employee{}, department.ErrDepartmentNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return r.GetByID(ctx, newEmployee.ID)
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET department_id = $2, name = $3, address = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, e.ID, e.DepartmentID, e.Name, e.Address)
	if err != nil {
		if isPgError(err, database.ForeignKeyViolation) {
			return employee.Employee{}, department.ErrDepartmentNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	return r.GetByID(ctx, e.ID)
}

// Delete implements employee.EmployeeRepository. Attendance rows and their
// history go with the employee.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ExistsByDepartmentID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ExistsByDepartmentID(ctx context.Context, departmentID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE department_id = $1)`, departmentID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check department employees: %w", err)
	}

	return exists, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR d.department_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, containsPattern(*filter.Search))
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	var total int64
	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM employees e
		JOIN departments d ON d.id = e.department_id
		WHERE %s
	`, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	// Main query with pagination
	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $%d OFFSET $%d
	`, employeeSelect, whereClause, argIdx, argIdx+1)

	args = append(args, filter.PerPage, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

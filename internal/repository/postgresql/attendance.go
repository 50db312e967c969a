package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceFrom = `
	FROM attendances a
	JOIN employees e ON e.id = a.employee_id
	JOIN departments d ON d.id = e.department_id
	LEFT JOIN attendance_histories h ON h.attendance_id = a.id
`

const attendanceSelect = `
	SELECT
		a.id, a.employee_id, a.work_date, a.clock_in, a.clock_out, a.created_at, a.updated_at,
		e.id, e.department_id, e.name, e.address, e.created_at, e.updated_at,
		d.id, d.department_name, d.max_clock_in_time, d.max_clock_out_time, d.created_at, d.updated_at,
		h.id, h.employee_id, h.date_attendance, h.attendance_type, h.description, h.created_at
` + attendanceFrom

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	var policyIn, policyOut pgtype.Time
	var (
		historyID          *string
		historyEmployeeID  *string
		historyDate        *time.Time
		historyType        *int16
		historyDescription *string
		historyCreatedAt   *time.Time
	)

	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.WorkDate, &a.ClockIn, &a.ClockOut, &a.CreatedAt, &a.UpdatedAt,
		&a.Employee.ID, &a.Employee.DepartmentID, &a.Employee.Name, &a.Employee.Address,
		&a.Employee.CreatedAt, &a.Employee.UpdatedAt,
		&a.Employee.Department.ID, &a.Employee.Department.DepartmentName, &policyIn, &policyOut,
		&a.Employee.Department.CreatedAt, &a.Employee.Department.UpdatedAt,
		&historyID, &historyEmployeeID, &historyDate, &historyType, &historyDescription, &historyCreatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}

	a.Employee.Department.MaxClockInTime = fromPgTime(policyIn)
	a.Employee.Department.MaxClockOutTime = fromPgTime(policyOut)

	if historyID != nil {
		a.History = &attendance.History{
			ID:             *historyID,
			AttendanceID:   a.ID,
			EmployeeID:     *historyEmployeeID,
			DateAttendance: *historyDate,
			AttendanceType: attendance.HistoryType(*historyType),
			Description:    *historyDescription,
			CreatedAt:      *historyCreatedAt,
		}
	}

	return a, nil
}

// Create implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, work_date, clock_in)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.ID,
		newAttendance.EmployeeID,
		pgtype.Date{Time: newAttendance.WorkDate, Valid: true},
		newAttendance.ClockIn,
	).Scan(&newAttendance.CreatedAt, &newAttendance.UpdatedAt)
	if err != nil {
		if isPgError(err, database.UniqueViolation) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAttendance(q.QueryRow(ctx, attendanceSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by id: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, forUpdate bool) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := attendanceSelect + ` WHERE a.employee_id = $1 AND a.work_date = $2`
	if forUpdate {
		query += ` FOR UPDATE OF a`
	}

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, pgtype.Date{Time: workDate, Valid: true}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No attendance for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &a, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) SetClockOut(ctx context.Context, id string, clockOut time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET clock_out = $2, updated_at = NOW()
		WHERE id = $1 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, clockOut)
	if err != nil {
		return fmt.Errorf("failed to set clock out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		conditions = append(conditions, fmt.Sprintf("(e.name ILIKE $%d OR d.department_name ILIKE $%d)", argIdx, argIdx))
		args = append(args, containsPattern(*filter.Search))
		argIdx++
	}
	if filter.DepartmentID != nil && *filter.DepartmentID != "" {
		conditions = append(conditions, fmt.Sprintf("e.department_id = $%d", argIdx))
		args = append(args, *filter.DepartmentID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.work_date = $%d", argIdx))
		args = append(args, pgtype.Date{Time: *filter.Date, Valid: true})
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	// Count query
	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) %s WHERE %s", attendanceFrom, whereClause)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	// Main query with pagination
	query := fmt.Sprintf(`%s
		WHERE %s
		ORDER BY a.clock_in DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, attendanceSelect, whereClause, argIdx, argIdx+1)

	args = append(args, filter.PerPage, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

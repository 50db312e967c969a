package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type historyRepositoryImpl struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) attendance.HistoryRepository {
	return &historyRepositoryImpl{db: db}
}

// Create implements attendance.HistoryRepository. Histories are never
// updated afterwards.
func (r *historyRepositoryImpl) Create(ctx context.Context, history attendance.History) (attendance.History, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_histories (id, attendance_id, employee_id, date_attendance, attendance_type, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		history.ID,
		history.AttendanceID,
		history.EmployeeID,
		history.DateAttendance,
		int16(history.AttendanceType),
		history.Description,
	).Scan(&history.CreatedAt)
	if err != nil {
		return attendance.History{}, fmt.Errorf("failed to create attendance history: %w", err)
	}

	return history, nil
}

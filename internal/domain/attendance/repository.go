package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for ledger rows. Reads return
// the full aggregate: employee, department and history.
type AttendanceRepository interface {
	// Create inserts a ledger row. A second row for the same employee and
	// work date fails with ErrAlreadyClockedIn.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID returns ErrAttendanceNotFound when missing
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil, nil when the employee has no row
	// for workDate. forUpdate locks the row until the transaction ends.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time, forUpdate bool) (*Attendance, error)

	// SetClockOut closes an open row; an already closed row yields
	// ErrAlreadyClockedOut.
	SetClockOut(ctx context.Context, id string, clockOut time.Time) error

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Delete cascades to the history annotation
	Delete(ctx context.Context, id string) error
}

type HistoryRepository interface {
	Create(ctx context.Context, history History) (History, error)
}

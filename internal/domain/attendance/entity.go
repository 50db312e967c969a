package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
)

// Attendance is one employee's ledger row for one calendar day, loaded
// together with its employee, department and exception annotation.
type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	ClockIn    time.Time
	ClockOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Employee employee.Employee
	History  *History
}

type HistoryType int16

const (
	LateArrival HistoryType = 1
	EarlyLeave  HistoryType = 2
)

func (t HistoryType) String() string {
	switch t {
	case LateArrival:
		return "late_arrival"
	case EarlyLeave:
		return "early_leave"
	default:
		return "unknown"
	}
}

// History justifies a late arrival or early leave. Append-only; removed
// only by cascade with its attendance row.
type History struct {
	ID             string
	AttendanceID   string
	EmployeeID     string
	DateAttendance time.Time
	AttendanceType HistoryType
	Description    string
	CreatedAt      time.Time
}

// HasHistory reports whether an annotation of type t is attached.
func (a Attendance) HasHistory(t HistoryType) bool {
	return a.History != nil && a.History.AttendanceType == t
}

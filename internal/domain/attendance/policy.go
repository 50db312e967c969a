package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// State is where an employee stands for one calendar day.
type State int

const (
	NoRecord State = iota
	ClockedIn
	ClockedOut
)

func (s State) String() string {
	switch s {
	case ClockedIn:
		return "clocked_in"
	case ClockedOut:
		return "clocked_out"
	default:
		return "no_record"
	}
}

// StateOf derives the day state from the day's record, which may be nil.
func StateOf(existing *Attendance) State {
	switch {
	case existing == nil:
		return NoRecord
	case existing.ClockOut == nil:
		return ClockedIn
	default:
		return ClockedOut
	}
}

const (
	StatusLate       = "Late"
	StatusEarlyLeave = "Early Leave"
)

// Status is the read-time label of a record. Late takes precedence over
// Early Leave.
func (a Attendance) Status() string {
	switch {
	case a.HasHistory(LateArrival):
		return StatusLate
	case a.ClockOut != nil && a.HasHistory(EarlyLeave):
		return StatusEarlyLeave
	default:
		return ""
	}
}

type ClockInVerdict struct {
	Deadline time.Time
	Late     bool
}

// DecideClockIn judges a clock-in at now against the department's
// max_clock_in_time on now's calendar day.
func DecideClockIn(now time.Time, policy department.Department, existing *Attendance, description *string) (ClockInVerdict, error) {
	if StateOf(existing) != NoRecord {
		return ClockInVerdict{}, ErrAlreadyClockedIn
	}

	deadline := policy.MaxClockInTime.On(now)
	late := now.After(deadline)
	if late && validator.IsBlank(description) {
		return ClockInVerdict{}, ErrLateClockInRequiresDescription
	}

	return ClockInVerdict{Deadline: deadline, Late: late}, nil
}

type ClockOutVerdict struct {
	Deadline time.Time
	Early    bool
}

// DecideClockOut judges a clock-out at now against the department's
// max_clock_out_time. An employee who arrived late may not leave early,
// justified or not.
func DecideClockOut(now time.Time, policy department.Department, existing *Attendance, description *string) (ClockOutVerdict, error) {
	switch StateOf(existing) {
	case NoRecord:
		return ClockOutVerdict{}, ErrNotClockedIn
	case ClockedOut:
		return ClockOutVerdict{}, ErrAlreadyClockedOut
	}

	deadline := policy.MaxClockOutTime.On(now)
	early := now.Before(deadline)
	if early {
		// Checked before the description on purpose: a late arrival
		// cannot justify leaving early, so a missing description is 403
		// rather than 422.
		if existing.HasHistory(LateArrival) {
			return ClockOutVerdict{}, ErrLateEmployeeEarlyLeave
		}
		if validator.IsBlank(description) {
			return ClockOutVerdict{}, ErrEarlyClockOutRequiresDescription
		}
	}

	if !now.After(existing.ClockIn) {
		return ClockOutVerdict{}, ErrClockOutBeforeClockIn
	}

	return ClockOutVerdict{Deadline: deadline, Early: early}, nil
}

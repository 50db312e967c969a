package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itDepartment = department.Department{
	ID:              "0192a4b0-0000-7000-8000-000000000001",
	DepartmentName:  "IT",
	MaxClockInTime:  clock.TimeOfDay{Hour: 8},
	MaxClockOutTime: clock.TimeOfDay{Hour: 17},
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.October, 17, hour, minute, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func openRecord(clockIn time.Time, history *History) *Attendance {
	return &Attendance{ID: "a1", EmployeeID: "e1", WorkDate: clock.StartOfDay(clockIn), ClockIn: clockIn, History: history}
}

func TestStateOf(t *testing.T) {
	out := at(17, 0)
	assert.Equal(t, NoRecord, StateOf(nil))
	assert.Equal(t, ClockedIn, StateOf(&Attendance{ClockIn: at(8, 0)}))
	assert.Equal(t, ClockedOut, StateOf(&Attendance{ClockIn: at(8, 0), ClockOut: &out}))
}

func TestDecideClockIn(t *testing.T) {
	tests := []struct {
		name        string
		now         time.Time
		existing    *Attendance
		description *string
		wantErr     error
		wantLate    bool
	}{
		{name: "before deadline", now: at(7, 55)},
		{name: "exactly at deadline is on time", now: at(8, 0)},
		{name: "on time ignores description", now: at(7, 0), description: strPtr("early bird")},
		{name: "late without description", now: at(8, 15), wantErr: ErrLateClockInRequiresDescription},
		{name: "late with blank description", now: at(8, 15), description: strPtr("   "), wantErr: ErrLateClockInRequiresDescription},
		{name: "late with description", now: at(8, 15), description: strPtr("traffic"), wantLate: true},
		{name: "one second late", now: at(8, 0).Add(time.Second), description: strPtr("lift"), wantLate: true},
		{name: "already clocked in", now: at(9, 0), existing: openRecord(at(7, 50), nil), wantErr: ErrAlreadyClockedIn},
		{
			name:     "already clocked out",
			now:      at(18, 0),
			existing: func() *Attendance { a := openRecord(at(7, 50), nil); o := at(17, 5); a.ClockOut = &o; return a }(),
			wantErr:  ErrAlreadyClockedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := DecideClockIn(tt.now, itDepartment, tt.existing, tt.description)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLate, verdict.Late)
			assert.Equal(t, at(8, 0), verdict.Deadline)
		})
	}
}

func TestDecideClockOut(t *testing.T) {
	late := &History{AttendanceType: LateArrival, Description: "traffic"}
	closed := openRecord(at(7, 50), nil)
	closedAt := at(17, 1)
	closed.ClockOut = &closedAt

	tests := []struct {
		name        string
		now         time.Time
		existing    *Attendance
		description *string
		wantErr     error
		wantEarly   bool
	}{
		{name: "no record", now: at(17, 0), wantErr: ErrNotClockedIn},
		{name: "already clocked out", now: at(18, 0), existing: closed, wantErr: ErrAlreadyClockedOut},
		{name: "at deadline", now: at(17, 0), existing: openRecord(at(7, 50), nil)},
		{name: "after deadline", now: at(17, 30), existing: openRecord(at(7, 50), nil)},
		{name: "late arrival leaving on time", now: at(17, 30), existing: openRecord(at(8, 20), late)},
		{name: "early without description", now: at(16, 0), existing: openRecord(at(7, 50), nil), wantErr: ErrEarlyClockOutRequiresDescription},
		{name: "early with description", now: at(16, 0), existing: openRecord(at(7, 50), nil), description: strPtr("doctor"), wantEarly: true},
		{name: "late employee leaving early", now: at(16, 0), existing: openRecord(at(8, 20), late), wantErr: ErrLateEmployeeEarlyLeave},
		{name: "late employee leaving early with description", now: at(16, 0), existing: openRecord(at(8, 20), late), description: strPtr("doctor"), wantErr: ErrLateEmployeeEarlyLeave},
		{name: "clock out not after clock in", now: at(18, 0), existing: openRecord(at(18, 0), nil), wantErr: ErrClockOutBeforeClockIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, err := DecideClockOut(tt.now, itDepartment, tt.existing, tt.description)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEarly, verdict.Early)
			assert.Equal(t, at(17, 0), verdict.Deadline)
		})
	}
}

func TestAttendance_Status(t *testing.T) {
	out := at(17, 0)
	lateHistory := &History{AttendanceType: LateArrival}
	earlyHistory := &History{AttendanceType: EarlyLeave}

	assert.Equal(t, "", Attendance{ClockIn: at(7, 0)}.Status())
	assert.Equal(t, StatusLate, Attendance{ClockIn: at(9, 0), History: lateHistory}.Status())
	assert.Equal(t, "", Attendance{ClockIn: at(9, 0), History: earlyHistory}.Status())
	assert.Equal(t, "", Attendance{ClockIn: at(7, 0), ClockOut: &out}.Status())
	assert.Equal(t, StatusLate, Attendance{ClockIn: at(9, 0), ClockOut: &out, History: lateHistory}.Status())
	assert.Equal(t, StatusEarlyLeave, Attendance{ClockIn: at(7, 0), ClockOut: &out, History: earlyHistory}.Status())
}

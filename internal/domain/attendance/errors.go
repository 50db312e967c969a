package attendance

import "errors"

// Attendance domain errors
var (
	// Clock-in errors
	ErrAlreadyClockedIn               = errors.New("you have already clocked in today")
	ErrLateClockInRequiresDescription = errors.New("late clock-in requires a description")

	// Clock-out errors
	ErrNotClockedIn                     = errors.New("you have not clocked in today")
	ErrAlreadyClockedOut                = errors.New("you have already clocked out today")
	ErrEarlyClockOutRequiresDescription = errors.New("early clock-out requires a description")
	ErrLateEmployeeEarlyLeave           = errors.New("late employees are not allowed early clock-out")
	ErrClockOutBeforeClockIn            = errors.New("clock-out must be later than clock-in")

	// General errors
	ErrClockInProgress    = errors.New("another clock request for this employee is in progress")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

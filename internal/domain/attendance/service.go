package attendance

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// ClockIn opens today's record for the employee
	ClockIn(ctx context.Context, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes today's open record for the employee
	ClockOut(ctx context.Context, req ClockOutRequest) (AttendanceResponse, error)

	ListAttendance(ctx context.Context, filter AttendanceFilter) (pagination.Page[AttendanceResponse], error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)

	// DeleteAttendance is an administrative removal with no policy check
	DeleteAttendance(ctx context.Context, id string) error
}

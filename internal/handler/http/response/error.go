package response

import (
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

var debug atomic.Bool

// SetDebug controls whether unexpected errors are echoed to clients.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentHasEmployees):
		UnprocessableEntity(w, "Department still has employees")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		BadRequest(w, "You have already clocked in today", nil)
	case errors.Is(err, attendance.ErrLateClockInRequiresDescription):
		UnprocessableEntity(w, "Late clock-in requires a description")
	case errors.Is(err, attendance.ErrNotClockedIn):
		NotFound(w, "You have not clocked in today")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		BadRequest(w, "You have already clocked out today", nil)
	case errors.Is(err, attendance.ErrEarlyClockOutRequiresDescription):
		UnprocessableEntity(w, "Early clock-out requires a description")
	case errors.Is(err, attendance.ErrLateEmployeeEarlyLeave):
		Forbidden(w, "Late employees are not allowed early clock-out")
	case errors.Is(err, attendance.ErrClockOutBeforeClockIn):
		UnprocessableEntity(w, "Clock-out must be later than clock-in")
	case errors.Is(err, attendance.ErrClockInProgress):
		Conflict(w, "Another clock request for this employee is in progress")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		var details map[string]string
		if debug.Load() {
			details = map[string]string{"error": err.Error()}
		}
		InternalServerErrorWithDetails(w, "An unexpected error occurred", details)
	}
}

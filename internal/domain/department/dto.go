package department

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateDepartmentRequest struct {
	DepartmentName  string `json:"department_name"`
	MaxClockInTime  string `json:"max_clock_in_time"`
	MaxClockOutTime string `json:"max_clock_out_time"`
}

// Validate trims the name in place before checking it.
func (r *CreateDepartmentRequest) Validate() error {
	r.DepartmentName = strings.TrimSpace(r.DepartmentName)
	return validatePolicy(r.DepartmentName, r.MaxClockInTime, r.MaxClockOutTime)
}

type UpdateDepartmentRequest struct {
	ID              string `json:"-"`
	DepartmentName  string `json:"department_name"`
	MaxClockInTime  string `json:"max_clock_in_time"`
	MaxClockOutTime string `json:"max_clock_out_time"`
}

func (r *UpdateDepartmentRequest) Validate() error {
	r.DepartmentName = strings.TrimSpace(r.DepartmentName)
	return validatePolicy(r.DepartmentName, r.MaxClockInTime, r.MaxClockOutTime)
}

func validatePolicy(name, clockIn, clockOut string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	} else if validator.ExceedsLength(name, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_clock_in_time",
			Message: "max_clock_in_time is required",
		})
	} else if !validator.IsValidClockTime(clockIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_clock_in_time",
			Message: "max_clock_in_time must be in HH:MM format",
		})
	}

	if validator.IsEmpty(clockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_clock_out_time",
			Message: "max_clock_out_time is required",
		})
	} else if !validator.IsValidClockTime(clockOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "max_clock_out_time",
			Message: "max_clock_out_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DepartmentFilter struct {
	Search *string
	pagination.Params
}

type DepartmentResponse struct {
	ID              string `json:"id"`
	DepartmentName  string `json:"department_name"`
	MaxClockInTime  string `json:"max_clock_in_time"`
	MaxClockOutTime string `json:"max_clock_out_time"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// PolicyResponse is the department as embedded in employee and attendance
// payloads, with second-precision times.
type PolicyResponse struct {
	DepartmentName  string `json:"department_name"`
	MaxClockInTime  string `json:"max_clock_in_time"`
	MaxClockOutTime string `json:"max_clock_out_time"`
}

func ToResponse(d Department) DepartmentResponse {
	return DepartmentResponse{
		ID:              d.ID,
		DepartmentName:  d.DepartmentName,
		MaxClockInTime:  d.MaxClockInTime.HHMM(),
		MaxClockOutTime: d.MaxClockOutTime.HHMM(),
		CreatedAt:       d.CreatedAt.Format(clock.DisplayLayout),
		UpdatedAt:       d.UpdatedAt.Format(clock.DisplayLayout),
	}
}

func ToPolicyResponse(d Department) PolicyResponse {
	return PolicyResponse{
		DepartmentName:  d.DepartmentName,
		MaxClockInTime:  d.MaxClockInTime.String(),
		MaxClockOutTime: d.MaxClockOutTime.String(),
	}
}

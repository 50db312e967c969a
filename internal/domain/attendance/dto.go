package attendance

import (
	"errors"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	EmployeeID  string  `json:"employee_id"`
	Description *string `json:"description"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "the selected employee_id is invalid",
		})
	}

	errs = append(errs, validateDescription(r.Description)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ClockOutRequest takes EmployeeID from the URL path.
type ClockOutRequest struct {
	EmployeeID  string  `json:"-"`
	Description *string `json:"description"`
}

func (r *ClockOutRequest) Validate() error {
	errs := validateDescription(r.Description)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDescription(description *string) validator.ValidationErrors {
	if description != nil && validator.ExceedsLength(*description, 1000) {
		return validator.Field("description", "description must not exceed 1000 characters")
	}
	return nil
}

// Description returns the trimmed justification text, empty when absent.
func Description(description *string) string {
	if description == nil {
		return ""
	}
	return strings.TrimSpace(*description)
}

type AttendanceFilter struct {
	Search       *string
	DepartmentID *string
	Date         *time.Time
	pagination.Params
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors
	if f.DepartmentID != nil && !validator.IsValidUUID(*f.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "the selected department_id is invalid",
		})
	}
	if err := f.Params.Validate(); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			errs = append(errs, verrs...)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeSummary struct {
	Name       string                    `json:"name"`
	Department department.PolicyResponse `json:"department"`
}

type HistoryResponse struct {
	AttendanceType HistoryType `json:"attendance_type"`
	Description    string      `json:"description"`
	DateAttendance string      `json:"date_attendance"`
}

type AttendanceResponse struct {
	ID         string           `json:"id"`
	EmployeeID string           `json:"employee_id"`
	Employee   EmployeeSummary  `json:"employee"`
	ClockIn    string           `json:"clock_in"`
	ClockOut   *string          `json:"clock_out"`
	Status     string           `json:"status"`
	History    *HistoryResponse `json:"history,omitempty"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Employee: EmployeeSummary{
			Name:       a.Employee.Name,
			Department: department.ToPolicyResponse(a.Employee.Department),
		},
		ClockIn:   a.ClockIn.Format(clock.DisplayLayout),
		Status:    a.Status(),
		CreatedAt: a.CreatedAt.Format(clock.DisplayLayout),
		UpdatedAt: a.UpdatedAt.Format(clock.DisplayLayout),
	}
	if a.ClockOut != nil {
		clockOut := a.ClockOut.Format(clock.DisplayLayout)
		resp.ClockOut = &clockOut
	}
	if a.History != nil {
		resp.History = &HistoryResponse{
			AttendanceType: a.History.AttendanceType,
			Description:    a.History.Description,
			DateAttendance: a.History.DateAttendance.Format(clock.DisplayLayout),
		}
	}
	return resp
}

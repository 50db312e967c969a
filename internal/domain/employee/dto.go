package employee

import (
	"strings"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
}

// Validate trims name and address in place before checking them.
func (r *CreateEmployeeRequest) Validate() error {
	r.Name, r.Address = strings.TrimSpace(r.Name), strings.TrimSpace(r.Address)
	return validateEmployee(r.DepartmentID, r.Name, r.Address)
}

type UpdateEmployeeRequest struct {
	ID           string `json:"-"`
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	r.Name, r.Address = strings.TrimSpace(r.Name), strings.TrimSpace(r.Address)
	return validateEmployee(r.DepartmentID, r.Name, r.Address)
}

func validateEmployee(departmentID, name, address string) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(departmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	} else if !validator.IsValidUUID(departmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "the selected department_id is invalid",
		})
	}

	if validator.IsEmpty(name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if validator.ExceedsLength(name, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Search *string
	pagination.Params
}

type EmployeeResponse struct {
	ID           string                    `json:"id"`
	DepartmentID string                    `json:"department_id"`
	Name         string                    `json:"name"`
	Address      string                    `json:"address"`
	Department   department.PolicyResponse `json:"department"`
	CreatedAt    string                    `json:"created_at"`
	UpdatedAt    string                    `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		DepartmentID: e.DepartmentID,
		Name:         e.Name,
		Address:      e.Address,
		Department:   department.ToPolicyResponse(e.Department),
		CreatedAt:    e.CreatedAt.Format(clock.DisplayLayout),
		UpdatedAt:    e.UpdatedAt.Format(clock.DisplayLayout),
	}
}

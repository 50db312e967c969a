package employee

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees matches search against employee or department name
	ListEmployees(ctx context.Context, filter EmployeeFilter) (pagination.Page[EmployeeResponse], error)

	// GetEmployee retrieves a single employee with its department
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee removes the employee and, by cascade, their attendance
	DeleteEmployee(ctx context.Context, id string) error
}

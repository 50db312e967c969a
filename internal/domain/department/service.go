package department

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/pagination"
)

// DepartmentService defines business logic for department policy windows
type DepartmentService interface {
	ListDepartments(ctx context.Context, filter DepartmentFilter) (pagination.Page[DepartmentResponse], error)
	CreateDepartment(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetDepartment(ctx context.Context, id string) (DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req UpdateDepartmentRequest) (DepartmentResponse, error)
	DeleteDepartment(ctx context.Context, id string) error
}

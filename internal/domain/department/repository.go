package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, newDepartment Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	// ExistsByName reports whether another department already uses name.
	// excludeID skips the department being updated.
	ExistsByName(ctx context.Context, name string, excludeID *string) (bool, error)
	Update(ctx context.Context, department Department) (Department, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter DepartmentFilter) ([]Department, int64, error)
}

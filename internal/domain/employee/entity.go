package employee

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/department"
)

// Employee is always loaded with its department so attendance decisions
// never need a second lookup.
type Employee struct {
	ID           string
	DepartmentID string
	Name         string
	Address      string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Department department.Department
}

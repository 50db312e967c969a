package department

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
)

// Department carries the policy window its employees are measured against.
type Department struct {
	ID              string
	DepartmentName  string
	MaxClockInTime  clock.TimeOfDay
	MaxClockOutTime clock.TimeOfDay
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

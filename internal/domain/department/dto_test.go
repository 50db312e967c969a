package department

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/clock"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDepartmentRequest_Validate(t *testing.T) {
	valid := CreateDepartmentRequest{DepartmentName: "IT", MaxClockInTime: "08:00", MaxClockOutTime: "17:00"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   CreateDepartmentRequest
		field string
	}{
		{"missing name", CreateDepartmentRequest{MaxClockInTime: "08:00", MaxClockOutTime: "17:00"}, "department_name"},
		{"seconds not allowed", CreateDepartmentRequest{DepartmentName: "IT", MaxClockInTime: "08:00:00", MaxClockOutTime: "17:00"}, "max_clock_in_time"},
		{"bad clock out", CreateDepartmentRequest{DepartmentName: "IT", MaxClockInTime: "08:00", MaxClockOutTime: "25:00"}, "max_clock_out_time"},
		{"missing clock out", CreateDepartmentRequest{DepartmentName: "IT", MaxClockInTime: "08:00"}, "max_clock_out_time"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.req.Validate()
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), c.field)
		})
	}
}

func TestToResponse(t *testing.T) {
	ts := time.Date(2026, 10, 17, 8, 15, 0, 0, time.UTC)
	d := Department{
		ID:              "0192a000-0000-7000-8000-000000000001",
		DepartmentName:  "IT",
		MaxClockInTime:  clock.TimeOfDay{Hour: 8},
		MaxClockOutTime: clock.TimeOfDay{Hour: 17},
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}

	resp := ToResponse(d)
	assert.Equal(t, "08:00", resp.MaxClockInTime)
	assert.Equal(t, "17:00", resp.MaxClockOutTime)
	assert.Equal(t, "17 October 2026, 08:15:00", resp.CreatedAt)

	policy := ToPolicyResponse(d)
	assert.Equal(t, "08:00:00", policy.MaxClockInTime)
	assert.Equal(t, "17:00:00", policy.MaxClockOutTime)
}

package attendance

import (
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockInRequest_Validate(t *testing.T) {
	req := ClockInRequest{EmployeeID: "0192a4b0-0000-7000-8000-0000000000aa"}
	assert.NoError(t, req.Validate())

	req = ClockInRequest{}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "employee_id is required", verrs.ToMap()["employee_id"])

	req = ClockInRequest{EmployeeID: "42", Description: strPtr(strings.Repeat("x", 1001))}
	require.ErrorAs(t, req.Validate(), &verrs)
	assert.Equal(t, "the selected employee_id is invalid", verrs.ToMap()["employee_id"])
	assert.Contains(t, verrs.ToMap(), "description")
}

func TestAttendanceFilter_Validate(t *testing.T) {
	f := AttendanceFilter{}
	require.NoError(t, f.Validate())
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.PerPage)

	bad := "nope"
	f = AttendanceFilter{DepartmentID: &bad}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, f.Validate(), &verrs)
	assert.Contains(t, verrs.ToMap(), "department_id")
}

func TestToResponse(t *testing.T) {
	clockIn := time.Date(2026, time.October, 17, 8, 15, 0, 0, time.UTC)
	a := Attendance{
		ID:         "a1",
		EmployeeID: "e1",
		ClockIn:    clockIn,
		CreatedAt:  clockIn,
		UpdatedAt:  clockIn,
		Employee:   employee.Employee{Name: "Budi", Department: itDepartment},
		History:    &History{AttendanceType: LateArrival, Description: "traffic", DateAttendance: clockIn},
	}

	resp := ToResponse(a)
	assert.Equal(t, "17 October 2026, 08:15:00", resp.ClockIn)
	assert.Nil(t, resp.ClockOut)
	assert.Equal(t, "Late", resp.Status)
	assert.Equal(t, "Budi", resp.Employee.Name)
	assert.Equal(t, "08:00:00", resp.Employee.Department.MaxClockInTime)
	require.NotNil(t, resp.History)
	assert.Equal(t, LateArrival, resp.History.AttendanceType)
	assert.Equal(t, "traffic", resp.History.Description)
}

package employee

import (
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDepartmentID = "0192a000-0000-7000-8000-000000000001"

func TestCreateEmployeeRequest_Validate(t *testing.T) {
	valid := CreateEmployeeRequest{DepartmentID: testDepartmentID, Name: "John Doe", Address: "Jakarta"}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name  string
		req   CreateEmployeeRequest
		field string
	}{
		{"missing department", CreateEmployeeRequest{Name: "John", Address: "Jakarta"}, "department_id"},
		{"malformed department", CreateEmployeeRequest{DepartmentID: "1", Name: "John", Address: "Jakarta"}, "department_id"},
		{"missing name", CreateEmployeeRequest{DepartmentID: testDepartmentID, Address: "Jakarta"}, "name"},
		{"long name", CreateEmployeeRequest{DepartmentID: testDepartmentID, Name: strings.Repeat("a", 256), Address: "Jakarta"}, "name"},
		{"missing address", CreateEmployeeRequest{DepartmentID: testDepartmentID, Name: "John"}, "address"},
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

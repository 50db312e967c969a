package department

import "errors"

var (
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrDepartmentNameExists   = errors.New("the department name has already been taken")
	ErrDepartmentHasEmployees = errors.New("department still has employees")
)

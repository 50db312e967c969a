package auth

import "errors"

// RoleAdmin is the only role allowed to change departments, employees and
// attendance records.
const RoleAdmin = "admin"

var (
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)

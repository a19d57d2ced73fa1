package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrOwnerAccessRequired = errors.New("owner role required")
	ErrStaffAccessRequired = errors.New("staff role required")
)

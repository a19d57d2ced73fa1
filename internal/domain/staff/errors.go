package staff

import "errors"

var (
	ErrMemberNotFound = errors.New("staff member not found")
	ErrNameExists     = errors.New("staff member name already exists")
)

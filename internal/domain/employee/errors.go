package employee

import "errors"

var (
	ErrInvalidDecimal = errors.New("invalid decimal number")
	ErrNotFound       = errors.New("employee not found")
	ErrInvalidRole    = errors.New("invalid role")
	ErrDuplicateID    = errors.New("employee id already exists")
	ErrRequiredField  = errors.New("field is required")
	ErrUnknownField   = errors.New("field does not apply to this role")
	ErrNotRecorded    = errors.New("change applied but not recorded in the action log")
)

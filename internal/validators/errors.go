package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingName     = errors.New("name is required")
	ErrMissingEmail    = errors.New("email is required")
	ErrInvalidEmail    = errors.New("email is malformed")
	ErrMissingPassword = errors.New("password is required")

	ErrMissingSchoolName = errors.New("school name is required")
)

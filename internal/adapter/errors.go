package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP response status codes.
// The service layer matches them with [errors.Is] and translates them into
// business errors.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)

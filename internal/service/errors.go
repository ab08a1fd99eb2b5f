package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRoleNotAllowed = errors.New("role is not allowed")
)

// Client-side sentinels surfaced by the adapter error mapper.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrAccessDenied     = errors.New("access denied")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// school-admin server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not authenticate. The same message covers both an
	// unknown email and a wrong password so that the two failure modes stay
	// indistinguishable to the caller.
	MsgInvalidEmailPassword = "Invalid email or password"

	// MsgServerError is returned when an unexpected server-side failure
	// occurs. It is deliberately generic; the underlying error is only
	// logged server-side.
	MsgServerError = "Server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// missing, expired, or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgAccessDenied is returned when the authenticated user's role is not
	// in the allow-list of the requested endpoint.
	MsgAccessDenied = "access denied"

	// MsgEmailAlreadyExists is returned when a registration or provisioning
	// attempt is rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgSchoolAlreadyExists is returned when a school registration attempt
	// is rejected because a school with that name already exists.
	MsgSchoolAlreadyExists = "school already exists"

	// MsgSchoolNotFound is returned when a request references a school id
	// that does not exist.
	MsgSchoolNotFound = "school not found"

	// MsgUserNotFound is returned when a lookup targets a user id that does
	// not exist.
	MsgUserNotFound = "user not found"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAdminRegistered is returned on successful bootstrap admin
	// registration.
	MsgAdminRegistered = "Admin registered successfully"

	// MsgLoginSuccessful is returned on successful login.
	MsgLoginSuccessful = "Login successful"

	// MsgUserCreated is returned when a privileged user creates a
	// subordinate account.
	MsgUserCreated = "User created successfully"

	// MsgSchoolCreated is returned on successful school registration.
	MsgSchoolCreated = "School created successfully"
)

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the request context. Set by the auth middleware.
var UserIDCtxKey = contextKey("userID")

// UserRoleCtxKey is the key used to store the authenticated user's role
// in the request context. Set by the auth middleware after the user row is
// re-read, so role changes take effect without reissuing tokens.
var UserRoleCtxKey = contextKey("userRole")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserRoleFromContext retrieves the caller's role from the context.
//
// Returns the role and an ok flag following the same convention as
// GetUserIDFromContext.
func GetUserRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(models.Role)
	return role, ok
}

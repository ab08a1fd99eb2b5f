// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/mkarev/go-school-admin/models"

// GuardDecision is the outcome of a screen access check.
type GuardDecision int

const (
	// GuardAllow admits the caller to the screen.
	GuardAllow GuardDecision = iota

	// GuardWait defers the decision while an auth operation is in flight.
	GuardWait

	// GuardLogin redirects an unauthenticated caller to the login screen.
	GuardLogin

	// GuardDenied rejects an authenticated caller whose role is not allowed.
	GuardDenied
)

// Guard decides whether a caller may enter a screen. It is a pure function
// of the session snapshot: no I/O, no globals, so every screen transition
// applies exactly the same policy.
//
// An in-flight auth operation defers the decision, an unauthenticated caller
// is sent to login, and an empty allow-list admits any authenticated role.
func Guard(isLoading, isAuthenticated bool, role models.Role, allowed []models.Role) GuardDecision {
	if isLoading {
		return GuardWait
	}
	if !isAuthenticated {
		return GuardLogin
	}
	if len(allowed) == 0 {
		return GuardAllow
	}
	if role.In(allowed) {
		return GuardAllow
	}
	return GuardDenied
}

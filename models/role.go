package models

import "fmt"

// Role is the closed set of authorization levels a user may hold.
// The value controls which provisioning endpoints the user may invoke
// and which client screens are reachable.
type Role string

const (
	// RoleAdmin is the system-wide administrator. Not bound to a school.
	RoleAdmin Role = "admin"

	// RoleSchoolAdmin administers a single school (tenant).
	RoleSchoolAdmin Role = "school_admin"

	// RoleTeacher is a teaching account provisioned by an admin or school admin.
	RoleTeacher Role = "teacher"

	// RoleStudent is the default role for newly created accounts.
	RoleStudent Role = "student"
)

// Role groups used by the authorization gates. Kept as package-level
// slices so every endpoint references the same allow-list instead of
// re-declaring its own.
var (
	AllRoles = []Role{RoleAdmin, RoleSchoolAdmin, RoleTeacher, RoleStudent}

	AdminOnly = []Role{RoleAdmin}

	SchoolAdminAndAbove = []Role{RoleAdmin, RoleSchoolAdmin}
)

// ParseRole converts a raw string into a Role.
// Returns an error for any value outside the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleSchoolAdmin, RoleTeacher, RoleStudent:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is a member of the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// In reports whether the role is a member of the given allow-list.
func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

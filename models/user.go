package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user,
	// assigned by the database at creation time and immutable afterwards.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique login identifier.
	// Stored trimmed and lower-cased; uniqueness is case-insensitive.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Plaintext passwords are never persisted. Excluded from JSON.
	PasswordHash string `json:"-"`

	// Role is the authorization level of the account.
	// Always one of the closed set; defaults to RoleStudent.
	Role Role `json:"role"`

	// SchoolID references the owning tenant (School).
	// Nil for system-wide admins.
	SchoolID *int64 `json:"school_id,omitempty"`

	// CreatedBy references the user that provisioned this account.
	// Nil for bootstrap admins. Immutable once set.
	CreatedBy *int64 `json:"created_by,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// PublicUser is the projection of a User that is safe to return to clients.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	SchoolID *int64 `json:"school_id,omitempty"`
}

// Public returns the client-facing projection of the user.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Name:     u.Name,
		Email:    u.Email,
		Role:     u.Role,
		SchoolID: u.SchoolID,
	}
}

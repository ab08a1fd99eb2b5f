package models

// CreateUserRequest is the request body shared by the bootstrap admin
// registration endpoint and all role-gated provisioning endpoints.
// Validation tags are checked in the service layer before any store call.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`

	// SchoolID optionally binds the new account to a tenant.
	SchoolID *int64 `json:"school_id,omitempty"`
}

// LoginRequest is the request body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreateSchoolRequest is the request body for registering a new school.
type CreateSchoolRequest struct {
	Name string `json:"name" validate:"required"`
}

// UserFilter holds the optional filters of the user listing endpoint.
// Zero values mean "no filter".
type UserFilter struct {
	Role     Role
	SchoolID *int64
	Limit    uint64
	Offset   uint64
}

package service

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

// ClientAuthService defines the client-side contract for registration,
// authentication, and session lifecycle. Implementations talk to the remote
// server through the adapter and keep the local session store in sync.
type ClientAuthService interface {
	// RegisterAdmin creates a bootstrap admin account on the server and
	// establishes a local session for it.
	RegisterAdmin(ctx context.Context, req models.CreateUserRequest) error

	// Login authenticates against the server and establishes a local session.
	Login(ctx context.Context, req models.LoginRequest) error

	// Logout clears the local session. The server keeps no session state, so
	// no remote call is made; the token simply ages out.
	Logout(ctx context.Context) error

	// Restore rehydrates the session from local storage and re-arms the
	// adapter with the persisted token. Returns without error when no
	// session was persisted.
	Restore(ctx context.Context) error
}

// ClientUserService defines the client-side contract for the privileged
// provisioning and read operations.
type ClientUserService interface {
	// CreateSchoolAdmin provisions a school_admin account. Requires role admin.
	CreateSchoolAdmin(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)

	// CreateTeacher provisions a teacher account. Requires role admin or
	// school_admin.
	CreateTeacher(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)

	// CreateStudent provisions a student account. Requires role admin or
	// school_admin.
	CreateStudent(ctx context.Context, req models.CreateUserRequest) (models.PublicUser, error)

	// ListUsers fetches accounts matching the filter. Requires role admin or
	// school_admin.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)

	// RefreshMe re-fetches the caller's own account and updates the session.
	RefreshMe(ctx context.Context) (models.PublicUser, error)
}

// ClientSchoolService defines the client-side contract for school management.
type ClientSchoolService interface {
	// CreateSchool registers a new school. Requires role admin.
	CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.School, error)
}

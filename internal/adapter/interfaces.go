package adapter

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side transport contract for talking to the
// school-admin API server.
//
// Implementations hold the bearer token of the current session: a successful
// RegisterAdmin or Login stores the token returned by the server, and every
// authenticated call attaches it as "Authorization: Bearer <token>".
type ServerAdapter interface {
	// SetToken stores the bearer token used by subsequent authenticated calls.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter, or an
	// empty string if none has been set.
	Token() string

	// RegisterAdmin creates a bootstrap admin account via
	// POST /api/auth/register-admin and stores the issued token.
	RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (models.AuthResponse, error)

	// Login authenticates via POST /api/auth/login and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CreateSchoolAdmin provisions a school_admin account via
	// POST /api/users/create-school-admin. Requires role admin.
	CreateSchoolAdmin(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	// CreateTeacher provisions a teacher account via
	// POST /api/users/create-teacher. Requires role admin or school_admin.
	CreateTeacher(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	// CreateStudent provisions a student account via
	// POST /api/users/create-student. Requires role admin or school_admin.
	CreateStudent(ctx context.Context, req models.CreateUserRequest) (models.UserResponse, error)

	// ListUsers fetches accounts matching the filter via GET /api/users.
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.PublicUser, error)

	// Me fetches the authenticated caller's own account via GET /api/users/me.
	Me(ctx context.Context) (models.PublicUser, error)

	// CreateSchool registers a new school via POST /api/schools.
	CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.SchoolResponse, error)

	// GetSchool fetches a school by id via GET /api/schools/{id}.
	GetSchool(ctx context.Context, schoolID int64) (models.School, error)
}

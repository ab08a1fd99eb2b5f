package service

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

type AuthService interface {
	RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService provisions and reads accounts. Role gating of the provisioning
// endpoints happens at the transport layer; CreateUser trusts the role it is
// given and records who created the account.
type UserService interface {
	CreateUser(ctx context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

type SchoolService interface {
	CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.School, error)
	GetSchoolByID(ctx context.Context, schoolID int64) (models.School, error)
}

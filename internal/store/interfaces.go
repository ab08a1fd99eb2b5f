package store

import (
	"context"

	"github.com/mkarev/go-school-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

// SchoolRepository persists and retrieves schools.
type SchoolRepository interface {
	CreateSchool(ctx context.Context, school models.School) (models.School, error)
	FindSchoolByID(ctx context.Context, schoolID int64) (models.School, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/internal/validators"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	listFn        func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestAuthService(repo *mockUserRepository) *authService {
	return &authService{
		userRepository: repo,
		validator:      validators.NewRequestValidator(),
		bcryptCost:     utils.DefaultBcryptCost,
		tokenSignKey:   "test-sign-key",
		tokenIssuer:    "school-admin-test",
		tokenDuration:  time.Hour,
		logger:         logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// RegisterAdmin
// ─────────────────────────────────────────────

func TestAuthService_RegisterAdmin_Success(t *testing.T) {
	var captured models.User
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			captured = user
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	created, err := svc.RegisterAdmin(context.Background(), models.CreateUserRequest{
		Name:     "Root Admin",
		Email:    "root@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, models.RoleAdmin, captured.Role)
	assert.Nil(t, captured.CreatedBy)

	// password is stored as a bcrypt hash, never as plaintext
	assert.NotEqual(t, "secret", captured.PasswordHash)
	assert.True(t, utils.ComparePassword(captured.PasswordHash, "secret"))
}

func TestAuthService_RegisterAdmin_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name string
		req  models.CreateUserRequest
	}{
		{"missing name", models.CreateUserRequest{Email: "a@b.com", Password: "x"}},
		{"missing email", models.CreateUserRequest{Name: "A", Password: "x"}},
		{"missing password", models.CreateUserRequest{Name: "A", Email: "a@b.com"}},
		{"malformed email", models.CreateUserRequest{Name: "A", Email: "nope", Password: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterAdmin(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterAdmin_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(context.Context, models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterAdmin(context.Background(), models.CreateUserRequest{
		Name:     "Root Admin",
		Email:    "root@example.com",
		Password: "secret",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hash, err := utils.HashPassword("secret", utils.DefaultBcryptCost)
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash, Role: models.RoleTeacher}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{Email: "t@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, models.RoleTeacher, user.Role)
}

// Unknown email and wrong password must yield the same error so the caller
// cannot tell which part was wrong.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	hash, err := utils.HashPassword("secret", utils.DefaultBcryptCost)
	require.NoError(t, err)

	unknownEmailRepo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 7, Email: email, PasswordHash: hash}, nil
		},
	}

	_, errUnknown := newTestAuthService(unknownEmailRepo).
		Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "secret"})
	_, errWrongPass := newTestAuthService(wrongPasswordRepo).
		Login(context.Background(), models.LoginRequest{Email: "t@example.com", Password: "wrong"})

	require.ErrorIs(t, errUnknown, ErrWrongPassword)
	require.ErrorIs(t, errWrongPass, ErrWrongPassword)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestAuthService_Login_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "t@example.com"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.LoginRequest{Password: "secret"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(context.Context, string) (models.User, error) {
			return models.User{}, errStorage
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "t@example.com", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errStorage)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})
	verifying := newTestAuthService(&mockUserRepository{})
	verifying.tokenSignKey = "different-key"

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

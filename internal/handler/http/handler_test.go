package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: service layer (func fields)
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerAdminFn func(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	loginFn         func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn    func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterAdmin(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return m.registerAdminFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{UserID: user.UserID, SignedString: "signed-token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	createUserFn  func(ctx context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error)
	getUserByIDFn func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn   func(ctx context.Context, filter models.UserFilter) ([]models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error) {
	return m.createUserFn(ctx, callerID, role, req)
}

func (m *mockUserService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return m.getUserByIDFn(ctx, userID)
}

func (m *mockUserService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	return m.listUsersFn(ctx, filter)
}

type mockSchoolService struct {
	createSchoolFn  func(ctx context.Context, req models.CreateSchoolRequest) (models.School, error)
	getSchoolByIDFn func(ctx context.Context, schoolID int64) (models.School, error)
}

func (m *mockSchoolService) CreateSchool(ctx context.Context, req models.CreateSchoolRequest) (models.School, error) {
	return m.createSchoolFn(ctx, req)
}

func (m *mockSchoolService) GetSchoolByID(ctx context.Context, schoolID int64) (models.School, error) {
	return m.getSchoolByIDFn(ctx, schoolID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestRouter(auth *mockAuthService, users *mockUserService, schools *mockSchoolService) http.Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if users == nil {
		users = &mockUserService{}
	}
	if schools == nil {
		schools = &mockSchoolService{}
	}

	handler := NewHandler(&service.Services{
		AuthService:   auth,
		UserService:   users,
		SchoolService: schools,
	}, logger.Nop())

	return handler.Init()
}

// authedAs wires the auth middleware's two lookups so that the given user is
// the authenticated caller for any request carrying "Bearer valid-token".
func authedAs(auth *mockAuthService, users *mockUserService, caller models.User) {
	auth.parseTokenFn = func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "valid-token" {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		}
		return models.Token{UserID: caller.UserID}, nil
	}
	users.getUserByIDFn = func(_ context.Context, userID int64) (models.User, error) {
		return caller, nil
	}
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var decoded T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	return decoded
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_getTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing token part", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Bearer"},
		{"invalid token", "Bearer forged-token"},
	}

	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	router := newTestRouter(auth, &mockUserService{}, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			require.Equal(t, http.StatusUnauthorized, recorder.Code)
			body := decodeBody[models.ErrorResponse](t, recorder)
			assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, body.Message)
		})
	}
}

// A valid signature over a deleted user must not authenticate.
func TestAuthMiddleware_DeletedUser(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{UserID: 42}, nil
		},
	}
	users := &mockUserService{
		getUserByIDFn: func(context.Context, int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	router := newTestRouter(auth, users, nil)

	recorder := doJSON(t, router, http.MethodGet, "/api/users/me", "valid-token", nil)

	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	body := decodeBody[models.ErrorResponse](t, recorder)
	assert.Equal(t, app.MsgTokenIsExpiredOrInvalid, body.Message)
}

// The role used for authorization is the one re-read from storage, not
// whatever the token was issued with.
func TestAuthMiddleware_RoleIsReReadFromStorage(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{UserID: 2}, nil
		},
	}
	demoted := schoolAdminCaller
	demoted.Role = models.RoleTeacher
	users := &mockUserService{
		getUserByIDFn: func(context.Context, int64) (models.User, error) {
			return demoted, nil
		},
	}

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodPost, "/api/users/create-teacher", "valid-token",
		models.CreateUserRequest{Name: "New", Email: "new@example.com", Password: "secret"})

	require.Equal(t, http.StatusForbidden, recorder.Code)
}

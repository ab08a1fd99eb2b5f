// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{ServerAddress: serverURL}

	a, err := NewHTTPServerAdapter(adapterCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_AddressNormalization(t *testing.T) {
	log := logger.NewClientLogger("test")

	_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerAddress: "localhost:8080"}, log)
	assert.NoError(t, err)

	_, err = NewHTTPServerAdapter(config.ClientAdapter{ServerAddress: ""}, log)
	assert.Error(t, err)
}

// ── RegisterAdmin ────────────────────────────────────────────────────────────

func TestRegisterAdmin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register-admin", r.URL.Path)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Message: "Admin registered successfully",
			User:    models.PublicUser{UserID: 1, Name: "Root", Email: "root@example.com", Role: models.RoleAdmin},
			Token:   "issued-token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RegisterAdmin(context.Background(), models.CreateUserRequest{
		Name: "Root", Email: "root@example.com", Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.User.UserID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestRegisterAdmin_DuplicateEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Message: "email already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RegisterAdmin(context.Background(), models.CreateUserRequest{
		Name: "Root", Email: "root@example.com", Password: "secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Contains(t, err.Error(), "email already exists")
	assert.Empty(t, a.Token())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "root@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{
			Message: "Login successful",
			User:    models.PublicUser{UserID: 1, Role: models.RoleAdmin},
			Token:   "fresh-token",
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "root@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
	assert.Equal(t, "fresh-token", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid email or password"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "root@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, models.ErrorResponse{Message: "Server error"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "root@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Provisioning ─────────────────────────────────────────────────────────────

func TestCreateTeacher_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/create-teacher", r.URL.Path)
		assert.Equal(t, "Bearer held-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusCreated, models.UserResponse{
			Message: "User created successfully",
			User:    models.PublicUser{UserID: 9, Role: models.RoleTeacher},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	got, err := a.CreateTeacher(context.Background(), models.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, models.RoleTeacher, got.User.Role)
}

func TestCreateSchoolAdmin_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Message: "access denied"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	_, err := a.CreateSchoolAdmin(context.Background(), models.CreateUserRequest{
		Name: "Jane", Email: "jane@example.com", Password: "secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateStudent_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "token is expired or invalid"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateStudent(context.Background(), models.CreateUserRequest{
		Name: "Tim", Email: "tim@example.com", Password: "secret",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── ListUsers / Me ───────────────────────────────────────────────────────────

func TestListUsers_FilterEncoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users", r.URL.Path)
		assert.Equal(t, "teacher", r.URL.Query().Get("role"))
		assert.Equal(t, "3", r.URL.Query().Get("school_id"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		writeJSON(t, w, http.StatusOK, []models.PublicUser{
			{UserID: 1, Role: models.RoleTeacher},
			{UserID: 2, Role: models.RoleTeacher},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	schoolID := int64(3)
	users, err := a.ListUsers(context.Background(), models.UserFilter{
		Role: models.RoleTeacher, SchoolID: &schoolID, Limit: 10,
	})

	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMe_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/me", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.PublicUser{UserID: 7, Name: "Me", Role: models.RoleSchoolAdmin})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	me, err := a.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), me.UserID)
	assert.Equal(t, models.RoleSchoolAdmin, me.Role)
}

// ── Schools ──────────────────────────────────────────────────────────────────

func TestCreateSchool_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schools", r.URL.Path)
		writeJSON(t, w, http.StatusCreated, models.SchoolResponse{
			Message: "School created successfully",
			School:  models.School{SchoolID: 1, Name: "Springfield Elementary"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	got, err := a.CreateSchool(context.Background(), models.CreateSchoolRequest{Name: "Springfield Elementary"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.School.SchoolID)
}

func TestGetSchool_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schools/404", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "school not found"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("held-token")

	_, err := a.GetSchool(context.Background(), 404)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	adminCaller       = models.User{UserID: 1, Name: "Root", Email: "root@example.com", Role: models.RoleAdmin}
	schoolAdminCaller = models.User{UserID: 2, Name: "Head", Email: "head@example.com", Role: models.RoleSchoolAdmin}
	teacherCaller     = models.User{UserID: 3, Name: "Teach", Email: "teach@example.com", Role: models.RoleTeacher}
	studentCaller     = models.User{UserID: 4, Name: "Pupil", Email: "pupil@example.com", Role: models.RoleStudent}
)

func TestCreateSchoolAdmin_AsAdmin(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, adminCaller)

	var gotCallerID int64
	var gotRole models.Role
	users.createUserFn = func(_ context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error) {
		gotCallerID = callerID
		gotRole = role
		return models.User{UserID: 10, Name: req.Name, Email: req.Email, Role: role, CreatedBy: &callerID}, nil
	}

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodPost, "/api/users/create-school-admin", "valid-token",
		models.CreateUserRequest{Name: "Head", Email: "head@example.com", Password: "secret"})

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, adminCaller.UserID, gotCallerID)
	assert.Equal(t, models.RoleSchoolAdmin, gotRole)

	body := decodeBody[models.UserResponse](t, recorder)
	assert.Equal(t, app.MsgUserCreated, body.Message)
	assert.Equal(t, models.RoleSchoolAdmin, body.User.Role)
}

func TestCreateSchoolAdmin_ForbiddenBelowAdmin(t *testing.T) {
	tests := []struct {
		name   string
		caller models.User
	}{
		{"school admin", schoolAdminCaller},
		{"teacher", teacherCaller},
		{"student", studentCaller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{}
			users := &mockUserService{}
			authedAs(auth, users, tt.caller)

			router := newTestRouter(auth, users, nil)
			recorder := doJSON(t, router, http.MethodPost, "/api/users/create-school-admin", "valid-token",
				models.CreateUserRequest{Name: "Head", Email: "head@example.com", Password: "secret"})

			require.Equal(t, http.StatusForbidden, recorder.Code)
			body := decodeBody[models.ErrorResponse](t, recorder)
			assert.Equal(t, app.MsgAccessDenied, body.Message)
		})
	}
}

func TestCreateTeacherAndStudent_RoleGates(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		caller     models.User
		wantStatus int
		wantRole   models.Role
	}{
		{"admin creates teacher", "/api/users/create-teacher", adminCaller, http.StatusCreated, models.RoleTeacher},
		{"school admin creates teacher", "/api/users/create-teacher", schoolAdminCaller, http.StatusCreated, models.RoleTeacher},
		{"teacher cannot create teacher", "/api/users/create-teacher", teacherCaller, http.StatusForbidden, ""},
		{"admin creates student", "/api/users/create-student", adminCaller, http.StatusCreated, models.RoleStudent},
		{"school admin creates student", "/api/users/create-student", schoolAdminCaller, http.StatusCreated, models.RoleStudent},
		{"student cannot create student", "/api/users/create-student", studentCaller, http.StatusForbidden, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{}
			users := &mockUserService{}
			authedAs(auth, users, tt.caller)

			var gotRole models.Role
			users.createUserFn = func(_ context.Context, callerID int64, role models.Role, req models.CreateUserRequest) (models.User, error) {
				gotRole = role
				return models.User{UserID: 20, Name: req.Name, Email: req.Email, Role: role}, nil
			}

			router := newTestRouter(auth, users, nil)
			recorder := doJSON(t, router, http.MethodPost, tt.target, "valid-token",
				models.CreateUserRequest{Name: "New", Email: "new@example.com", Password: "secret"})

			require.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, tt.wantRole, gotRole)
			}
		})
	}
}

// The route fixes the provisioned role; nothing in the body can escalate it.
func TestCreateStudent_BodyCannotOverrideRole(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, schoolAdminCaller)

	var gotRole models.Role
	users.createUserFn = func(_ context.Context, _ int64, role models.Role, req models.CreateUserRequest) (models.User, error) {
		gotRole = role
		return models.User{UserID: 30, Role: role}, nil
	}

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodPost, "/api/users/create-student", "valid-token",
		map[string]any{"name": "Pupil", "email": "pupil@example.com", "password": "secret", "role": "admin"})

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, models.RoleStudent, gotRole)
}

func TestListUsers_FilterParsing(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, adminCaller)

	var gotFilter models.UserFilter
	users.listUsersFn = func(_ context.Context, filter models.UserFilter) ([]models.User, error) {
		gotFilter = filter
		return []models.User{teacherCaller}, nil
	}

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodGet,
		"/api/users?role=teacher&school_id=7&limit=25&offset=50", "valid-token", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, models.RoleTeacher, gotFilter.Role)
	require.NotNil(t, gotFilter.SchoolID)
	assert.Equal(t, int64(7), *gotFilter.SchoolID)
	assert.Equal(t, uint64(25), gotFilter.Limit)
	assert.Equal(t, uint64(50), gotFilter.Offset)

	body := decodeBody[[]models.PublicUser](t, recorder)
	require.Len(t, body, 1)
	assert.Equal(t, teacherCaller.UserID, body[0].UserID)
}

func TestListUsers_UnknownRoleFilter(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, adminCaller)

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodGet, "/api/users?role=janitor", "valid-token", nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[models.ErrorResponse](t, recorder)
	assert.Equal(t, app.MsgInvalidDataProvided, body.Message)
}

func TestListUsers_ForbiddenBelowSchoolAdmin(t *testing.T) {
	for _, caller := range []models.User{teacherCaller, studentCaller} {
		t.Run(string(caller.Role), func(t *testing.T) {
			auth := &mockAuthService{}
			users := &mockUserService{}
			authedAs(auth, users, caller)

			router := newTestRouter(auth, users, nil)
			recorder := doJSON(t, router, http.MethodGet, "/api/users", "valid-token", nil)

			require.Equal(t, http.StatusForbidden, recorder.Code)
			body := decodeBody[models.ErrorResponse](t, recorder)
			assert.Equal(t, app.MsgAccessDenied, body.Message)
		})
	}
}

func TestMe_ReturnsCallerProjection(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	caller := teacherCaller
	caller.PasswordHash = "$2a$10$secret"
	authedAs(auth, users, caller)

	router := newTestRouter(auth, users, nil)
	recorder := doJSON(t, router, http.MethodGet, "/api/users/me", "valid-token", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	body := decodeBody[models.PublicUser](t, recorder)
	assert.Equal(t, caller.UserID, body.UserID)
	assert.Equal(t, caller.Email, body.Email)
	assert.NotContains(t, recorder.Body.String(), "secret")
}

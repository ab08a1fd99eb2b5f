package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSchool_Success(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, adminCaller)

	schools := &mockSchoolService{
		createSchoolFn: func(_ context.Context, req models.CreateSchoolRequest) (models.School, error) {
			return models.School{SchoolID: 3, Name: req.Name}, nil
		},
	}

	router := newTestRouter(auth, users, schools)
	recorder := doJSON(t, router, http.MethodPost, "/api/schools", "valid-token",
		models.CreateSchoolRequest{Name: "Springfield High"})

	require.Equal(t, http.StatusCreated, recorder.Code)

	body := decodeBody[models.SchoolResponse](t, recorder)
	assert.Equal(t, app.MsgSchoolCreated, body.Message)
	assert.Equal(t, int64(3), body.School.SchoolID)
}

func TestCreateSchool_DuplicateName(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, adminCaller)

	schools := &mockSchoolService{
		createSchoolFn: func(context.Context, models.CreateSchoolRequest) (models.School, error) {
			return models.School{}, store.ErrSchoolAlreadyExists
		},
	}

	router := newTestRouter(auth, users, schools)
	recorder := doJSON(t, router, http.MethodPost, "/api/schools", "valid-token",
		models.CreateSchoolRequest{Name: "Springfield High"})

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody[models.ErrorResponse](t, recorder)
	assert.Equal(t, app.MsgSchoolAlreadyExists, body.Message)
}

func TestGetSchool(t *testing.T) {
	auth := &mockAuthService{}
	users := &mockUserService{}
	authedAs(auth, users, schoolAdminCaller)

	schools := &mockSchoolService{
		getSchoolByIDFn: func(_ context.Context, schoolID int64) (models.School, error) {
			if schoolID != 3 {
				return models.School{}, store.ErrSchoolNotFound
			}
			return models.School{SchoolID: 3, Name: "Springfield High"}, nil
		},
	}
	router := newTestRouter(auth, users, schools)

	t.Run("found", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/schools/3", "valid-token", nil)

		require.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody[models.School](t, recorder)
		assert.Equal(t, "Springfield High", body.Name)
	})

	t.Run("not found", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/schools/99", "valid-token", nil)

		require.Equal(t, http.StatusNotFound, recorder.Code)
		body := decodeBody[models.ErrorResponse](t, recorder)
		assert.Equal(t, app.MsgSchoolNotFound, body.Message)
	})

	t.Run("malformed id", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodGet, "/api/schools/abc", "valid-token", nil)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSchoolRoutes_RoleGates(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		caller models.User
	}{
		{"school admin cannot create school", http.MethodPost, "/api/schools", schoolAdminCaller},
		{"teacher cannot create school", http.MethodPost, "/api/schools", teacherCaller},
		{"teacher cannot read school", http.MethodGet, "/api/schools/3", teacherCaller},
		{"student cannot read school", http.MethodGet, "/api/schools/3", studentCaller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{}
			users := &mockUserService{}
			authedAs(auth, users, tt.caller)

			router := newTestRouter(auth, users, &mockSchoolService{})
			recorder := doJSON(t, router, tt.method, tt.target, "valid-token",
				models.CreateSchoolRequest{Name: "Springfield High"})

			require.Equal(t, http.StatusForbidden, recorder.Code)
			body := decodeBody[models.ErrorResponse](t, recorder)
			assert.Equal(t, app.MsgAccessDenied, body.Message)
		})
	}
}

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkarev/go-school-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Unsupported methods on known routes respond 404, not 405, so route
// existence is not leaked.
func TestRouter_UnsupportedMethodHidesRoute(t *testing.T) {
	router := newTestRouter(nil, nil, nil)

	request := httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_TraceIDHeader(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 1, Role: models.RoleAdmin}, nil
		},
	}
	router := newTestRouter(auth, nil, nil)

	t.Run("generated when absent", func(t *testing.T) {
		recorder := doJSON(t, router, http.MethodPost, "/api/auth/login", "",
			models.LoginRequest{Email: "root@example.com", Password: "secret"})

		require.Equal(t, http.StatusOK, recorder.Code)
		assert.NotEmpty(t, recorder.Header().Get(traceIDHeader))
	})

	t.Run("echoed when provided", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		request.Header.Set(traceIDHeader, "trace-123")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, "trace-123", recorder.Header().Get(traceIDHeader))
	})
}

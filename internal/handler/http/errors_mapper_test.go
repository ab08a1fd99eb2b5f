package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusBadRequest, app.MsgEmailAlreadyExists},
		{"school taken", store.ErrSchoolAlreadyExists, http.StatusBadRequest, app.MsgSchoolAlreadyExists},
		{"wrong password", service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidEmailPassword},
		{"bad token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
		{"role denied", service.ErrRoleNotAllowed, http.StatusForbidden, app.MsgAccessDenied},
		{"user missing", store.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
		{"school missing", store.ErrSchoolNotFound, http.StatusNotFound, app.MsgSchoolNotFound},
		{"anything else", errors.New("connection reset"), http.StatusInternalServerError, app.MsgServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, mapped.status)
			assert.Equal(t, tt.wantMessage, mapped.message)
		})
	}
}

// An unsupported role in a request is a validation failure. Its error must
// match exactly one mapper entry so the status cannot flip between 400 and
// 403 across runs.
func TestResponseFromError_UnsupportedRoleIsDeterministic(t *testing.T) {
	err := fmt.Errorf("%w: unsupported role %q", service.ErrInvalidDataProvided, "superuser")

	for i := 0; i < 100; i++ {
		mapped := responseFromError(err)
		assert.Equal(t, http.StatusBadRequest, mapped.status)
		assert.Equal(t, app.MsgInvalidDataProvided, mapped.message)
	}
}

func TestResponseFromError_WrappedSentinel(t *testing.T) {
	err := fmt.Errorf("user listing failed: %w", store.ErrUserNotFound)

	mapped := responseFromError(err)
	assert.Equal(t, http.StatusNotFound, mapped.status)
}

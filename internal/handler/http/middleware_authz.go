package http

import (
	"fmt"
	"net/http"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/models"
)

// requireRole builds a middleware that admits only callers whose role is in
// the allow-list. It must run after [Handler.auth], which puts the re-read
// role into the request context. A caller with the wrong role gets HTTP 403
// with the shared "access denied" body.
func (h *Handler) requireRole(allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			role, ok := utils.GetUserRoleFromContext(r.Context())
			if !ok {
				log.Error().Msg("no caller role in context")
				utils.WriteJSONError(w, app.MsgServerError, http.StatusInternalServerError)
				return
			}

			if !role.In(allowed) {
				writeServiceError(w, r, fmt.Errorf("%w: %s", service.ErrRoleNotAllowed, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

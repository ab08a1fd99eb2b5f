package http

import (
	"errors"
	"net/http"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/utils"
)

// mappedError pairs the HTTP status of a business error with the message the
// API exposes for it. Internal error text never leaks to clients; everything
// outside this table collapses to 500 "Server error".
type mappedError struct {
	status  int
	message string
}

var errorResponseMap = map[error]mappedError{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},

	store.ErrEmailAlreadyExists:  {http.StatusBadRequest, app.MsgEmailAlreadyExists},
	store.ErrSchoolAlreadyExists: {http.StatusBadRequest, app.MsgSchoolAlreadyExists},

	// A login failure never reveals whether the email exists: unknown email
	// and wrong password both surface as ErrWrongPassword upstream and share
	// one message here.
	service.ErrWrongPassword:           {http.StatusUnauthorized, app.MsgInvalidEmailPassword},
	service.ErrTokenIsExpiredOrInvalid: {http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	service.ErrRoleNotAllowed: {http.StatusForbidden, app.MsgAccessDenied},

	store.ErrUserNotFound:   {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrSchoolNotFound: {http.StatusNotFound, app.MsgSchoolNotFound},
}

func responseFromError(err error) mappedError {
	for target, mapped := range errorResponseMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return mappedError{http.StatusInternalServerError, app.MsgServerError}
}

// writeServiceError logs the real error and writes its mapped JSON response.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	mapped := responseFromError(err)

	log := logger.FromRequest(r)
	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Warn().Err(err).Msg(mapped.message)
	}

	utils.WriteJSONError(w, mapped.message, mapped.status)
}

// SPDX-License-Identifier: Apache-2.0

package service

import (
	"errors"
	"strings"

	"github.com/mkarev/go-school-admin/internal/adapter"
	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		case app.MsgSchoolAlreadyExists:
			return store.ErrSchoolAlreadyExists
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAccessDenied

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgSchoolNotFound:
			return store.ErrSchoolNotFound
		case app.MsgUserNotFound:
			return store.ErrUserNotFound
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

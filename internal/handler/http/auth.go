package http

import (
	"encoding/json"
	"net/http"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/models"
)

// registerAdmin handles the unrestricted bootstrap registration of a
// system-wide admin. The response carries the freshly issued token so the
// caller is logged in immediately.
func (h *Handler) registerAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	admin, err := h.services.AuthService.RegisterAdmin(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgAdminRegistered,
		User:    admin.Public(),
		Token:   token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSONError(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSuccessful,
		User:    user.Public(),
		Token:   token.SignedString,
	}, http.StatusOK)
}

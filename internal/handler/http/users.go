package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/models"
)

func (h *Handler) createSchoolAdmin(w http.ResponseWriter, r *http.Request) {
	h.createUserWithRole(w, r, models.RoleSchoolAdmin)
}

func (h *Handler) createTeacher(w http.ResponseWriter, r *http.Request) {
	h.createUserWithRole(w, r, models.RoleTeacher)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	h.createUserWithRole(w, r, models.RoleStudent)
}

// createUserWithRole is the shared body of the three provisioning endpoints.
// The target role is fixed by the route, never taken from the request body,
// and the caller's identity is recorded as the creator.
func (h *Handler) createUserWithRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no caller id in context")
		utils.WriteJSONError(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	user, err := h.services.UserService.CreateUser(ctx, callerID, role, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().
		Int64("id", user.UserID).
		Str("role", role.String()).
		Int64("created_by", callerID).
		Msg("user provisioned")

	utils.WriteJSON(w, models.UserResponse{
		Message: app.MsgUserCreated,
		User:    user.Public(),
	}, http.StatusCreated)
}

// listUsers returns accounts matching the optional role, school_id, limit and
// offset query parameters.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter, err := userFilterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid filter parameters")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	users, err := h.services.UserService.ListUsers(ctx, filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		public = append(public, user.Public())
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

// me returns the caller's own account projection.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no caller id in context")
		utils.WriteJSONError(w, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	user, err := h.services.UserService.GetUserByID(ctx, callerID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func userFilterFromQuery(r *http.Request) (models.UserFilter, error) {
	var filter models.UserFilter
	query := r.URL.Query()

	if raw := query.Get("role"); raw != "" {
		role, err := models.ParseRole(raw)
		if err != nil {
			return models.UserFilter{}, err
		}
		filter.Role = role
	}

	if raw := query.Get("school_id"); raw != "" {
		schoolID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.UserFilter{}, err
		}
		filter.SchoolID = &schoolID
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.UserFilter{}, err
		}
		filter.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.UserFilter{}, err
		}
		filter.Offset = offset
	}

	return filter, nil
}

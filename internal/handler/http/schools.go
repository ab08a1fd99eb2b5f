package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkarev/go-school-admin/internal/app"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/utils"
	"github.com/mkarev/go-school-admin/models"
)

func (h *Handler) createSchool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	school, err := h.services.SchoolService.CreateSchool(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", school.SchoolID).Str("name", school.Name).Msg("school registered")

	utils.WriteJSON(w, models.SchoolResponse{
		Message: app.MsgSchoolCreated,
		School:  school,
	}, http.StatusCreated)
}

func (h *Handler) getSchool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	schoolID, err := strconv.ParseInt(chi.URLParam(r, "schoolID"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid school id")
		utils.WriteJSONError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	school, err := h.services.SchoolService.GetSchoolByID(ctx, schoolID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, school, http.StatusOK)
}

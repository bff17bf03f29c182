package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleIndividual handles GET/PUT /api/individual (the caller's own individual profile)
func (h *V1Handler) HandleIndividual(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.individualService.GetByUserID(identity.ID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
				return
			}
			respondInternalError(w, r, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, profile)
	case http.MethodPut:
		var req models.CreateIndividualProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if vErr := req.Validate(); vErr != nil {
			respondValidationError(w, vErr)
			return
		}

		profile, err := h.individualService.Upsert(identity.ID, &req)
		if err != nil {
			respondInternalError(w, r, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, profile)
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleProfile handles GET/PUT/PATCH /api/profile (the caller's own startup profile)
func (h *V1Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut:
		h.putProfile(w, r)
	case http.MethodPatch:
		h.patchProfile(w, r)
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *V1Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	profile, err := h.startupService.GetByUserID(identity.ID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		respondInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

func (h *V1Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req models.CreateStartupProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if vErr := req.Validate(); vErr != nil {
		respondValidationError(w, vErr)
		return
	}

	profile, err := h.startupService.Upsert(identity.ID, identity.Email, &req)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, profile)
}

func (h *V1Handler) patchProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req models.UpdateStartupProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	profile, err := h.startupService.Patch(identity.ID, &req)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		respondInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

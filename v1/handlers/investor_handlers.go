package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleInvestor handles GET/PUT /api/investor (the caller's own investor profile)
func (h *V1Handler) HandleInvestor(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := h.investorService.GetByUserID(identity.ID)
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
		var req models.CreateInvestorProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if vErr := req.Validate(); vErr != nil {
			respondValidationError(w, vErr)
			return
		}

		profile, err := h.investorService.Upsert(identity.ID, identity.Email, &req)
		if err != nil {
			respondInternalError(w, r, err)
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, profile)
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

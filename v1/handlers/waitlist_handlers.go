package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleWaitlist handles POST /api/waitlist. This is the only public route.
func (h *V1Handler) HandleWaitlist(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.CreateWaitlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if vErr := req.Validate(); vErr != nil {
		respondValidationError(w, vErr)
		return
	}

	entry, err := h.waitlistService.Join(&req)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			utils.RespondWithError(w, http.StatusConflict, "This email is already on the waitlist.")
			return
		}
		respondInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, entry)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleAdmin handles GET/PATCH /api/admin, the moderation queue
func (h *V1Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}
	if !h.roles.IsAdmin(identity.Email) {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.listAdminProfiles(w, r)
	case http.MethodPatch:
		h.setApproval(w, r)
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// adminKind resolves the ?type= query parameter, defaulting to startup
func adminKind(r *http.Request) (models.ProfileKind, bool) {
	value := r.URL.Query().Get("type")
	if value == "" {
		return models.ProfileKindStartup, true
	}
	kind := models.ProfileKind(value)
	return kind, kind.IsValid()
}

func (h *V1Handler) listAdminProfiles(w http.ResponseWriter, r *http.Request) {
	kind, ok := adminKind(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile type")
		return
	}

	profiles, err := h.adminService.ListProfiles(kind)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

func (h *V1Handler) setApproval(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("id")
	if profileID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Profile id required")
		return
	}
	kind, ok := adminKind(r)
	if !ok {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid profile type")
		return
	}

	var body struct {
		Approved *bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Approved == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "approved (boolean) required")
		return
	}

	profile, err := h.adminService.SetApproval(kind, profileID, *body.Approved)
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

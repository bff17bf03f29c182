package handlers

import (
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/services"
)

// HandleDiscover handles GET /api/discover, the investor-facing startup feed.
// Non-admin callers must own an investor profile and receive redacted rows.
func (h *V1Handler) HandleDiscover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	admin := h.roles.IsAdmin(identity.Email)
	if !admin {
		hasInvestor, err := h.connectionService.HasInvestorProfile(identity.ID)
		if err != nil {
			respondInternalError(w, r, err)
			return
		}
		if !hasInvestor {
			utils.RespondWithError(w, http.StatusForbidden, "Investor account required")
			return
		}
	}

	query := r.URL.Query()
	filters := services.DiscoveryFilters{
		Industry:          query.Get("industry"),
		Stage:             query.Get("stage"),
		FundraisingStatus: query.Get("fundraising_status"),
		Location:          query.Get("location"),
	}

	profiles, err := h.discoveryService.List(filters)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}

	if admin {
		utils.RespondWithJSON(w, http.StatusOK, profiles)
		return
	}

	redacted := make([]map[string]interface{}, 0, len(profiles))
	for i := range profiles {
		redacted = append(redacted, profiles[i].Sanitized())
	}
	utils.RespondWithJSON(w, http.StatusOK, redacted)
}

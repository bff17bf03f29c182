package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/models"
)

// HandleConnections handles POST/GET /api/connections
func (h *V1Handler) HandleConnections(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createConnection(w, r)
	case http.MethodGet:
		h.listConnections(w, r)
	default:
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *V1Handler) createConnection(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	var req models.CreateConnectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if vErr := req.Validate(); vErr != nil {
		respondValidationError(w, vErr)
		return
	}

	connection, err := h.connectionService.Create(identity.ID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrForbidden):
			utils.RespondWithError(w, http.StatusForbidden, "Investor profile required")
		case errors.Is(err, models.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		case errors.Is(err, models.ErrConflict):
			utils.RespondWithError(w, http.StatusConflict, "Already expressed interest in this startup")
		default:
			respondInternalError(w, r, err)
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, connection)
}

// listConnections resolves the caller's side of the table: startup owners see
// incoming requests, investors see outgoing ones, everyone else an empty list.
func (h *V1Handler) listConnections(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.identity(w, r)
	if !ok {
		return
	}

	incoming, err := h.connectionService.ListIncoming(identity.ID)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, incoming)
		return
	}
	if !errors.Is(err, models.ErrNotFound) {
		respondInternalError(w, r, err)
		return
	}

	outgoing, err := h.connectionService.ListOutgoing(identity.ID)
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, outgoing)
		return
	}
	if errors.Is(err, models.ErrForbidden) {
		utils.RespondWithJSON(w, http.StatusOK, []models.OutgoingConnection{})
		return
	}
	respondInternalError(w, r, err)
}

package handlers

import (
	"log/slog"
	"net/http"

	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/shared/utils"
	"github.com/foundernet/portal-backend/v1/auth"
	"github.com/foundernet/portal-backend/v1/middleware"
	"github.com/foundernet/portal-backend/v1/models"
	"github.com/foundernet/portal-backend/v1/services"
)

// V1Handler handles all V1 API requests
type V1Handler struct {
	waitlistService   *services.WaitlistService
	startupService    *services.StartupService
	investorService   *services.InvestorService
	partnerService    *services.PartnerService
	individualService *services.IndividualService
	discoveryService  *services.DiscoveryService
	connectionService *services.ConnectionService
	adminService      *services.AdminService
	roles             *services.RoleClassifier
}

// NewV1Handler creates a new V1Handler with all services wired to the database
func NewV1Handler(db *gorm.DB, roles *services.RoleClassifier) *V1Handler {
	return &V1Handler{
		waitlistService:   services.NewWaitlistService(db),
		startupService:    services.NewStartupService(db),
		investorService:   services.NewInvestorService(db),
		partnerService:    services.NewPartnerService(db),
		individualService: services.NewIndividualService(db),
		discoveryService:  services.NewDiscoveryService(db),
		connectionService: services.NewConnectionService(db),
		adminService:      services.NewAdminService(db),
		roles:             roles,
	}
}

// SetupV1Routes registers all V1 routes on the mux. Every route except the
// public waitlist sits behind bearer-token authentication.
func (h *V1Handler) SetupV1Routes(mux *http.ServeMux, authMiddleware *middleware.AuthMiddleware) {
	authenticated := func(handler http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(handler)
	}

	mux.Handle("/api/waitlist", http.HandlerFunc(h.HandleWaitlist))
	mux.Handle("/api/profile", authenticated(h.HandleProfile))
	mux.Handle("/api/investor", authenticated(h.HandleInvestor))
	mux.Handle("/api/partner", authenticated(h.HandlePartner))
	mux.Handle("/api/individual", authenticated(h.HandleIndividual))
	mux.Handle("/api/discover", authenticated(h.HandleDiscover))
	mux.Handle("/api/connections", authenticated(h.HandleConnections))
	mux.Handle("/api/admin", authenticated(h.HandleAdmin))
}

// identity extracts the authenticated caller, responding 401 if the request
// somehow reached a handler without one.
func (h *V1Handler) identity(w http.ResponseWriter, r *http.Request) (*auth.Identity, bool) {
	identity, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return identity, true
}

func respondValidationError(w http.ResponseWriter, vErr *models.ValidationError) {
	utils.RespondWithFieldError(w, http.StatusBadRequest, vErr.Message, vErr.Field)
}

func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("Request failed", "error", err, "method", r.Method, "path", r.URL.Path)
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

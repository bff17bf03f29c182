package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foundernet/portal-backend/v1/models"
)

// startupUpsertColumns are the columns rewritten on a repeat PUT. Admin-owned
// columns (approved) and identity columns (id, user_id, created_at) are
// deliberately absent.
var startupUpsertColumns = []string{
	"email", "name", "job_title", "company_name", "company_description",
	"industry", "stage", "business_model", "target_customer", "primary_problem",
	"goals", "specific_ask", "location",
	"traction_range", "revenue_status", "fundraising_status", "capital_use",
	"phone", "website", "product_link", "is_registered", "product_description",
	"num_users", "monthly_revenue", "traction_highlights", "intents", "intent_details",
	"onboarding_completed", "updated_at",
}

// StartupService handles startup profile persistence
type StartupService struct {
	db *gorm.DB
}

// NewStartupService creates a new StartupService
func NewStartupService(db *gorm.DB) *StartupService {
	return &StartupService{db: db}
}

// GetByUserID returns the caller's own startup profile
func (s *StartupService) GetByUserID(userID string) (*models.StartupProfile, error) {
	var profile models.StartupProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get startup profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or replaces the caller's startup profile. The approved flag
// survives repeat submissions; only admins flip it.
func (s *StartupService) Upsert(userID, email string, req *models.CreateStartupProfileRequest) (*models.StartupProfile, error) {
	profile := &models.StartupProfile{
		ID:                  "sp_" + uuid.New().String(),
		UserID:              userID,
		Email:               email,
		Name:                req.Name,
		JobTitle:            req.JobTitle,
		CompanyName:         req.CompanyName,
		CompanyDescription:  req.CompanyDescription,
		Industry:            req.Industry,
		Stage:               req.Stage,
		BusinessModel:       req.BusinessModel,
		TargetCustomer:      req.TargetCustomer,
		PrimaryProblem:      req.PrimaryProblem,
		Goals:               models.StringArray(req.Goals),
		SpecificAsk:         req.SpecificAsk,
		Location:            req.Location,
		TractionRange:       req.TractionRange,
		RevenueStatus:       req.RevenueStatus,
		FundraisingStatus:   req.FundraisingStatus,
		CapitalUse:          models.StringArray(req.CapitalUse),
		Phone:               req.Phone,
		Website:             req.Website,
		ProductLink:         req.ProductLink,
		IsRegistered:        req.IsRegistered,
		ProductDescription:  req.ProductDescription,
		NumUsers:            req.NumUsers,
		MonthlyRevenue:      req.MonthlyRevenue,
		TractionHighlights:  req.TractionHighlights,
		Intents:             models.StringArray(req.Intents),
		IntentDetails:       req.IntentPayloads(),
		OnboardingCompleted: true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(startupUpsertColumns),
	}).Create(profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert startup profile: %w", err)
	}

	// Re-fetch so the stored id, created_at and approved flag come back
	// instead of the candidate row's values.
	return s.GetByUserID(userID)
}

// Patch applies a partial progressive-profiling update to the caller's profile
func (s *StartupService) Patch(userID string, req *models.UpdateStartupProfileRequest) (*models.StartupProfile, error) {
	if _, err := s.GetByUserID(userID); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) > 0 {
		err := s.db.Model(&models.StartupProfile{}).
			Where("user_id = ?", userID).
			Updates(changes).Error
		if err != nil {
			return nil, fmt.Errorf("failed to patch startup profile: %w", err)
		}
	}
	return s.GetByUserID(userID)
}

package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foundernet/portal-backend/v1/models"
)

var partnerUpsertColumns = []string{
	"full_name", "company_name", "email", "phone", "website", "linkedin_url",
	"partner_type", "services_offered", "industries_served", "stages_served",
	"pricing_model", "average_deal_size", "team_size", "years_experience",
	"tools_tech_stack", "work_mode", "portfolio_links", "case_studies",
	"past_clients", "certifications", "looking_for", "monthly_capacity",
	"preferred_budget_range", "onboarding_completed", "updated_at",
}

// PartnerService handles partner profile persistence
type PartnerService struct {
	db *gorm.DB
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(db *gorm.DB) *PartnerService {
	return &PartnerService{db: db}
}

// GetByUserID returns the caller's own partner profile
func (s *PartnerService) GetByUserID(userID string) (*models.PartnerProfile, error) {
	var profile models.PartnerProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get partner profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or replaces the caller's partner profile. The approved flag
// survives repeat submissions.
func (s *PartnerService) Upsert(userID string, req *models.CreatePartnerProfileRequest) (*models.PartnerProfile, error) {
	profile := &models.PartnerProfile{
		ID:                   "pt_" + uuid.New().String(),
		UserID:               userID,
		FullName:             req.FullName,
		CompanyName:          req.CompanyName,
		Email:                req.Email,
		Phone:                req.Phone,
		Website:              req.Website,
		LinkedinURL:          req.LinkedinURL,
		PartnerType:          req.PartnerType,
		ServicesOffered:      models.StringArray(req.ServicesOffered),
		IndustriesServed:     models.StringArray(req.IndustriesServed),
		StagesServed:         models.StringArray(req.StagesServed),
		PricingModel:         req.PricingModel,
		AverageDealSize:      req.AverageDealSize,
		TeamSize:             req.TeamSize,
		YearsExperience:      req.YearsExperience,
		ToolsTechStack:       req.ToolsTechStack,
		WorkMode:             req.WorkMode,
		PortfolioLinks:       req.PortfolioLinks,
		CaseStudies:          req.CaseStudies,
		PastClients:          req.PastClients,
		Certifications:       req.Certifications,
		LookingFor:           models.StringArray(req.LookingFor),
		MonthlyCapacity:      req.MonthlyCapacity,
		PreferredBudgetRange: req.PreferredBudgetRange,
		OnboardingCompleted:  true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(partnerUpsertColumns),
	}).Create(profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert partner profile: %w", err)
	}

	return s.GetByUserID(userID)
}

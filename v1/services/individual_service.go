package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foundernet/portal-backend/v1/models"
)

var individualUpsertColumns = []string{
	"full_name", "email", "phone", "linkedin_url", "portfolio_url",
	"profile_type", "skills", "experience_level", "tools_used",
	"looking_for", "preferred_roles", "preferred_industries", "availability",
	"work_mode", "expected_pay", "location", "resume_url", "projects",
	"achievements", "github_url", "onboarding_completed", "updated_at",
}

// IndividualService handles individual profile persistence
type IndividualService struct {
	db *gorm.DB
}

// NewIndividualService creates a new IndividualService
func NewIndividualService(db *gorm.DB) *IndividualService {
	return &IndividualService{db: db}
}

// GetByUserID returns the caller's own individual profile
func (s *IndividualService) GetByUserID(userID string) (*models.IndividualProfile, error) {
	var profile models.IndividualProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get individual profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or replaces the caller's individual profile. The approved
// flag survives repeat submissions.
func (s *IndividualService) Upsert(userID string, req *models.CreateIndividualProfileRequest) (*models.IndividualProfile, error) {
	profile := &models.IndividualProfile{
		ID:                  "ind_" + uuid.New().String(),
		UserID:              userID,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		LinkedinURL:         req.LinkedinURL,
		PortfolioURL:        req.PortfolioURL,
		ProfileType:         req.ProfileType,
		Skills:              models.StringArray(req.Skills),
		ExperienceLevel:     req.ExperienceLevel,
		ToolsUsed:           req.ToolsUsed,
		LookingFor:          models.StringArray(req.LookingFor),
		PreferredRoles:      req.PreferredRoles,
		PreferredIndustries: req.PreferredIndustries,
		Availability:        req.Availability,
		WorkMode:            req.WorkMode,
		ExpectedPay:         req.ExpectedPay,
		Location:            req.Location,
		ResumeURL:           req.ResumeURL,
		Projects:            req.Projects,
		Achievements:        req.Achievements,
		GithubURL:           req.GithubURL,
		OnboardingCompleted: true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(individualUpsertColumns),
	}).Create(profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert individual profile: %w", err)
	}

	return s.GetByUserID(userID)
}

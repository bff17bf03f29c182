package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foundernet/portal-backend/v1/models"
)

var investorUpsertColumns = []string{
	"email", "name", "firm_name", "investor_type", "check_size",
	"sectors", "stages", "geography", "thesis",
	"onboarding_completed", "updated_at",
}

// InvestorService handles investor profile persistence
type InvestorService struct {
	db *gorm.DB
}

// NewInvestorService creates a new InvestorService
func NewInvestorService(db *gorm.DB) *InvestorService {
	return &InvestorService{db: db}
}

// GetByUserID returns the caller's own investor profile
func (s *InvestorService) GetByUserID(userID string) (*models.InvestorProfile, error) {
	var profile models.InvestorProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get investor profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates or replaces the caller's investor profile
func (s *InvestorService) Upsert(userID, email string, req *models.CreateInvestorProfileRequest) (*models.InvestorProfile, error) {
	profile := &models.InvestorProfile{
		ID:           "inv_" + uuid.New().String(),
		UserID:       userID,
		Email:        email,
		Name:         req.Name,
		FirmName:     req.FirmName,
		InvestorType: req.InvestorType,
		CheckSize:    req.CheckSize,
		Sectors:      models.StringArray(req.Sectors),
		Stages:       models.StringArray(req.Stages),
		Geography:    req.Geography,
		Thesis:       req.Thesis,

		OnboardingCompleted: true,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns(investorUpsertColumns),
	}).Create(profile).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert investor profile: %w", err)
	}

	return s.GetByUserID(userID)
}

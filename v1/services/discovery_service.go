package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/v1/models"
)

// DiscoveryFilters narrow the discovery feed. Zero values mean no filter.
type DiscoveryFilters struct {
	Industry          string
	Stage             string
	FundraisingStatus string
	Location          string
}

// DiscoveryService serves the approved-startup feed for investors
type DiscoveryService struct {
	db *gorm.DB
}

// NewDiscoveryService creates a new DiscoveryService
func NewDiscoveryService(db *gorm.DB) *DiscoveryService {
	return &DiscoveryService{db: db}
}

// List returns approved startup profiles matching the filters, newest first.
// Unapproved profiles are only reachable through the moderation listing.
func (s *DiscoveryService) List(filters DiscoveryFilters) ([]models.StartupProfile, error) {
	query := s.db.Model(&models.StartupProfile{}).Where("approved = ?", true)

	if filters.Industry != "" {
		query = query.Where("industry = ?", filters.Industry)
	}
	if filters.Stage != "" {
		query = query.Where("stage = ?", filters.Stage)
	}
	if filters.FundraisingStatus != "" {
		query = query.Where("fundraising_status = ?", filters.FundraisingStatus)
	}
	if filters.Location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}

	var profiles []models.StartupProfile
	if err := query.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list startup profiles: %w", err)
	}
	return profiles, nil
}

package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/v1/models"
)

// adminListOrder surfaces pending profiles before approved ones, newest first
// within each group.
const adminListOrder = "approved ASC, created_at DESC"

// AdminService handles the moderation queue
type AdminService struct {
	db *gorm.DB
}

// NewAdminService creates a new AdminService
func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{db: db}
}

// ListProfiles returns every profile of the given kind for review
func (s *AdminService) ListProfiles(kind models.ProfileKind) (interface{}, error) {
	switch kind {
	case models.ProfileKindStartup:
		var profiles []models.StartupProfile
		if err := s.db.Order(adminListOrder).Find(&profiles).Error; err != nil {
			return nil, fmt.Errorf("failed to list startup profiles: %w", err)
		}
		return profiles, nil
	case models.ProfileKindPartner:
		var profiles []models.PartnerProfile
		if err := s.db.Order(adminListOrder).Find(&profiles).Error; err != nil {
			return nil, fmt.Errorf("failed to list partner profiles: %w", err)
		}
		return profiles, nil
	case models.ProfileKindIndividual:
		var profiles []models.IndividualProfile
		if err := s.db.Order(adminListOrder).Find(&profiles).Error; err != nil {
			return nil, fmt.Errorf("failed to list individual profiles: %w", err)
		}
		return profiles, nil
	default:
		return nil, fmt.Errorf("unknown profile kind: %s", kind)
	}
}

// SetApproval flips the approved flag on a profile and returns the updated
// record. A missing profile returns models.ErrNotFound.
func (s *AdminService) SetApproval(kind models.ProfileKind, id string, approved bool) (interface{}, error) {
	switch kind {
	case models.ProfileKindStartup:
		var profile models.StartupProfile
		if err := s.approve(&profile, id, approved); err != nil {
			return nil, err
		}
		return &profile, nil
	case models.ProfileKindPartner:
		var profile models.PartnerProfile
		if err := s.approve(&profile, id, approved); err != nil {
			return nil, err
		}
		return &profile, nil
	case models.ProfileKindIndividual:
		var profile models.IndividualProfile
		if err := s.approve(&profile, id, approved); err != nil {
			return nil, err
		}
		return &profile, nil
	default:
		return nil, fmt.Errorf("unknown profile kind: %s", kind)
	}
}

func (s *AdminService) approve(dest interface{}, id string, approved bool) error {
	if err := s.db.Where("id = ?", id).First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}
	err := s.db.Model(dest).Update("approved", approved).Error
	if err != nil {
		return fmt.Errorf("failed to update approval: %w", err)
	}
	return nil
}

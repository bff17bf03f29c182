package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/v1/models"
)

// WaitlistService handles waitlist signups
type WaitlistService struct {
	db *gorm.DB
}

// NewWaitlistService creates a new WaitlistService
func NewWaitlistService(db *gorm.DB) *WaitlistService {
	return &WaitlistService{db: db}
}

// Join adds an email to the waitlist. A duplicate email returns
// models.ErrConflict.
func (s *WaitlistService) Join(req *models.CreateWaitlistRequest) (*models.WaitlistEntry, error) {
	entry := &models.WaitlistEntry{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  req.Role,
	}

	if err := s.db.Create(entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("failed to create waitlist entry: %w", err)
	}
	return entry, nil
}

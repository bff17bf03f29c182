package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/v1/models"
)

// ConnectionService handles investor-to-startup connection requests
type ConnectionService struct {
	db *gorm.DB
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(db *gorm.DB) *ConnectionService {
	return &ConnectionService{db: db}
}

// Create records a connection request from the caller's investor profile to a
// startup. Callers without an investor profile get models.ErrForbidden; a
// repeat request for the same startup gets models.ErrConflict.
func (s *ConnectionService) Create(userID string, req *models.CreateConnectionRequest) (*models.Connection, error) {
	var (
		investor    models.InvestorProfile
		startup     models.StartupProfile
		investorErr error
		startupErr  error
	)

	// The two lookups hit independent tables, run them concurrently.
	done := make(chan struct{})
	go func() {
		defer close(done)
		startupErr = s.db.Where("id = ?", req.StartupID).First(&startup).Error
	}()
	investorErr = s.db.Where("user_id = ?", userID).First(&investor).Error
	<-done

	if investorErr != nil {
		if errors.Is(investorErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get investor profile: %w", investorErr)
	}
	if startupErr != nil {
		if errors.Is(startupErr, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get startup profile: %w", startupErr)
	}

	connection := &models.Connection{
		ID:         "conn_" + uuid.New().String(),
		StartupID:  startup.ID,
		InvestorID: investor.ID,
		Status:     models.ConnectionStatusPending,
		Message:    req.Message,
	}

	if err := s.db.Create(connection).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	return connection, nil
}

// ListOutgoing returns the caller's requests as an investor, newest first,
// each carrying a summary of the target startup.
func (s *ConnectionService) ListOutgoing(userID string) ([]models.OutgoingConnection, error) {
	var investor models.InvestorProfile
	if err := s.db.Where("user_id = ?", userID).First(&investor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get investor profile: %w", err)
	}

	var connections []models.Connection
	err := s.db.Where("investor_id = ?", investor.ID).
		Order("created_at DESC").
		Find(&connections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	startupIDs := make([]string, 0, len(connections))
	for _, conn := range connections {
		startupIDs = append(startupIDs, conn.StartupID)
	}

	startups := make(map[string]models.StartupProfile)
	if len(startupIDs) > 0 {
		var rows []models.StartupProfile
		if err := s.db.Where("id IN ?", startupIDs).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load connection startups: %w", err)
		}
		for _, row := range rows {
			startups[row.ID] = row
		}
	}

	result := make([]models.OutgoingConnection, 0, len(connections))
	for _, conn := range connections {
		out := models.OutgoingConnection{Connection: conn}
		if startup, ok := startups[conn.StartupID]; ok {
			out.Startup = &models.ConnectionStartupInfo{
				CompanyName: startup.CompanyName,
				Industry:    startup.Industry,
				Stage:       startup.Stage,
			}
		}
		result = append(result, out)
	}
	return result, nil
}

// ListIncoming returns requests received by the caller's startup, newest
// first, each carrying a summary of the requesting investor.
func (s *ConnectionService) ListIncoming(userID string) ([]models.IncomingConnection, error) {
	var startup models.StartupProfile
	if err := s.db.Where("user_id = ?", userID).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get startup profile: %w", err)
	}

	var connections []models.Connection
	err := s.db.Where("startup_id = ?", startup.ID).
		Order("created_at DESC").
		Find(&connections).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	investorIDs := make([]string, 0, len(connections))
	for _, conn := range connections {
		investorIDs = append(investorIDs, conn.InvestorID)
	}

	investors := make(map[string]models.InvestorProfile)
	if len(investorIDs) > 0 {
		var rows []models.InvestorProfile
		if err := s.db.Where("id IN ?", investorIDs).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load connection investors: %w", err)
		}
		for _, row := range rows {
			investors[row.ID] = row
		}
	}

	result := make([]models.IncomingConnection, 0, len(connections))
	for _, conn := range connections {
		in := models.IncomingConnection{Connection: conn}
		if investor, ok := investors[conn.InvestorID]; ok {
			in.Investor = &models.ConnectionInvestorInfo{
				Name:         investor.Name,
				FirmName:     investor.FirmName,
				InvestorType: investor.InvestorType,
				CheckSize:    investor.CheckSize,
			}
		}
		result = append(result, in)
	}
	return result, nil
}

// HasInvestorProfile reports whether the caller owns an investor profile
func (s *ConnectionService) HasInvestorProfile(userID string) (bool, error) {
	var count int64
	err := s.db.Model(&models.InvestorProfile{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check investor profile: %w", err)
	}
	return count > 0, nil
}

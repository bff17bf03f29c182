package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foundernet/portal-backend/v1/models"
	"github.com/foundernet/portal-backend/v1/testhelpers"
)

func seedStartup(t *testing.T, db *gorm.DB, userID, company, industry, stage, location string, approved bool, createdAt time.Time) *models.StartupProfile {
	t.Helper()
	fundraising := "Actively raising"
	profile := &models.StartupProfile{
		ID:                "sp_" + userID,
		UserID:            userID,
		CompanyName:       company,
		Industry:          industry,
		Stage:             stage,
		Location:          location,
		FundraisingStatus: &fundraising,
		Approved:          approved,
		CreatedAt:         createdAt,
	}
	require.NoError(t, db.Create(profile).Error)
	return profile
}

func TestDiscoveryServiceListApprovedOnly(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewDiscoveryService(db)

	now := time.Now()
	seedStartup(t, db, "u1", "Approved Inc", "FinTech", "Idea", "Berlin", true, now.Add(-2*time.Hour))
	seedStartup(t, db, "u2", "Pending Inc", "FinTech", "Idea", "Berlin", false, now.Add(-time.Hour))
	seedStartup(t, db, "u3", "Fresh Inc", "HealthTech", "Scaling", "Munich", true, now)

	profiles, err := service.List(DiscoveryFilters{})
	require.NoError(t, err)
	require.Len(t, profiles, 2)

	// Newest first, pending rows never appear
	assert.Equal(t, "Fresh Inc", profiles[0].CompanyName)
	assert.Equal(t, "Approved Inc", profiles[1].CompanyName)
}

func TestDiscoveryServiceListFilters(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewDiscoveryService(db)

	now := time.Now()
	seedStartup(t, db, "u1", "FinCo", "FinTech", "Idea", "Berlin, Germany", true, now.Add(-time.Hour))
	seedStartup(t, db, "u2", "MedCo", "HealthTech", "Scaling", "Munich", true, now)

	t.Run("industry filter", func(t *testing.T) {
		profiles, err := service.List(DiscoveryFilters{Industry: "FinTech"})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "FinCo", profiles[0].CompanyName)
	})

	t.Run("stage filter", func(t *testing.T) {
		profiles, err := service.List(DiscoveryFilters{Stage: "Scaling"})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "MedCo", profiles[0].CompanyName)
	})

	t.Run("fundraising status filter", func(t *testing.T) {
		profiles, err := service.List(DiscoveryFilters{FundraisingStatus: "Actively raising"})
		require.NoError(t, err)
		assert.Len(t, profiles, 2)

		profiles, err = service.List(DiscoveryFilters{FundraisingStatus: "Not raising"})
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})

	t.Run("location substring match is case-insensitive", func(t *testing.T) {
		profiles, err := service.List(DiscoveryFilters{Location: "berlin"})
		require.NoError(t, err)
		require.Len(t, profiles, 1)
		assert.Equal(t, "FinCo", profiles[0].CompanyName)
	})

	t.Run("combined filters", func(t *testing.T) {
		profiles, err := service.List(DiscoveryFilters{Industry: "FinTech", Stage: "Scaling"})
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

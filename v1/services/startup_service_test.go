package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundernet/portal-backend/v1/models"
	"github.com/foundernet/portal-backend/v1/testhelpers"
)

func startupRequest(company string) *models.CreateStartupProfileRequest {
	return &models.CreateStartupProfileRequest{
		Name:               "Jane Doe",
		JobTitle:           "CEO",
		CompanyName:        company,
		CompanyDescription: "Robots for warehouses",
		Industry:           "DeepTech",
		Stage:              "Early Revenue",
		BusinessModel:      "B2B",
		TargetCustomer:     "Warehouse operators",
		PrimaryProblem:     "Manual picking is slow",
		Goals:              []string{"Investors"},
		Location:           "Berlin",
	}
}

func TestStartupServiceUpsertThenGet(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	profile, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(profile.ID, "sp_"))
	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, "Acme Robotics", profile.CompanyName)
	assert.True(t, profile.OnboardingCompleted)
	assert.False(t, profile.Approved)
	assert.False(t, profile.CreatedAt.IsZero())

	fetched, err := service.GetByUserID("user-1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, fetched.ID)
	assert.Equal(t, "Acme Robotics", fetched.CompanyName)
	assert.Equal(t, models.StringArray{"Investors"}, fetched.Goals)
}

func TestStartupServiceUpsertIsIdempotentPerUser(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	first, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics"))
	require.NoError(t, err)

	second, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics v2"))
	require.NoError(t, err)

	// Same row, replaced content
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Robotics v2", second.CompanyName)

	var count int64
	require.NoError(t, db.Model(&models.StartupProfile{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestStartupServiceUpsertPreservesApproval(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	profile, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics"))
	require.NoError(t, err)

	err = db.Model(&models.StartupProfile{}).Where("id = ?", profile.ID).Update("approved", true).Error
	require.NoError(t, err)

	updated, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics v2"))
	require.NoError(t, err)
	assert.True(t, updated.Approved, "resubmitting the profile must not reset approval")
}

func TestStartupServiceGetByUserIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	_, err := service.GetByUserID("nobody")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestStartupServicePatch(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	_, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics"))
	require.NoError(t, err)

	teamSize := "5-10"
	deck := "https://example.com/deck.pdf"
	patched, err := service.Patch("user-1", &models.UpdateStartupProfileRequest{
		TeamSize:     &teamSize,
		DeckLink:     &deck,
		MissingRoles: []string{"CTO", "Designer"},
	})
	require.NoError(t, err)

	require.NotNil(t, patched.TeamSize)
	assert.Equal(t, "5-10", *patched.TeamSize)
	require.NotNil(t, patched.DeckLink)
	assert.Equal(t, deck, *patched.DeckLink)
	assert.Equal(t, models.StringArray{"CTO", "Designer"}, patched.MissingRoles)

	// Untouched fields survive
	assert.Equal(t, "Acme Robotics", patched.CompanyName)
}

func TestStartupServicePatchEmptyRequest(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	created, err := service.Upsert("user-1", "jane@example.com", startupRequest("Acme Robotics"))
	require.NoError(t, err)

	patched, err := service.Patch("user-1", &models.UpdateStartupProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, patched.ID)
	assert.Equal(t, "Acme Robotics", patched.CompanyName)
}

func TestStartupServicePatchNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewStartupService(db)

	teamSize := "5-10"
	_, err := service.Patch("nobody", &models.UpdateStartupProfileRequest{TeamSize: &teamSize})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

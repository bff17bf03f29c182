package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundernet/portal-backend/v1/models"
	"github.com/foundernet/portal-backend/v1/testhelpers"
)

func TestAdminServiceListProfilesOrdering(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewAdminService(db)

	now := time.Now()
	seedStartup(t, db, "u1", "Old Approved", "FinTech", "Idea", "Berlin", true, now.Add(-3*time.Hour))
	seedStartup(t, db, "u2", "New Approved", "FinTech", "Idea", "Berlin", true, now.Add(-time.Hour))
	seedStartup(t, db, "u3", "Old Pending", "FinTech", "Idea", "Berlin", false, now.Add(-2*time.Hour))
	seedStartup(t, db, "u4", "New Pending", "FinTech", "Idea", "Berlin", false, now)

	result, err := service.ListProfiles(models.ProfileKindStartup)
	require.NoError(t, err)

	profiles, ok := result.([]models.StartupProfile)
	require.True(t, ok)
	require.Len(t, profiles, 4)

	// Pending first, then approved, newest first within each group
	assert.Equal(t, "New Pending", profiles[0].CompanyName)
	assert.Equal(t, "Old Pending", profiles[1].CompanyName)
	assert.Equal(t, "New Approved", profiles[2].CompanyName)
	assert.Equal(t, "Old Approved", profiles[3].CompanyName)
}

func TestAdminServiceListProfilesByKind(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewAdminService(db)

	_, err := NewPartnerService(db).Upsert("user-2", partnerRequest())
	require.NoError(t, err)
	_, err = NewIndividualService(db).Upsert("user-3", individualRequest())
	require.NoError(t, err)

	partners, err := service.ListProfiles(models.ProfileKindPartner)
	require.NoError(t, err)
	assert.Len(t, partners.([]models.PartnerProfile), 1)

	individuals, err := service.ListProfiles(models.ProfileKindIndividual)
	require.NoError(t, err)
	assert.Len(t, individuals.([]models.IndividualProfile), 1)

	_, err = service.ListProfiles(models.ProfileKind("bogus"))
	assert.Error(t, err)
}

func TestAdminServiceSetApproval(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewAdminService(db)

	profile := seedStartup(t, db, "u1", "Acme", "FinTech", "Idea", "Berlin", false, time.Now())

	result, err := service.SetApproval(models.ProfileKindStartup, profile.ID, true)
	require.NoError(t, err)

	updated, ok := result.(*models.StartupProfile)
	require.True(t, ok)
	assert.True(t, updated.Approved)

	var stored models.StartupProfile
	require.NoError(t, db.Where("id = ?", profile.ID).First(&stored).Error)
	assert.True(t, stored.Approved)

	// Approving an approved profile is a no-op success
	result, err = service.SetApproval(models.ProfileKindStartup, profile.ID, true)
	require.NoError(t, err)
	assert.True(t, result.(*models.StartupProfile).Approved)

	// Rejection flips it back
	result, err = service.SetApproval(models.ProfileKindStartup, profile.ID, false)
	require.NoError(t, err)
	assert.False(t, result.(*models.StartupProfile).Approved)
}

func TestAdminServiceSetApprovalNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewAdminService(db)

	_, err := service.SetApproval(models.ProfileKindStartup, "sp_missing", true)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAdminServiceSetApprovalPartner(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	service := NewAdminService(db)

	partner, err := NewPartnerService(db).Upsert("user-2", partnerRequest())
	require.NoError(t, err)

	result, err := service.SetApproval(models.ProfileKindPartner, partner.ID, true)
	require.NoError(t, err)
	assert.True(t, result.(*models.PartnerProfile).Approved)
}

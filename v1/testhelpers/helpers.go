package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/foundernet/portal-backend/v1/models"
)

// SetupTestDB creates an in-memory SQLite database with all tables migrated.
// TranslateError matches the production connection so conflict detection
// behaves identically in tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open in-memory database")

	err = db.AutoMigrate(
		&models.WaitlistEntry{},
		&models.StartupProfile{},
		&models.InvestorProfile{},
		&models.PartnerProfile{},
		&models.IndividualProfile{},
		&models.Connection{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

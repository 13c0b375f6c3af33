package services

import (
	"testing"

	"billing-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps the in-memory database alive across
	// goroutines and serializes concurrent transactions.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserBalance{},
		&models.BillingProfile{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Setting{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		Name:     "Test User",
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// fakeSettings satisfies SettingsStore with deterministic in-memory values.
type fakeSettings map[string]string

func (f fakeSettings) GetValue(key string) (string, error) { return f[key], nil }

func (f fakeSettings) SetValue(key, value string) error {
	f[key] = value
	return nil
}

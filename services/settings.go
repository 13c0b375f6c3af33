package services

import (
	"errors"

	"billing-backend/models"

	"gorm.io/gorm"
)

// SettingsStore reads and writes process-wide configuration values. The
// currency service takes this as an interface so tests can substitute
// deterministic values.
type SettingsStore interface {
	GetValue(key string) (string, error)
	SetValue(key, value string) error
}

type settingsStore struct {
	db *gorm.DB
}

func NewSettingsStore(db *gorm.DB) SettingsStore {
	return &settingsStore{db: db}
}

// GetValue returns the stored value for key, or "" when it was never set.
func (s *settingsStore) GetValue(key string) (string, error) {
	var setting models.Setting
	err := s.db.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (s *settingsStore) SetValue(key, value string) error {
	var setting models.Setting
	err := s.db.Where("setting_key = ?", key).First(&setting).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = models.Setting{
			Key:   key,
			Value: value,
		}
		return s.db.Create(&setting).Error
	} else if err != nil {
		return err
	}

	setting.Value = value
	return s.db.Save(&setting).Error
}

package services

import (
	"errors"

	"apuntes-app/apuntes/database"
	"apuntes-app/apuntes/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingServiceInterface interface {
	GetSetting(db *database.Database, userID, key string) (string, error)
	SetSetting(db *database.Database, userID, key, value string) error
}

type SettingService struct{}

// GetSetting returns the stored value, or the empty string when the user has
// never written this key. Absence is not an error.
func (s *SettingService) GetSetting(db *database.Database, userID, key string) (string, error) {
	var setting models.Setting
	err := db.DB.First(&setting, "user_id = ? AND key = ?", userID, key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingService) SetSetting(db *database.Database, userID, key, value string) error {
	setting := models.Setting{
		UserID: userID,
		Key:    key,
		Value:  value,
	}
	return db.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// NewSettingService creates a new instance of SettingService
func NewSettingService() SettingServiceInterface {
	return &SettingService{}
}

package services

import (
	"testing"

	"apuntes-app/apuntes/models"
	"apuntes-app/apuntes/testutils"

	"github.com/stretchr/testify/assert"
)

func TestGetSetting_EmptyBeforeFirstWrite(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := &SettingService{}

	value, err := service.GetSetting(db, ownerAlice, models.QuickNoteKey)
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestSetSetting_RoundTripAndOverwrite(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := &SettingService{}

	err := service.SetSetting(db, ownerAlice, models.QuickNoteKey, "comprar folios")
	assert.NoError(t, err)

	value, err := service.GetSetting(db, ownerAlice, models.QuickNoteKey)
	assert.NoError(t, err)
	assert.Equal(t, "comprar folios", value)

	// Upsert: the second write replaces the first, no history kept.
	err = service.SetSetting(db, ownerAlice, models.QuickNoteKey, "ya comprados")
	assert.NoError(t, err)

	value, err = service.GetSetting(db, ownerAlice, models.QuickNoteKey)
	assert.NoError(t, err)
	assert.Equal(t, "ya comprados", value)

	var count int64
	err = db.DB.Model(&models.Setting{}).Count(&count).Error
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSetSetting_ScopedToOwner(t *testing.T) {
	db := testutils.SetupTestDB(t)
	service := &SettingService{}

	err := service.SetSetting(db, ownerAlice, models.QuickNoteKey, "de alice")
	assert.NoError(t, err)

	value, err := service.GetSetting(db, ownerBob, models.QuickNoteKey)
	assert.NoError(t, err)
	assert.Equal(t, "", value)
}

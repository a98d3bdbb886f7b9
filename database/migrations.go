package database

import (
	"log"

	"apuntes-app/apuntes/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Note{},
		&models.Setting{},
		&models.PushSubscription{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}

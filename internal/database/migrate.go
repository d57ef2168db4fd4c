package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/demeter-health/backend/internal/models"
)

// RunMigrations brings the schema up to date.
func RunMigrations(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.UserProfile{},
		&models.ScanUpload{},
		&models.SavedRecipe{},
		&models.DailyTotal{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

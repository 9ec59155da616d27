package database

import (
	"admin_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the console's tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.FAQ{},
		&models.Plan{},
	)
}

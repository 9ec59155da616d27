package app

import (
	"errors"

	"admin_backend/internal/auth"
	"admin_backend/internal/config"
	"admin_backend/internal/logger"
	"admin_backend/internal/models"

	"gorm.io/gorm"
)

// seedAdmin makes sure the account pinned by the admin policy exists, so a
// fresh deployment can be logged into. The id is set explicitly: the policy
// matches on (id, email), not email alone.
func seedAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.UserID == "" || cfg.Admin.Email == "" {
		return errors.New("admin.user_id and admin.email must be configured")
	}

	var existing models.User
	err := db.First(&existing, "id = ?", cfg.Admin.UserID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		FullName:   cfg.Admin.Name,
		Email:      cfg.Admin.Email,
		IsVerified: true,
	}
	admin.ID = cfg.Admin.UserID

	if cfg.Admin.Password != "" {
		hash, err := auth.HashPassword(cfg.Admin.Password)
		if err != nil {
			return err
		}
		admin.PasswordHash = hash
	} else {
		// No seed password configured: treat the account as a Google login,
		// same as the production data it models.
		admin.IsGoogleUser = true
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Admin user seeded", "email", admin.Email)
	return nil
}

package users

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"folio_backend/internals/configs"
	"folio_backend/internals/features/users/auth/model"
	authService "folio_backend/internals/features/users/auth/service"
)

// SeedAdminUser makes sure a single admin account exists so the
// dashboard is reachable on first boot. It never overwrites an
// existing account, password changes go through the API.
func SeedAdminUser(db *gorm.DB) error {
	if configs.AdminPassword == "" {
		log.Println("[WARN] ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing model.AdminUserModel
	err := db.Where("admin_user_email = ?", configs.AdminEmail).First(&existing).Error
	if err == nil {
		log.Printf("[INFO] Admin user '%s' already exists, skipping seed", configs.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := authService.HashPassword(configs.AdminPassword)
	if err != nil {
		return err
	}

	admin := model.AdminUserModel{
		AdminUserName:     "Admin",
		AdminUserEmail:    configs.AdminEmail,
		AdminUserPassword: hashed,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("[INFO] Seeded admin user '%s'", configs.AdminEmail)
	return nil
}

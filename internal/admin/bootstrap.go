package admin

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"shipment-portal/internal/config"
	"shipment-portal/internal/database"
	"shipment-portal/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureDefaultAdmin makes startup idempotent: after it returns nil, exactly
// one bootstrap admin account exists for the configured email.
func EnsureDefaultAdmin(cfg *config.Config) error {
	// Store the same normalized form the login handler looks up, or a
	// mixed-case ADMIN_EMAIL could never authenticate.
	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))

	var existing models.User
	err := database.DB.
		Where("email = ? AND role = ?", email, models.RoleAdmin).
		First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists.")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}

	adminUser := models.User{
		Name:         "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := database.DB.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("could not create admin user: %w", err)
	}

	log.Println("Admin user created.")
	return nil
}

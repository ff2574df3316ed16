package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/eoreilly0906/Spoon-API/models"
	"github.com/eoreilly0906/Spoon-API/utils"

	"gorm.io/gorm"
)

// SeedUsers inserts the default development login if it isn't there
// yet. Safe to run on every startup.
func SeedUsers(db *gorm.DB) error {
	var existing models.User
	err := db.Where("username = ?", "Admin123").First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check seed user: %w", err)
	}

	hashed, err := utils.HashPassword("password")
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := models.User{
		Username: "Admin123",
		Email:    "admin@gmail.com",
		Password: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to create seed user: %w", err)
	}

	log.Println("----- DATABASE SEEDED -----")
	return nil
}

package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/eoreilly0906/Spoon-API/models"
	"github.com/eoreilly0906/Spoon-API/utils"

	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both unknown-user and wrong-password
	// so login responses can't be used for username enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

func (s *AuthService) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// Authenticate checks the credentials against the stored hash and
// returns the matching user. Callers mint the token.
func (s *AuthService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (s *AuthService) GetUser(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// Package auth provides password login issuing JWT tokens. Accounts and
// premium state are otherwise outside the generation pipeline.
package auth

import (
	"errors"
	"time"

	"github.com/studypal/core/internal/models"
	"github.com/studypal/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

const tokenTTL = 7 * 24 * time.Hour

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies credentials and returns a signed token.
func (s *Service) Login(username, password string) (string, error) {
	var user models.UserModel
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return jwt.Sign(user.ID, tokenTTL)
}

// Register creates an account with a hashed password.
func (s *Service) Register(username, password string, email *string) (*models.UserModel, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.UserModel{
		Username:           username,
		Password:           string(hash),
		Email:              email,
		SubscriptionStatus: "free",
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

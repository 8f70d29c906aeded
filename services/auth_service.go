package services

import (
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles password hashing and verification for staff and
// customer accounts.
type AuthService struct{}

// NewAuthService creates a new auth service
func NewAuthService() *AuthService {
	return &AuthService{}
}

// HashPassword hashes a password using bcrypt
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks if a password matches its bcrypt hash
func (s *AuthService) VerifyPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// ValidatePassword checks if a password meets minimum requirements
// Minimum 6 characters (matches the signup form)
func (s *AuthService) ValidatePassword(password string) bool {
	return len(password) >= 6
}

// ════════════════════════════════════════════════════════════
// Global Instance
// ════════════════════════════════════════════════════════════

var authService *AuthService

// GetAuthService returns the global auth service instance
func GetAuthService() *AuthService {
	if authService == nil {
		authService = NewAuthService()
	}
	return authService
}

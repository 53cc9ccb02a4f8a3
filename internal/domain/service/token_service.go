package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims of an owner session token.
type Claims struct {
	Phone string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating owner session tokens.
type TokenService interface {
	// GenerateToken creates a signed session token for the owner phone.
	GenerateToken(phone string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns the configured lifetime of session tokens.
	TokenTTL() time.Duration
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for validating access tokens issued by
// the platform's auth service. The gateway never issues tokens itself.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}

package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates caller identity tokens. Token issuance and refresh
// belong to the external identity service; this service only verifies.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}

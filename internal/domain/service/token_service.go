package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the access-token claims the API relies on.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject as the account id.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService issues and validates access tokens.
type TokenService interface {
	// GenerateAccessToken creates an access token for an account and its roles.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the signature and expiry of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}

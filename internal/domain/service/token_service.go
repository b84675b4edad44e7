package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by tenant access tokens.
type Claims struct {
	TenantID uuid.UUID `json:"tenant_id"`
	UserID   uuid.UUID `json:"user_id"`
	Roles    []string  `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating tenant access tokens.
// Tokens are minted by the identity service; this service validates them and can
// issue short-lived tokens for internal callers.
type TokenService interface {
	// GenerateToken creates an access token for a user acting within a tenant.
	GenerateToken(tenantID, userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the lifetime of issued tokens.
	TokenDuration() time.Duration
}

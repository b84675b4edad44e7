// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	accessTokenTTL = 15 * time.Minute
	tokenIssuer    = "reviewhub"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService creates the tenant token service from the shared signing secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    accessTokenTTL,
		now:    time.Now,
	}, nil
}

// GenerateToken signs an HS256 token for a user acting within a tenant.
func (s *jwtService) GenerateToken(tenantID, userID uuid.UUID, roles []string) (string, error) {
	now := s.now()
	claims := service.Claims{
		TenantID: tenantID,
		UserID:   userID,
		Roles:    roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken parses tokenString and requires a tenant and a user.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if claims.TenantID == uuid.Nil || claims.UserID == uuid.Nil {
		return nil, errors.New("token carries no tenant or user")
	}

	return claims, nil
}

// TokenDuration returns the lifetime of issued tokens.
func (s *jwtService) TokenDuration() time.Duration {
	return s.ttl
}

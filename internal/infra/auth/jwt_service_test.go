package auth

import (
	"testing"
	"time"

	"reviewhub/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	tenantID := uuid.New()
	userID := uuid.New()
	roles := []string{"manager"}

	token, err := svc.GenerateToken(tenantID, userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, tenantID, claims.TenantID)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, 15*time.Minute, svc.TokenDuration())
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	foreign, err := other.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err, "token signed with another secret")

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := svc.GenerateToken(uuid.New(), uuid.New(), nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsTokenWithoutTenant(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)

	token, err := svc.GenerateToken(uuid.Nil, uuid.New(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorContains(t, err, "no tenant")
}

package repository

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCredentialNotFound is returned when no credential matches the lookup.
var ErrCredentialNotFound = errors.New("credential not found")

// CredentialRepository defines the interface for platform credential storage.
// Implementations seal tokens at rest; callers always see plaintext tokens.
type CredentialRepository interface {
	// Upsert creates or updates the credential identified by (tenant, platform, external id)
	// and fills in its ID and timestamps.
	Upsert(ctx context.Context, cred *entity.PlatformCredential) error

	// FindByID retrieves a credential owned by tenantID, active or not.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.PlatformCredential, error)

	// FindByExternalID retrieves the credential bound to one platform account, active or not.
	FindByExternalID(ctx context.Context, tenantID uuid.UUID, platform entity.Platform, externalID string) (*entity.PlatformCredential, error)

	// ListByPlatform returns the tenant's credentials for a platform, oldest first.
	// When activeOnly is false inactive rows are included.
	ListByPlatform(ctx context.Context, tenantID uuid.UUID, platform entity.Platform, activeOnly bool) ([]*entity.PlatformCredential, error)

	// ListByTenant returns every credential of a tenant.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.PlatformCredential, error)

	// UpdateTokens stores refreshed tokens for a credential.
	UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error

	// Deactivate soft-disconnects a credential.
	Deactivate(ctx context.Context, tenantID, id uuid.UUID) error
}

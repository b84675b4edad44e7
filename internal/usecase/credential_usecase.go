package usecase

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/google/uuid"
)

// ConnectCredentialInput carries the tokens obtained by the OAuth hand-off
type ConnectCredentialInput struct {
	Platform        entity.Platform `json:"platform" validate:"required,platform"`
	ExternalID      string          `json:"external_id"`
	AccessToken     string          `json:"access_token" validate:"required"`
	RefreshToken    string          `json:"refresh_token"`
	TokenType       string          `json:"token_type"`
	ExpiresAt       *time.Time      `json:"expires_at"`
	Scopes          []string        `json:"scopes"`
	PageName        string          `json:"page_name"`
	PageAccessToken string          `json:"page_access_token"`
	AccountID       string          `json:"account_id"`
	LocationName    string          `json:"location_name"`
}

// CredentialUsecase manages the tenant's connected platform accounts
type CredentialUsecase interface {
	// ConnectCredential stores the account, replacing the tokens of an existing
	// row with the same identity.
	ConnectCredential(ctx context.Context, tenantID uuid.UUID, input *ConnectCredentialInput) (*entity.PlatformCredential, error)

	// DiscoverFacebookPages lists the pages a Facebook user token manages.
	DiscoverFacebookPages(ctx context.Context, userAccessToken string) ([]service.PageAccount, error)

	// ConnectFacebookPages stores one credential per managed page listed in pageIDs,
	// or every managed page when pageIDs is empty.
	ConnectFacebookPages(ctx context.Context, tenantID uuid.UUID, userAccessToken string, scopes, pageIDs []string) ([]*entity.PlatformCredential, error)

	DisconnectCredential(ctx context.Context, tenantID, credentialID uuid.UUID) error
	ListCredentials(ctx context.Context, tenantID uuid.UUID) ([]*entity.PlatformCredential, error)

	// AvailablePlatforms reports per platform whether the tenant has an active account.
	AvailablePlatforms(ctx context.Context, tenantID uuid.UUID) ([]entity.PlatformConnection, error)
}

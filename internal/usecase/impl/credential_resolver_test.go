package impl

import (
	"context"
	"testing"
	"time"

	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	mockRepo "reviewhub/internal/mocks/repository"
	mockService "reviewhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type credentialResolverFixtures struct {
	resolver    *credentialResolver
	credRepo    *mockRepo.MockCredentialRepository
	listingRepo *mockRepo.MockListingRepository
	refresher   *mockService.MockTokenRefresher
}

func createTestCredentialResolver(t *testing.T, strict bool) credentialResolverFixtures {
	credRepo := mockRepo.NewMockCredentialRepository(t)
	listingRepo := mockRepo.NewMockListingRepository(t)
	refresher := mockService.NewMockTokenRefresher(t)

	return credentialResolverFixtures{
		resolver: &credentialResolver{
			credRepo:      credRepo,
			listingRepo:   listingRepo,
			refresher:     refresher,
			strictBinding: strict,
			refreshSkew:   5 * time.Minute,
			logger:        discardLogger(),
			now:           func() time.Time { return fixedNow },
		},
		credRepo:    credRepo,
		listingRepo: listingRepo,
		refresher:   refresher,
	}
}

func testCredential(tenantID uuid.UUID, platform entity.Platform, externalID string) *entity.PlatformCredential {
	return &entity.PlatformCredential{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Platform:    platform,
		ExternalID:  externalID,
		AccessToken: "token-" + externalID,
		TokenType:   entity.DefaultTokenType,
		IsActive:    true,
	}
}

func TestCredentialResolver_Page_ExactMatch(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New(), FacebookPageID: "pg1"}
	cred := testCredential(loc.TenantID, entity.PlatformFacebook, "pg1")

	fx.credRepo.EXPECT().
		FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, "pg1").
		Return(cred, nil)
	fx.refresher.EXPECT().CanRefresh(cred).Return(false)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformFacebook)
	require.NoError(t, err)
	assert.Same(t, cred, got)
}

func TestCredentialResolver_Page_NeverUsesAnotherPage(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New(), FacebookPageID: "pg1"}
	other := testCredential(loc.TenantID, entity.PlatformFacebook, "pg2")
	other.Metadata.PageID = "pg2"

	fx.credRepo.EXPECT().
		FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, "pg1").
		Return(nil, repository.ErrCredentialNotFound)
	fx.credRepo.EXPECT().
		ListByPlatform(ctx, loc.TenantID, entity.PlatformFacebook, false).
		Return([]*entity.PlatformCredential{other}, nil)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformFacebook)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialNotFound))
}

func TestCredentialResolver_Page_LegacyRow(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New(), FacebookPageID: "pg1"}
	legacy := testCredential(loc.TenantID, entity.PlatformFacebook, "")
	legacy.Metadata.PageID = "pg1"

	fx.credRepo.EXPECT().
		FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, "pg1").
		Return(nil, repository.ErrCredentialNotFound)
	fx.credRepo.EXPECT().
		ListByPlatform(ctx, loc.TenantID, entity.PlatformFacebook, false).
		Return([]*entity.PlatformCredential{legacy}, nil)
	fx.refresher.EXPECT().CanRefresh(legacy).Return(false)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformFacebook)
	require.NoError(t, err)
	assert.Same(t, legacy, got)
}

func TestCredentialResolver_Instagram_UsesPageCredential(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New(), FacebookPageID: "pg1"}
	cred := testCredential(loc.TenantID, entity.PlatformFacebook, "pg1")

	fx.credRepo.EXPECT().
		FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, "pg1").
		Return(cred, nil)
	fx.refresher.EXPECT().CanRefresh(cred).Return(false)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformInstagram)
	require.NoError(t, err)
	assert.Same(t, cred, got)
}

func TestCredentialResolver_Page_NoPageOnLocation(t *testing.T) {
	tenantID := uuid.New()
	inactive := testCredential(tenantID, entity.PlatformFacebook, "pg0")
	inactive.IsActive = false
	active := testCredential(tenantID, entity.PlatformFacebook, "pg7")

	tests := []struct {
		name     string
		platform entity.Platform
		creds    []*entity.PlatformCredential
		want     *entity.PlatformCredential
		wantErr  error
	}{
		{name: "falls back to tenant credential", platform: entity.PlatformFacebook, creds: []*entity.PlatformCredential{inactive, active}, want: active},
		{name: "instagram shares the fallback", platform: entity.PlatformInstagram, creds: []*entity.PlatformCredential{active}, want: active},
		{name: "nothing connected", platform: entity.PlatformFacebook, wantErr: domainerrors.ErrCredentialNotFound},
		{name: "only disconnected", platform: entity.PlatformFacebook, creds: []*entity.PlatformCredential{inactive}, wantErr: domainerrors.ErrCredentialInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCredentialResolver(t, false)
			ctx := context.Background()
			loc := &entity.Location{ID: uuid.New(), TenantID: tenantID}

			fx.credRepo.EXPECT().
				ListByPlatform(ctx, tenantID, entity.PlatformFacebook, false).
				Return(tt.creds, nil)
			if tt.want != nil {
				fx.refresher.EXPECT().CanRefresh(tt.want).Return(false)
			}

			got, err := fx.resolver.Resolve(ctx, loc, tt.platform)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
			fx.credRepo.AssertNotCalled(t, "FindByExternalID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCredentialResolver_MyBusiness_PrefersListingAccount(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New()}
	first := testCredential(loc.TenantID, entity.PlatformGoogleMyBusiness, "accounts/1")
	bound := testCredential(loc.TenantID, entity.PlatformGoogleMyBusiness, "accounts/2")
	bound.Metadata.LocationName = "locations/99"

	fx.listingRepo.EXPECT().
		FindByLocationAndPlatform(ctx, loc.ID, entity.PlatformGoogleMyBusiness).
		Return(&entity.Listing{ExternalID: "locations/99"}, nil)
	fx.credRepo.EXPECT().
		ListByPlatform(ctx, loc.TenantID, entity.PlatformGoogleMyBusiness, true).
		Return([]*entity.PlatformCredential{first, bound}, nil)
	fx.refresher.EXPECT().CanRefresh(bound).Return(false)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformGoogleMyBusiness)
	require.NoError(t, err)
	assert.Same(t, bound, got)
}

func TestCredentialResolver_MyBusiness_NoListingFallsBackToTenant(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New()}
	cred := testCredential(loc.TenantID, entity.PlatformGoogleMyBusiness, "accounts/1")

	fx.listingRepo.EXPECT().
		FindByLocationAndPlatform(ctx, loc.ID, entity.PlatformGoogleMyBusiness).
		Return(nil, repository.ErrListingNotFound)
	fx.credRepo.EXPECT().
		ListByPlatform(ctx, loc.TenantID, entity.PlatformGoogleMyBusiness, false).
		Return([]*entity.PlatformCredential{cred}, nil)
	fx.refresher.EXPECT().CanRefresh(cred).Return(false)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformGoogleMyBusiness)
	require.NoError(t, err)
	assert.Same(t, cred, got)
}

func TestCredentialResolver_TenantWide(t *testing.T) {
	tenantID := uuid.New()
	inactive := testCredential(tenantID, entity.PlatformYouTube, "ch-0")
	inactive.IsActive = false
	oldest := testCredential(tenantID, entity.PlatformYouTube, "ch-1")
	newest := testCredential(tenantID, entity.PlatformYouTube, "ch-2")

	tests := []struct {
		name    string
		strict  bool
		creds   []*entity.PlatformCredential
		want    *entity.PlatformCredential
		wantErr error
	}{
		{name: "none connected", creds: nil, wantErr: domainerrors.ErrCredentialNotFound},
		{name: "only inactive", creds: []*entity.PlatformCredential{inactive}, wantErr: domainerrors.ErrCredentialInactive},
		{name: "single active", creds: []*entity.PlatformCredential{inactive, newest}, want: newest},
		{name: "several picks oldest", creds: []*entity.PlatformCredential{oldest, newest}, want: oldest},
		{name: "several strict", strict: true, creds: []*entity.PlatformCredential{oldest, newest}, wantErr: domainerrors.ErrCredentialAmbiguous},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCredentialResolver(t, tt.strict)
			ctx := context.Background()
			loc := &entity.Location{ID: uuid.New(), TenantID: tenantID}

			fx.credRepo.EXPECT().
				ListByPlatform(ctx, tenantID, entity.PlatformYouTube, false).
				Return(tt.creds, nil)
			if tt.want != nil {
				fx.refresher.EXPECT().CanRefresh(tt.want).Return(false)
			}

			got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformYouTube)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.want, got)
		})
	}
}

func TestCredentialResolver_Expired(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New(), FacebookPageID: "pg1"}
	cred := testCredential(loc.TenantID, entity.PlatformFacebook, "pg1")
	expired := fixedNow.Add(-time.Hour)
	cred.ExpiresAt = &expired

	fx.credRepo.EXPECT().
		FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, "pg1").
		Return(cred, nil)
	fx.refresher.EXPECT().CanRefresh(cred).Return(false)

	_, err := fx.resolver.Resolve(ctx, loc, entity.PlatformFacebook)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialExpired))
}

func TestCredentialResolver_RefreshesExpiringToken(t *testing.T) {
	fx := createTestCredentialResolver(t, false)
	ctx := context.Background()
	loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New()}
	cred := testCredential(loc.TenantID, entity.PlatformGooglePlay, "")
	cred.RefreshToken = "refresh"
	soon := fixedNow.Add(time.Minute)
	cred.ExpiresAt = &soon

	later := fixedNow.Add(time.Hour)
	refreshed := *cred
	refreshed.AccessToken = "fresh"
	refreshed.ExpiresAt = &later

	fx.credRepo.EXPECT().
		ListByPlatform(ctx, loc.TenantID, entity.PlatformGooglePlay, false).
		Return([]*entity.PlatformCredential{cred}, nil)
	fx.refresher.EXPECT().CanRefresh(cred).Return(true)
	fx.refresher.EXPECT().Refresh(ctx, cred).Return(&refreshed, nil)
	fx.credRepo.EXPECT().
		UpdateTokens(ctx, cred.ID, "fresh", "refresh", &later).
		Return(nil)

	got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformGooglePlay)
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.AccessToken)
}

func TestCredentialResolver_RefreshFailure(t *testing.T) {
	tests := []struct {
		name      string
		expiresIn time.Duration
		wantErr   error
	}{
		{name: "still valid token is used", expiresIn: time.Minute},
		{name: "expired token fails", expiresIn: -time.Minute, wantErr: domainerrors.ErrCredentialExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCredentialResolver(t, false)
			ctx := context.Background()
			loc := &entity.Location{ID: uuid.New(), TenantID: uuid.New()}
			cred := testCredential(loc.TenantID, entity.PlatformYouTube, "")
			cred.RefreshToken = "refresh"
			expiresAt := fixedNow.Add(tt.expiresIn)
			cred.ExpiresAt = &expiresAt

			fx.credRepo.EXPECT().
				ListByPlatform(ctx, loc.TenantID, entity.PlatformYouTube, false).
				Return([]*entity.PlatformCredential{cred}, nil)
			fx.refresher.EXPECT().CanRefresh(cred).Return(true)
			fx.refresher.EXPECT().Refresh(ctx, cred).Return(nil, errors.New("invalid_grant"))

			got, err := fx.resolver.Resolve(ctx, loc, entity.PlatformYouTube)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}
			require.NoError(t, err)
			assert.Same(t, cred, got)
			fx.credRepo.AssertNotCalled(t, "UpdateTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

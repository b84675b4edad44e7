package impl

import (
	"context"
	"testing"

	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	mockRepo "reviewhub/internal/mocks/repository"
	mockService "reviewhub/internal/mocks/service"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// credentialServiceFixtures holds all test dependencies for credential service tests.
type credentialServiceFixtures struct {
	service   usecase.CredentialUsecase
	pages     *mockService.MockPageDirectory
	credRepo  *mockRepo.MockCredentialRepository
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	txCreds   *mockRepo.MockCredentialRepository
}

func createTestCredentialService(t *testing.T) credentialServiceFixtures {
	fx := credentialServiceFixtures{
		pages:     mockService.NewMockPageDirectory(t),
		credRepo:  mockRepo.NewMockCredentialRepository(t),
		txManager: mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		txCreds:   mockRepo.NewMockCredentialRepository(t),
	}
	registry := service.NewRegistry(
		&fakeSource{platform: entity.PlatformFacebook, binding: service.BindByLocation, ref: pageRef},
		&fakeSource{platform: entity.PlatformInstagram, binding: service.BindByLocation, ref: pageRef},
		&fakeSource{platform: entity.PlatformGoogle, binding: service.BindByKey, ref: placeRef},
		&fakeSource{platform: entity.PlatformGoogleMyBusiness, binding: service.BindByCredential},
		&fakeSource{platform: entity.PlatformYouTube, binding: service.BindByLocation, ref: channelRef},
	)
	fx.service = NewCredentialService(CredentialServiceParams{
		Logger:    discardLogger(),
		Registry:  registry,
		Pages:     fx.pages,
		CredRepo:  fx.credRepo,
		TxManager: fx.txManager,
	})
	expectTransactions(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewCredentialRepository().Return(fx.txCreds).Maybe()

	return fx
}

func TestCredentialService_ConnectCredential_Facebook(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	fx.credRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.PlatformCredential")).
		Run(func(_ context.Context, cred *entity.PlatformCredential) { cred.ID = uuid.New() }).
		Return(nil)

	cred, err := fx.service.ConnectCredential(ctx, tenantID, &usecase.ConnectCredentialInput{
		Platform:        entity.PlatformFacebook,
		ExternalID:      " pg1 ",
		AccessToken:     "user-token",
		PageName:        "Main Street Cafe",
		PageAccessToken: "page-token",
	})
	require.NoError(t, err)
	assert.Equal(t, tenantID, cred.TenantID)
	assert.Equal(t, "pg1", cred.ExternalID)
	assert.Equal(t, "pg1", cred.Metadata.PageID)
	assert.Equal(t, "page-token", cred.EffectiveToken())
	assert.Equal(t, entity.FacebookDefaultScopes, cred.Scopes)
	assert.True(t, cred.IsActive)
	assert.NotEqual(t, uuid.Nil, cred.ID)
}

func TestCredentialService_ConnectCredential_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.ConnectCredentialInput
		wantErr error
	}{
		{
			name:    "unregistered platform",
			input:   &usecase.ConnectCredentialInput{Platform: entity.PlatformGooglePlay, AccessToken: "t"},
			wantErr: domainerrors.ErrUnsupportedPlatform,
		},
		{
			name:    "instagram rides on facebook",
			input:   &usecase.ConnectCredentialInput{Platform: entity.PlatformInstagram, AccessToken: "t"},
			wantErr: domainerrors.ErrUnsupportedPlatform,
		},
		{
			name:    "facebook without page",
			input:   &usecase.ConnectCredentialInput{Platform: entity.PlatformFacebook, AccessToken: "t"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCredentialService(t)

			_, err := fx.service.ConnectCredential(context.Background(), uuid.New(), tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCredentialService_ConnectFacebookPages(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	fx.pages.EXPECT().ListPages(ctx, "user-token").Return([]service.PageAccount{
		{ID: "pg1", Name: "Cafe", AccessToken: "pt1", InstagramBusinessID: "ig1"},
		{ID: "pg2", Name: "Bakery", AccessToken: "pt2"},
	}, nil)
	fx.txCreds.EXPECT().
		Upsert(ctx, mock.MatchedBy(func(c *entity.PlatformCredential) bool { return c.ExternalID == "pg1" })).
		Return(nil)

	creds, err := fx.service.ConnectFacebookPages(ctx, tenantID, "user-token", nil, []string{"pg1"})
	require.NoError(t, err)
	require.Len(t, creds, 1)
	assert.Equal(t, "pt1", creds[0].Metadata.PageAccessToken)
	assert.Equal(t, "ig1", creds[0].Metadata.Extra["instagram_business_id"])
	assert.Equal(t, entity.FacebookDefaultScopes, creds[0].Scopes)
	fx.credRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestCredentialService_ConnectFacebookPages_NoneSelected(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pages.EXPECT().ListPages(ctx, "user-token").Return([]service.PageAccount{{ID: "pg2"}}, nil)

	_, err := fx.service.ConnectFacebookPages(ctx, uuid.New(), "user-token", nil, []string{"pg1"})
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialNotFound))
}

func TestCredentialService_DiscoverFacebookPages_Failure(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()

	fx.pages.EXPECT().ListPages(ctx, "bad").Return(nil, service.ErrRemoteRejected)

	_, err := fx.service.DiscoverFacebookPages(ctx, "bad")
	assert.True(t, errors.Is(err, domainerrors.ErrPlatformRequestFailed))
}

func TestCredentialService_DisconnectCredential(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	tenantID, credID, missing := uuid.New(), uuid.New(), uuid.New()

	fx.credRepo.EXPECT().Deactivate(ctx, tenantID, credID).Return(nil)
	fx.credRepo.EXPECT().Deactivate(ctx, tenantID, missing).Return(repository.ErrCredentialNotFound)

	require.NoError(t, fx.service.DisconnectCredential(ctx, tenantID, credID))
	assert.True(t, errors.Is(fx.service.DisconnectCredential(ctx, tenantID, missing), domainerrors.ErrCredentialNotFound))
}

func TestCredentialService_AvailablePlatforms(t *testing.T) {
	fx := createTestCredentialService(t)
	ctx := context.Background()
	tenantID := uuid.New()

	page := testCredential(tenantID, entity.PlatformFacebook, "pg1")
	page.Metadata = entity.CredentialMetadata{PageID: "pg1", PageName: "Cafe"}
	disconnected := testCredential(tenantID, entity.PlatformYouTube, "")
	disconnected.IsActive = false

	fx.credRepo.EXPECT().
		ListByTenant(ctx, tenantID).
		Return([]*entity.PlatformCredential{page, disconnected}, nil)

	conns, err := fx.service.AvailablePlatforms(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, []entity.PlatformConnection{
		{Platform: entity.PlatformFacebook, Connected: true, PageID: "pg1", PageName: "Cafe"},
		{Platform: entity.PlatformInstagram, Connected: true, PageID: "pg1", PageName: "Cafe"},
		{Platform: entity.PlatformGoogleMyBusiness},
		{Platform: entity.PlatformGoogle, Connected: true},
		{Platform: entity.PlatformYouTube},
	}, conns)
}

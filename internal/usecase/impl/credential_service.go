package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// CredentialServiceParams holds dependencies for the credential service
type CredentialServiceParams struct {
	fx.In

	Logger    *slog.Logger
	Registry  *service.Registry
	Pages     service.PageDirectory
	CredRepo  repository.CredentialRepository
	TxManager repository.TransactionManager
}

type credentialService struct {
	registry  *service.Registry
	pages     service.PageDirectory
	credRepo  repository.CredentialRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCredentialService creates the connected account service
func NewCredentialService(params CredentialServiceParams) usecase.CredentialUsecase {
	return &credentialService{
		registry:  params.Registry,
		pages:     params.Pages,
		credRepo:  params.CredRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ConnectCredential upserts the account on its identity and reactivates it
func (srv *credentialService) ConnectCredential(ctx context.Context, tenantID uuid.UUID, input *usecase.ConnectCredentialInput) (*entity.PlatformCredential, error) {
	if _, ok := srv.registry.Adapter(input.Platform); !ok {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(input.Platform.String())
	}
	// Instagram is reached through the Facebook page credential.
	if input.Platform != input.Platform.CredentialPlatform() {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails("connect the linked facebook page instead")
	}
	if input.Platform == entity.PlatformFacebook && input.ExternalID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("facebook credentials need the page id as external_id")
	}

	cred := &entity.PlatformCredential{
		TenantID:     tenantID,
		Platform:     input.Platform,
		ExternalID:   strings.TrimSpace(input.ExternalID),
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		TokenType:    input.TokenType,
		ExpiresAt:    input.ExpiresAt,
		Scopes:       input.Scopes,
		Metadata: entity.CredentialMetadata{
			PageName:        input.PageName,
			PageAccessToken: input.PageAccessToken,
			AccountID:       input.AccountID,
			LocationName:    input.LocationName,
		},
		IsActive: true,
	}
	if input.Platform == entity.PlatformFacebook {
		cred.Metadata.PageID = cred.ExternalID
		if len(cred.Scopes) == 0 {
			cred.Scopes = slices.Clone(entity.FacebookDefaultScopes)
		}
	}

	if err := srv.credRepo.Upsert(ctx, cred); err != nil {
		return nil, errors.Wrap(err, "failed to store credential")
	}
	srv.log(ctx).Info("Platform account connected",
		slog.String("tenant_id", tenantID.String()),
		slog.String("platform", cred.Platform.String()),
		slog.String("credential_id", cred.ID.String()),
		slog.Bool("review_access", cred.HasReviewAccess()),
	)

	return cred, nil
}

// DiscoverFacebookPages lists the pages reachable with a user token
func (srv *credentialService) DiscoverFacebookPages(ctx context.Context, userAccessToken string) ([]service.PageAccount, error) {
	pages, err := srv.pages.ListPages(ctx, userAccessToken)
	if err != nil {
		return nil, domainerrors.ErrPlatformRequestFailed.WithDetails(err.Error())
	}

	return pages, nil
}

// ConnectFacebookPages stores a page credential for each selected page in one transaction
func (srv *credentialService) ConnectFacebookPages(ctx context.Context, tenantID uuid.UUID, userAccessToken string, scopes, pageIDs []string) ([]*entity.PlatformCredential, error) {
	pages, err := srv.DiscoverFacebookPages(ctx, userAccessToken)
	if err != nil {
		return nil, err
	}
	if len(scopes) == 0 {
		scopes = slices.Clone(entity.FacebookDefaultScopes)
	}

	var creds []*entity.PlatformCredential
	for _, page := range pages {
		if len(pageIDs) > 0 && !slices.Contains(pageIDs, page.ID) {
			continue
		}
		meta := entity.CredentialMetadata{
			PageID:          page.ID,
			PageName:        page.Name,
			PageAccessToken: page.AccessToken,
		}
		if page.InstagramBusinessID != "" {
			meta.Extra = map[string]any{"instagram_business_id": page.InstagramBusinessID}
		}
		creds = append(creds, &entity.PlatformCredential{
			TenantID:    tenantID,
			Platform:    entity.PlatformFacebook,
			ExternalID:  page.ID,
			AccessToken: userAccessToken,
			TokenType:   entity.DefaultTokenType,
			Scopes:      scopes,
			Metadata:    meta,
			IsActive:    true,
		})
	}
	if len(creds) == 0 {
		return nil, domainerrors.ErrCredentialNotFound.WithDetails("the token manages none of the selected pages")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		credRepo := repoFactory.NewCredentialRepository()
		for _, cred := range creds {
			if err := credRepo.Upsert(ctx, cred); err != nil {
				return errors.Wrapf(err, "failed to store page %s", cred.ExternalID)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Facebook pages connected",
		slog.String("tenant_id", tenantID.String()),
		slog.Int("pages", len(creds)),
	)

	return creds, nil
}

// DisconnectCredential soft-deactivates a credential
func (srv *credentialService) DisconnectCredential(ctx context.Context, tenantID, credentialID uuid.UUID) error {
	if err := srv.credRepo.Deactivate(ctx, tenantID, credentialID); err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			return domainerrors.ErrCredentialNotFound
		}

		return errors.Wrap(err, "failed to deactivate credential")
	}

	return nil
}

// ListCredentials returns every credential of a tenant
func (srv *credentialService) ListCredentials(ctx context.Context, tenantID uuid.UUID) ([]*entity.PlatformCredential, error) {
	creds, err := srv.credRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	return creds, nil
}

// AvailablePlatforms reports the connection state of every registered platform
func (srv *credentialService) AvailablePlatforms(ctx context.Context, tenantID uuid.UUID) ([]entity.PlatformConnection, error) {
	creds, err := srv.ListCredentials(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	active := make(map[entity.Platform]*entity.PlatformCredential)
	for _, cred := range creds {
		if _, seen := active[cred.Platform]; cred.IsActive && !seen {
			active[cred.Platform] = cred
		}
	}

	platforms := srv.registry.Platforms()
	connections := make([]entity.PlatformConnection, 0, len(platforms))
	for _, platform := range platforms {
		adapter, _ := srv.registry.Adapter(platform)
		conn := entity.PlatformConnection{Platform: platform}
		if adapter.Binding() == service.BindByKey {
			// Key-bound platforms need no account.
			conn.Connected = true
		}
		if cred, ok := active[platform.CredentialPlatform()]; ok {
			conn.Connected = true
			conn.PageID = cred.Metadata.PageID
			conn.PageName = cred.Metadata.PageName
		}
		connections = append(connections, conn)
	}

	return connections, nil
}

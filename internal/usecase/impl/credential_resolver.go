package impl

import (
	"context"
	"log/slog"
	"time"

	"reviewhub/config"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/usecase"

	"go.uber.org/fx"
)

// CredentialResolverParams holds dependencies for the credential resolver
type CredentialResolverParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	CredRepo    repository.CredentialRepository
	ListingRepo repository.ListingRepository
	Refresher   service.TokenRefresher
}

type credentialResolver struct {
	credRepo      repository.CredentialRepository
	listingRepo   repository.ListingRepository
	refresher     service.TokenRefresher
	strictBinding bool
	refreshSkew   time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewCredentialResolver creates the resolver
func NewCredentialResolver(params CredentialResolverParams) usecase.CredentialResolver {
	return &credentialResolver{
		credRepo:      params.CredRepo,
		listingRepo:   params.ListingRepo,
		refresher:     params.Refresher,
		strictBinding: params.Config.Platforms.StrictBinding,
		refreshSkew:   params.Config.Platforms.RefreshSkew,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (r *credentialResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve implements usecase.CredentialResolver.
func (r *credentialResolver) Resolve(ctx context.Context, loc *entity.Location, platform entity.Platform) (*entity.PlatformCredential, error) {
	credPlatform := platform.CredentialPlatform()

	var cred *entity.PlatformCredential
	var err error
	switch credPlatform {
	case entity.PlatformFacebook:
		cred, err = r.resolvePage(ctx, loc)
	case entity.PlatformGoogleMyBusiness:
		cred, err = r.resolveMyBusiness(ctx, loc)
	default:
		cred, err = r.resolveAny(ctx, loc, credPlatform)
	}
	if err != nil {
		return nil, err
	}

	return r.usable(ctx, cred)
}

// resolvePage only ever returns the credential bound to the location's own page.
// Without a page on the location any active facebook credential of the tenant is used.
func (r *credentialResolver) resolvePage(ctx context.Context, loc *entity.Location) (*entity.PlatformCredential, error) {
	if loc.FacebookPageID == "" {
		return r.resolveAny(ctx, loc, entity.PlatformFacebook)
	}

	cred, err := r.credRepo.FindByExternalID(ctx, loc.TenantID, entity.PlatformFacebook, loc.FacebookPageID)
	if err == nil {
		return cred, nil
	}
	if !errors.Is(err, repository.ErrCredentialNotFound) {
		return nil, errors.Wrap(err, "failed to find page credential")
	}

	// Rows stored before external ids existed only carry the page id in metadata.
	creds, err := r.credRepo.ListByPlatform(ctx, loc.TenantID, entity.PlatformFacebook, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list page credentials")
	}
	for _, c := range creds {
		if c.ExternalID == "" && c.Metadata.PageID == loc.FacebookPageID {
			return c, nil
		}
	}

	return nil, domainerrors.ErrCredentialNotFound.WithDetails("no credential for page " + loc.FacebookPageID)
}

func (r *credentialResolver) resolveMyBusiness(ctx context.Context, loc *entity.Location) (*entity.PlatformCredential, error) {
	listing, err := r.listingRepo.FindByLocationAndPlatform(ctx, loc.ID, entity.PlatformGoogleMyBusiness)
	if err != nil && !errors.Is(err, repository.ErrListingNotFound) {
		return nil, errors.Wrap(err, "failed to find my business listing")
	}
	if listing == nil || listing.ExternalID == "" {
		return r.resolveAny(ctx, loc, entity.PlatformGoogleMyBusiness)
	}

	creds, err := r.credRepo.ListByPlatform(ctx, loc.TenantID, entity.PlatformGoogleMyBusiness, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list my business credentials")
	}
	for _, c := range creds {
		if c.ExternalID == listing.ExternalID || c.Metadata.LocationName == listing.ExternalID {
			return c, nil
		}
	}

	return r.resolveAny(ctx, loc, entity.PlatformGoogleMyBusiness)
}

// resolveAny picks the oldest active credential of the tenant for platform.
func (r *credentialResolver) resolveAny(ctx context.Context, loc *entity.Location, platform entity.Platform) (*entity.PlatformCredential, error) {
	creds, err := r.credRepo.ListByPlatform(ctx, loc.TenantID, platform, false)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s credentials", platform)
	}
	if len(creds) == 0 {
		return nil, domainerrors.ErrCredentialNotFound.WithDetails("no " + platform.String() + " account connected")
	}

	var active []*entity.PlatformCredential
	for _, c := range creds {
		if c.IsActive {
			active = append(active, c)
		}
	}
	switch {
	case len(active) == 0:
		return nil, domainerrors.ErrCredentialInactive.WithDetails(platform.String() + " account was disconnected")
	case len(active) > 1 && r.strictBinding:
		return nil, domainerrors.ErrCredentialAmbiguous.WithDetails(platform.String())
	case len(active) > 1:
		r.log(ctx).Warn("Several active credentials match, using the oldest",
			slog.String("platform", platform.String()),
			slog.String("location_id", loc.ID.String()),
			slog.Int("candidates", len(active)),
			slog.String("credential_id", active[0].ID.String()),
		)
	}

	return active[0], nil
}

// usable checks the credential can be used now, refreshing Google tokens that
// expire within the refresh window.
func (r *credentialResolver) usable(ctx context.Context, cred *entity.PlatformCredential) (*entity.PlatformCredential, error) {
	if !cred.IsActive {
		return nil, domainerrors.ErrCredentialInactive
	}

	now := r.now()
	if r.refresher != nil && r.refresher.CanRefresh(cred) && cred.ExpiresWithin(now, r.refreshSkew) {
		refreshed, err := r.refresh(ctx, cred)
		if err == nil {
			return refreshed, nil
		}
		r.log(ctx).Warn("Token refresh failed",
			slog.String("platform", cred.Platform.String()),
			slog.String("credential_id", cred.ID.String()),
			slog.Any("error", err),
		)
	}

	if cred.IsExpired(now) {
		return nil, domainerrors.ErrCredentialExpired
	}

	return cred, nil
}

func (r *credentialResolver) refresh(ctx context.Context, cred *entity.PlatformCredential) (*entity.PlatformCredential, error) {
	refreshed, err := r.refresher.Refresh(ctx, cred)
	if err != nil {
		return nil, err
	}
	if err := r.credRepo.UpdateTokens(ctx, cred.ID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.ExpiresAt); err != nil {
		return nil, errors.Wrap(err, "failed to store refreshed tokens")
	}

	return refreshed, nil
}

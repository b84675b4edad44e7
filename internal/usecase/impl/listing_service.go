package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

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

const recentSyncWindow = 24 * time.Hour

// ListingServiceParams holds dependencies for the listing service
type ListingServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Registry     *service.Registry
	Resolver     usecase.CredentialResolver
	LocationRepo repository.LocationRepository
	ListingRepo  repository.ListingRepository
}

type listingService struct {
	registry     *service.Registry
	targets      *targetResolver
	locationRepo repository.LocationRepository
	listingRepo  repository.ListingRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewListingService creates the listing sync and publish service
func NewListingService(params ListingServiceParams) usecase.ListingUsecase {
	return &listingService{
		registry:     params.Registry,
		targets:      &targetResolver{resolver: params.Resolver, listingRepo: params.ListingRepo},
		locationRepo: params.LocationRepo,
		listingRepo:  params.ListingRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *listingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *listingService) source(platform entity.Platform) (service.ListingSource, error) {
	source, ok := srv.registry.ListingSource(platform)
	if !ok {
		return nil, domainerrors.ErrUnsupportedPlatform.WithDetails(platform.String() + " has no listing support")
	}

	return source, nil
}

// SyncListing pulls one platform's listing and compares it with the location
func (srv *listingService) SyncListing(ctx context.Context, tenantID, locationID uuid.UUID, platform entity.Platform) (*entity.Listing, error) {
	source, err := srv.source(platform)
	if err != nil {
		return nil, err
	}
	loc, err := findLocation(ctx, srv.locationRepo, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	return srv.syncOne(ctx, loc, source)
}

// SyncAllListings pulls every listing platform concurrently. Failed platforms map to nil.
func (srv *listingService) SyncAllListings(ctx context.Context, tenantID, locationID uuid.UUID) (usecase.ListingSyncResults, error) {
	loc, err := findLocation(ctx, srv.locationRepo, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	results := usecase.ListingSyncResults{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, source := range srv.registry.ListingSources() {
		wg.Go(func() {
			listing, err := srv.syncOne(ctx, loc, source)
			if err != nil {
				listing = nil
			}
			mu.Lock()
			results[source.Platform()] = listing
			mu.Unlock()
		})
	}
	wg.Wait()

	srv.log(ctx).Info("Listings synced",
		slog.String("location_id", loc.ID.String()),
		slog.String("summary", results.Summary().String()),
	)

	return results, nil
}

func (srv *listingService) syncOne(ctx context.Context, loc *entity.Location, source service.ListingSource) (*entity.Listing, error) {
	platform := source.Platform()
	logger := srv.log(ctx).With(
		slog.String("location_id", loc.ID.String()),
		slog.String("platform", platform.String()),
	)

	// An unresolved target means nothing was attempted, so the listing row is left alone.
	target, err := srv.targets.resolve(ctx, loc, source)
	if err != nil {
		logger.Debug("Skipping listing sync", slog.String("reason", err.Error()))
		if errors.Is(err, errNotLinked) {
			return nil, domainerrors.ErrPlatformRequestFailed.WithDetails(err.Error())
		}

		return nil, err
	}

	listing, err := source.FetchListing(ctx, target)
	if err != nil {
		logger.Warn("Listing sync failed", slog.Any("error", err))
		if markErr := srv.listingRepo.MarkError(ctx, loc.ID, platform, err.Error()); markErr != nil {
			logger.Error("Failed to record listing error", slog.Any("error", markErr))
		}

		return nil, domainerrors.ErrPlatformRequestFailed.WithDetails(err.Error())
	}

	listing.LocationID = loc.ID
	listing.Platform = platform
	listing.MarkSynced(srv.now().UTC(), entity.DetectDiscrepancies(loc, listing))
	if err := srv.listingRepo.Upsert(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to store listing")
	}
	if listing.HasDiscrepancies() {
		logger.Info("Listing differs from location", slog.Int("fields", len(listing.Discrepancies)))
	}

	return listing, nil
}

// PublishListing pushes the location's business information to one platform
func (srv *listingService) PublishListing(ctx context.Context, tenantID, locationID uuid.UUID, platform entity.Platform) error {
	source, err := srv.source(platform)
	if err != nil {
		return err
	}
	loc, err := findLocation(ctx, srv.locationRepo, tenantID, locationID)
	if err != nil {
		return err
	}

	return srv.publishOne(ctx, loc, source)
}

// PublishAllListings pushes to every listing platform concurrently. Platforms
// the location cannot reach map to nil, rejected pushes to false.
func (srv *listingService) PublishAllListings(ctx context.Context, tenantID, locationID uuid.UUID) (usecase.ListingPublishResults, error) {
	loc, err := findLocation(ctx, srv.locationRepo, tenantID, locationID)
	if err != nil {
		return nil, err
	}

	results := usecase.ListingPublishResults{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, source := range srv.registry.ListingSources() {
		wg.Go(func() {
			var outcome *bool
			err := srv.publishOne(ctx, loc, source)
			if err == nil || errors.Is(err, domainerrors.ErrPlatformRequestFailed) {
				ok := err == nil
				outcome = &ok
			}
			mu.Lock()
			results[source.Platform()] = outcome
			mu.Unlock()
		})
	}
	wg.Wait()

	srv.log(ctx).Info("Listings published",
		slog.String("location_id", loc.ID.String()),
		slog.String("summary", results.Summary().String()),
	)

	return results, nil
}

func (srv *listingService) publishOne(ctx context.Context, loc *entity.Location, source service.ListingSource) error {
	platform := source.Platform()
	logger := srv.log(ctx).With(
		slog.String("location_id", loc.ID.String()),
		slog.String("platform", platform.String()),
	)

	target, err := srv.targets.resolve(ctx, loc, source)
	if err != nil {
		logger.Debug("Skipping listing publish", slog.String("reason", err.Error()))

		return err
	}
	if err := source.PublishListing(ctx, target); err != nil {
		logger.Warn("Listing publish failed", slog.Any("error", err))

		return domainerrors.ErrPlatformRequestFailed.WithDetails(err.Error())
	}

	return errors.Wrap(
		srv.listingRepo.MarkPublished(ctx, loc.ID, platform, srv.now().UTC()),
		"failed to stamp listing publish",
	)
}

// ListListings returns a page of the tenant's listings
func (srv *listingService) ListListings(ctx context.Context, tenantID uuid.UUID, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	listings, total, err := srv.listingRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	return listings, total, nil
}

// GetListingStats aggregates listings of the tenant or of one of its locations
func (srv *listingService) GetListingStats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ListingStats, error) {
	if locationID != nil {
		if _, err := findLocation(ctx, srv.locationRepo, tenantID, *locationID); err != nil {
			return nil, err
		}
	}

	stats, err := srv.listingRepo.Stats(ctx, tenantID, locationID, srv.now().Add(-recentSyncWindow))
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listings")
	}

	return stats, nil
}

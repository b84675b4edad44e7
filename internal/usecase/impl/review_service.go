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

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReviewServiceParams holds dependencies for the review service
type ReviewServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Registry     *service.Registry
	Resolver     usecase.CredentialResolver
	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	ReviewRepo   repository.ReviewRepository
	ListingRepo  repository.ListingRepository
}

type reviewService struct {
	registry     *service.Registry
	targets      *targetResolver
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewReviewService creates the review sync and query service
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		registry:     params.Registry,
		targets:      &targetResolver{resolver: params.Resolver, listingRepo: params.ListingRepo},
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SyncReviewsForLocation resolves every platform first, then fetches the
// reachable ones concurrently.
func (srv *reviewService) SyncReviewsForLocation(ctx context.Context, tenantID, locationID uuid.UUID) (usecase.SyncCounts, error) {
	loc, err := findLocation(ctx, srv.locationRepo, tenantID, locationID)
	if err != nil {
		return nil, err
	}
	logger := srv.log(ctx).With(slog.String("location_id", loc.ID.String()))

	counts := usecase.SyncCounts{}
	targets := make(map[entity.Platform]service.Target)
	sources := make(map[entity.Platform]service.ReviewSource)
	var fallbacks []service.ReviewSource

	for _, source := range srv.registry.ReviewSources() {
		counts[source.Platform()] = 0
		if _, ok := source.(service.Fallback); ok {
			fallbacks = append(fallbacks, source)

			continue
		}
		srv.planSource(ctx, logger, loc, source, targets, sources)
	}
	for _, source := range fallbacks {
		primary := source.(service.Fallback).FallbackFor()
		if _, resolved := targets[primary]; resolved {
			continue
		}
		srv.planSource(ctx, logger, loc, source, targets, sources)
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for platform, target := range targets {
		source := sources[platform]
		wg.Go(func() {
			stored := srv.syncSource(ctx, logger, source, target)
			mu.Lock()
			counts[platform] = stored
			mu.Unlock()
		})
	}
	wg.Wait()

	if err := srv.locationRepo.MarkReviewsSynced(ctx, loc.ID, srv.now().UTC()); err != nil {
		logger.Error("Failed to stamp reviews sync time", slog.Any("error", err))
	}

	logger.Info("Reviews synced", slog.Int("total", counts.Total()), slog.Any("counts", counts))

	return counts, nil
}

func (srv *reviewService) planSource(
	ctx context.Context,
	logger *slog.Logger,
	loc *entity.Location,
	source service.ReviewSource,
	targets map[entity.Platform]service.Target,
	sources map[entity.Platform]service.ReviewSource,
) {
	target, err := srv.targets.resolve(ctx, loc, source)
	if err != nil {
		logger.Debug("Skipping review platform",
			slog.String("platform", source.Platform().String()),
			slog.String("reason", err.Error()),
		)

		return
	}
	targets[source.Platform()] = target
	sources[source.Platform()] = source
}

// syncSource fetches one platform and stores what it returned. A fetch failure counts as zero.
func (srv *reviewService) syncSource(ctx context.Context, logger *slog.Logger, source service.ReviewSource, target service.Target) int {
	logger = logger.With(slog.String("platform", source.Platform().String()))

	items, err := source.FetchReviews(ctx, target)
	if err != nil {
		logger.Warn("Review fetch failed", slog.Any("error", err))

		return 0
	}

	stored := 0
	for _, item := range items {
		if err := srv.storeReview(ctx, item); err != nil {
			logger.Error("Failed to store review",
				slog.String("external_id", item.Review.ExternalID),
				slog.Any("error", err),
			)

			continue
		}
		stored++
	}

	return stored
}

func (srv *reviewService) storeReview(ctx context.Context, item service.NormalizedReview) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewReviewRepository().Upsert(ctx, item.Review); err != nil {
			return errors.Wrap(err, "failed to upsert review")
		}
		if item.Reply == nil {
			return nil
		}

		responseRepo := repoFactory.NewReviewResponseRepository()
		existing, err := responseRepo.FindByReviewID(ctx, item.Review.ID)
		if err != nil && !errors.Is(err, repository.ErrResponseNotFound) {
			return errors.Wrap(err, "failed to find review response")
		}
		// Our own published reply comes back from the platform on the next sync.
		if existing != nil && !existing.IsExternal() && existing.Status == entity.ResponseStatusPublished {
			return nil
		}

		reply := entity.NewExternalResponse(item.Review.ID, item.Reply.Content, item.Reply.PublishedAt)

		return errors.Wrap(responseRepo.UpsertForReview(ctx, reply), "failed to upsert platform reply")
	})
}

// GetReview retrieves a review with its response
func (srv *reviewService) GetReview(ctx context.Context, tenantID, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, tenantID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}

	return review, nil
}

// ListReviews returns a page of the tenant's reviews
func (srv *reviewService) ListReviews(ctx context.Context, tenantID uuid.UUID, filter entity.ReviewFilter) ([]*entity.Review, int64, error) {
	filter.Limit, filter.Offset = normalizePage(filter.Limit, filter.Offset)

	reviews, total, err := srv.reviewRepo.List(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	return reviews, total, nil
}

// GetReviewStats aggregates reviews of the tenant or of one of its locations
func (srv *reviewService) GetReviewStats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ReviewStats, error) {
	if locationID != nil {
		if _, err := findLocation(ctx, srv.locationRepo, tenantID, *locationID); err != nil {
			return nil, err
		}
	}

	stats, err := srv.reviewRepo.Stats(ctx, tenantID, locationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews")
	}

	return stats, nil
}

func findLocation(ctx context.Context, repo repository.LocationRepository, tenantID, locationID uuid.UUID) (*entity.Location, error) {
	loc, err := repo.FindByID(ctx, tenantID, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, domainerrors.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location")
	}

	return loc, nil
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	return limit, max(offset, 0)
}

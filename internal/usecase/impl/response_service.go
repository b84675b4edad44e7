package impl

import (
	"context"
	"log/slog"
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

// ResponseServiceParams holds dependencies for the response service
type ResponseServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Registry     *service.Registry
	Resolver     usecase.CredentialResolver
	LocationRepo repository.LocationRepository
	ReviewRepo   repository.ReviewRepository
	ResponseRepo repository.ReviewResponseRepository
	ListingRepo  repository.ListingRepository
}

type responseService struct {
	registry     *service.Registry
	targets      *targetResolver
	locationRepo repository.LocationRepository
	reviewRepo   repository.ReviewRepository
	responseRepo repository.ReviewResponseRepository
	logger       *slog.Logger
	now          func() time.Time
}

// NewResponseService creates the review response service
func NewResponseService(params ResponseServiceParams) usecase.ResponseUsecase {
	return &responseService{
		registry:     params.Registry,
		targets:      &targetResolver{resolver: params.Resolver, listingRepo: params.ListingRepo},
		locationRepo: params.LocationRepo,
		reviewRepo:   params.ReviewRepo,
		responseRepo: params.ResponseRepo,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *responseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDraft attaches a draft response to a review that has none
func (srv *responseService) CreateDraft(ctx context.Context, tenantID, userID, reviewID uuid.UUID, input *usecase.DraftResponseInput) (*entity.ReviewResponse, error) {
	review, err := srv.reviewRepo.FindByID(ctx, tenantID, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, domainerrors.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review")
	}
	if review.HasResponse() {
		return nil, domainerrors.ErrResponseAlreadyExists
	}

	resp := entity.NewDraftResponse(review.ID, userID, input.Content, input.AIGenerated)
	if err := srv.responseRepo.Create(ctx, resp); err != nil {
		if errors.Is(err, repository.ErrDuplicateResponse) {
			return nil, domainerrors.ErrResponseAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create response")
	}

	return resp, nil
}

// EditResponse replaces the content of an unpublished response
func (srv *responseService) EditResponse(ctx context.Context, tenantID, responseID uuid.UUID, content string) (*entity.ReviewResponse, error) {
	return srv.transition(ctx, tenantID, responseID, func(resp *entity.ReviewResponse) error {
		return resp.Edit(content)
	})
}

// ApproveResponse approves a draft
func (srv *responseService) ApproveResponse(ctx context.Context, tenantID, approverID, responseID uuid.UUID) (*entity.ReviewResponse, error) {
	return srv.transition(ctx, tenantID, responseID, func(resp *entity.ReviewResponse) error {
		return resp.Approve(approverID, srv.now().UTC())
	})
}

// RejectResponse rejects a draft or an approved response
func (srv *responseService) RejectResponse(ctx context.Context, tenantID, responseID uuid.UUID, reason string) (*entity.ReviewResponse, error) {
	return srv.transition(ctx, tenantID, responseID, func(resp *entity.ReviewResponse) error {
		return resp.Reject(reason)
	})
}

// ResubmitResponse returns a rejected response to draft
func (srv *responseService) ResubmitResponse(ctx context.Context, tenantID, responseID uuid.UUID, content string) (*entity.ReviewResponse, error) {
	return srv.transition(ctx, tenantID, responseID, func(resp *entity.ReviewResponse) error {
		return resp.Resubmit(content)
	})
}

func (srv *responseService) transition(ctx context.Context, tenantID, responseID uuid.UUID, apply func(*entity.ReviewResponse) error) (*entity.ReviewResponse, error) {
	resp, _, err := srv.load(ctx, tenantID, responseID)
	if err != nil {
		return nil, err
	}
	if err := apply(resp); err != nil {
		return nil, err
	}
	if err := srv.responseRepo.Update(ctx, resp); err != nil {
		return nil, errors.Wrap(err, "failed to update response")
	}

	return resp, nil
}

// load returns the response and its review. Responses of other tenants are reported as missing.
func (srv *responseService) load(ctx context.Context, tenantID, responseID uuid.UUID) (*entity.ReviewResponse, *entity.Review, error) {
	resp, err := srv.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		if errors.Is(err, repository.ErrResponseNotFound) {
			return nil, nil, domainerrors.ErrResponseNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find response")
	}

	review, err := srv.reviewRepo.FindByID(ctx, tenantID, resp.ReviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, nil, domainerrors.ErrResponseNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find review")
	}

	return resp, review, nil
}

// PublishResponse posts an approved response to the review's platform
func (srv *responseService) PublishResponse(ctx context.Context, tenantID, responseID uuid.UUID) (*entity.ReviewResponse, error) {
	resp, review, err := srv.load(ctx, tenantID, responseID)
	if err != nil {
		return nil, err
	}
	if !resp.CanPublish() {
		return nil, domainerrors.ErrInvalidResponseTransition.WithDetails("only approved responses can be published")
	}

	logger := srv.log(ctx).With(
		slog.String("response_id", resp.ID.String()),
		slog.String("platform", review.Platform.String()),
	)

	synced, err := srv.publishRemote(ctx, tenantID, review, resp.Content)
	if err != nil {
		logger.Warn("Response publish failed", slog.Any("error", err))

		return nil, err
	}

	resp.MarkPublished(srv.now().UTC(), synced)
	if err := srv.responseRepo.Update(ctx, resp); err != nil {
		return nil, errors.Wrap(err, "failed to store published response")
	}
	logger.Info("Response published", slog.Bool("platform_synced", synced))

	return resp, nil
}

// publishRemote reports false when the platform has no reply API.
func (srv *responseService) publishRemote(ctx context.Context, tenantID uuid.UUID, review *entity.Review, content string) (bool, error) {
	publisher, ok := srv.registry.ReplyPublisher(review.Platform)
	if !ok {
		return false, nil
	}
	adapter, _ := srv.registry.Adapter(review.Platform)
	platform := review.Platform.String()

	loc, err := findLocation(ctx, srv.locationRepo, tenantID, review.LocationID)
	if err != nil {
		return false, err
	}

	target, err := srv.targets.resolveReply(ctx, loc, adapter)
	switch {
	case err == nil:
	case errors.Is(err, domainerrors.ErrCredentialExpired):
		return false, domainerrors.NewPublishError(platform, domainerrors.PublishReasonExpiredToken, err)
	case errors.Is(err, errNotLinked),
		errors.Is(err, domainerrors.ErrCredentialNotFound),
		errors.Is(err, domainerrors.ErrCredentialInactive),
		errors.Is(err, domainerrors.ErrCredentialAmbiguous):
		return false, domainerrors.NewPublishError(platform, domainerrors.PublishReasonNoCredential, err)
	default:
		return false, err
	}

	if err := publisher.PublishReply(ctx, target, review, content); err != nil {
		if errors.Is(err, service.ErrBrokenLink) {
			return false, domainerrors.NewPublishError(platform, domainerrors.PublishReasonBrokenLink, err)
		}

		return false, domainerrors.NewPublishError(platform, domainerrors.PublishReasonRemoteRejected, err)
	}

	return true, nil
}

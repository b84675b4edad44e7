package usecase

import (
	"context"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncCounts maps each review platform to the number of reviews stored by a sync.
// Skipped and failed platforms report 0.
type SyncCounts map[entity.Platform]int

// Total sums the counts of every platform.
func (c SyncCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}

	return total
}

// ReviewUsecase defines the review sync and query use cases
type ReviewUsecase interface {
	// SyncReviewsForLocation pulls reviews from every platform the location can
	// reach. Platform failures never fail the call.
	SyncReviewsForLocation(ctx context.Context, tenantID, locationID uuid.UUID) (SyncCounts, error)

	GetReview(ctx context.Context, tenantID, reviewID uuid.UUID) (*entity.Review, error)
	ListReviews(ctx context.Context, tenantID uuid.UUID, filter entity.ReviewFilter) ([]*entity.Review, int64, error)

	// GetReviewStats aggregates reviews of a tenant, or of one location when locationID is set.
	GetReviewStats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ReviewStats, error)
}

// DraftResponseInput is the content of a new response
type DraftResponseInput struct {
	Content     string `json:"content" validate:"required,max=4000"`
	AIGenerated bool   `json:"ai_generated"`
}

// ResponseUsecase drives the ReviewResponse state machine
type ResponseUsecase interface {
	CreateDraft(ctx context.Context, tenantID, userID, reviewID uuid.UUID, input *DraftResponseInput) (*entity.ReviewResponse, error)
	EditResponse(ctx context.Context, tenantID, responseID uuid.UUID, content string) (*entity.ReviewResponse, error)
	ApproveResponse(ctx context.Context, tenantID, approverID, responseID uuid.UUID) (*entity.ReviewResponse, error)
	RejectResponse(ctx context.Context, tenantID, responseID uuid.UUID, reason string) (*entity.ReviewResponse, error)
	ResubmitResponse(ctx context.Context, tenantID, responseID uuid.UUID, content string) (*entity.ReviewResponse, error)

	// PublishResponse posts an approved response to the review's platform. Failures
	// are returned as *domainerrors.PublishError and leave the response untouched.
	PublishResponse(ctx context.Context, tenantID, responseID uuid.UUID) (*entity.ReviewResponse, error)
}

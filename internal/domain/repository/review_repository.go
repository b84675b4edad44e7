package repository

import (
	"context"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrResponseNotFound is returned when a review response is not found.
	ErrResponseNotFound = errors.New("review response not found")
	// ErrDuplicateResponse is returned when a review already has a response.
	ErrDuplicateResponse = errors.New("review response already exists")
)

// ReviewRepository defines the interface for review-related database operations.
type ReviewRepository interface {
	// Upsert inserts the review or updates the existing row with the same
	// (location, platform, external id), then fills in review.ID.
	Upsert(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review with its response, scoped to tenantID.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Review, error)

	// List returns the tenant's reviews matching filter, newest first, and the total match count.
	List(ctx context.Context, tenantID uuid.UUID, filter entity.ReviewFilter) ([]*entity.Review, int64, error)

	// Stats aggregates the tenant's reviews, optionally for a single location.
	Stats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ReviewStats, error)
}

// ReviewResponseRepository defines the interface for review response persistence.
type ReviewResponseRepository interface {
	// Create persists a new response.
	Create(ctx context.Context, resp *entity.ReviewResponse) error

	// Update saves every mutable field of a response.
	Update(ctx context.Context, resp *entity.ReviewResponse) error

	// UpsertForReview inserts or replaces the response of resp.ReviewID.
	UpsertForReview(ctx context.Context, resp *entity.ReviewResponse) error

	// FindByID retrieves a response.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewResponse, error)

	// FindByReviewID retrieves the response attached to a review.
	FindByReviewID(ctx context.Context, reviewID uuid.UUID) (*entity.ReviewResponse, error)
}

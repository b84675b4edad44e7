package repository

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrListingNotFound is returned when a location has no listing for a platform.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines the interface for listing-related database operations.
type ListingRepository interface {
	// Upsert inserts or updates the listing identified by (location, platform) and fills in its ID.
	Upsert(ctx context.Context, listing *entity.Listing) error

	// FindByLocationAndPlatform retrieves the listing of a location on one platform.
	FindByLocationAndPlatform(ctx context.Context, locationID uuid.UUID, platform entity.Platform) (*entity.Listing, error)

	// MarkError records a failed sync. A row is created when none exists yet.
	MarkError(ctx context.Context, locationID uuid.UUID, platform entity.Platform, message string) error

	// MarkPublished stamps a successful publish.
	MarkPublished(ctx context.Context, locationID uuid.UUID, platform entity.Platform, at time.Time) error

	// List returns the tenant's listings matching filter and the total match count.
	List(ctx context.Context, tenantID uuid.UUID, filter entity.ListingFilter) ([]*entity.Listing, int64, error)

	// Stats aggregates the tenant's listings, optionally for a single location.
	// Listings synced after syncedSince count as recently synced.
	Stats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID, syncedSince time.Time) (*entity.ListingStats, error)
}

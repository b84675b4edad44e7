package usecase

import (
	"context"
	"fmt"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ListingSyncResults holds the pulled listing per platform; nil marks a failure.
type ListingSyncResults map[entity.Platform]*entity.Listing

// ListingPublishResults holds the publish outcome per platform; nil marks a
// platform that could not be attempted.
type ListingPublishResults map[entity.Platform]*bool

// Summary counts successful platforms of a fan-out.
type Summary struct {
	Succeeded int `json:"succeeded"`
	Total     int `json:"total"`
}

func (s Summary) String() string {
	return fmt.Sprintf("%d of %d succeeded", s.Succeeded, s.Total)
}

// Summary reports how many platforms returned a listing.
func (r ListingSyncResults) Summary() Summary {
	s := Summary{Total: len(r)}
	for _, listing := range r {
		if listing != nil {
			s.Succeeded++
		}
	}

	return s
}

// Summary reports how many platforms accepted the publish.
func (r ListingPublishResults) Summary() Summary {
	s := Summary{Total: len(r)}
	for _, ok := range r {
		if ok != nil && *ok {
			s.Succeeded++
		}
	}

	return s
}

// ListingUsecase defines the listing sync, publish and query use cases
type ListingUsecase interface {
	SyncListing(ctx context.Context, tenantID, locationID uuid.UUID, platform entity.Platform) (*entity.Listing, error)
	SyncAllListings(ctx context.Context, tenantID, locationID uuid.UUID) (ListingSyncResults, error)
	PublishListing(ctx context.Context, tenantID, locationID uuid.UUID, platform entity.Platform) error
	PublishAllListings(ctx context.Context, tenantID, locationID uuid.UUID) (ListingPublishResults, error)

	ListListings(ctx context.Context, tenantID uuid.UUID, filter entity.ListingFilter) ([]*entity.Listing, int64, error)
	GetListingStats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ListingStats, error)
}

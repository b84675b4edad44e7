package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	mockRepo "reviewhub/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSource is an in-memory review and listing platform.
type fakeSource struct {
	platform entity.Platform
	binding  service.Binding
	ref      func(*entity.Location) string

	reviews []service.NormalizedReview
	listing *entity.Listing
	err     error

	fetches   atomic.Int32
	publishes atomic.Int32

	mu      sync.Mutex
	targets []service.Target
}

func (f *fakeSource) Platform() entity.Platform { return f.platform }

func (f *fakeSource) Binding() service.Binding { return f.binding }

func (f *fakeSource) AccountRef(loc *entity.Location) string {
	if f.ref == nil {
		return ""
	}

	return f.ref(loc)
}

func (f *fakeSource) record(target service.Target) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.targets = append(f.targets, target)
}

func (f *fakeSource) FetchReviews(_ context.Context, target service.Target) ([]service.NormalizedReview, error) {
	f.fetches.Add(1)
	f.record(target)
	if f.err != nil {
		return nil, f.err
	}

	return f.reviews, nil
}

func (f *fakeSource) FetchListing(_ context.Context, target service.Target) (*entity.Listing, error) {
	f.fetches.Add(1)
	f.record(target)
	if f.err != nil {
		return nil, f.err
	}
	listing := *f.listing

	return &listing, nil
}

func (f *fakeSource) PublishListing(_ context.Context, target service.Target) error {
	f.publishes.Add(1)
	f.record(target)

	return f.err
}

// fakeFallback substitutes for primary when primary cannot be resolved.
type fakeFallback struct {
	*fakeSource
	primary entity.Platform
}

func (f *fakeFallback) FallbackFor() entity.Platform { return f.primary }

// reviewOnly hides the listing methods of a fake.
type reviewOnly struct {
	src *fakeSource
}

func (r reviewOnly) Platform() entity.Platform                { return r.src.Platform() }
func (r reviewOnly) Binding() service.Binding                 { return r.src.Binding() }
func (r reviewOnly) AccountRef(loc *entity.Location) string { return r.src.AccountRef(loc) }
func (r reviewOnly) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	return r.src.FetchReviews(ctx, target)
}

func pageRef(loc *entity.Location) string    { return loc.FacebookPageID }
func channelRef(loc *entity.Location) string { return loc.YouTubeChannelID }
func placeRef(loc *entity.Location) string   { return loc.GooglePlaceID }

// expectTransactions makes txManager run every function against factory.
func expectTransactions(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()
}

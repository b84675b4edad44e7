// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"

	"github.com/pkg/errors"
)

// Errors adapters wrap so callers can classify remote failures.
var (
	// ErrRemoteRejected is returned when the platform answered with an error.
	ErrRemoteRejected = errors.New("platform rejected the request")
	// ErrBrokenLink is returned when the remote object a call refers to is missing.
	ErrBrokenLink = errors.New("remote reference is missing")
	// ErrPlatformNotConfigured is returned when the adapter lacks configuration such as an API key.
	ErrPlatformNotConfigured = errors.New("platform is not configured")
)

// Binding describes how a platform account is attached to a location.
type Binding int

const (
	// BindByLocation means the location stores the platform account id; unlinked
	// locations are skipped.
	BindByLocation Binding = iota
	// BindByCredential means the tenant's connected account serves its locations
	// without a per-location link.
	BindByCredential
	// BindByKey means the location stores the platform id and calls are authorized
	// by a configured API key instead of a stored credential.
	BindByKey
)

// Target is everything an adapter needs to address one platform account.
type Target struct {
	Location *entity.Location
	// Credential is nil for BindByKey platforms.
	Credential *entity.PlatformCredential
	// AccountRef is the platform-side id: page id, package name, channel id,
	// place id or My Business location name.
	AccountRef string
}

// Token returns the access token of the target credential, or "" when there is none.
func (t Target) Token() string {
	if t.Credential == nil {
		return ""
	}

	return t.Credential.EffectiveToken()
}

// PlatformAdapter is implemented by every platform integration.
type PlatformAdapter interface {
	// Platform returns the platform served by the adapter.
	Platform() entity.Platform

	// Binding reports how accounts are attached to locations.
	Binding() Binding

	// AccountRef returns the platform id stored on the location, or "" when unlinked.
	AccountRef(loc *entity.Location) string
}

// ExternalReply is a reply the business already posted on the platform itself.
type ExternalReply struct {
	Content     string
	PublishedAt time.Time
}

// NormalizedReview is a platform item mapped onto the local review schema.
type NormalizedReview struct {
	Review *entity.Review
	Reply  *ExternalReply
}

// ReviewSource fetches reviews from a platform.
type ReviewSource interface {
	PlatformAdapter

	// FetchReviews pulls the account's reviews and maps them onto the local schema.
	// Items that cannot be mapped are skipped.
	FetchReviews(ctx context.Context, target Target) ([]NormalizedReview, error)
}

// ReplyPublisher posts review replies to a platform.
type ReplyPublisher interface {
	// PublishReply posts content as the business's reply to review. It returns an
	// error wrapping ErrBrokenLink when the review carries no reply target.
	PublishReply(ctx context.Context, target Target, review *entity.Review, content string) error
}

// ListingSource pulls and pushes business information.
type ListingSource interface {
	PlatformAdapter

	// FetchListing reads the platform's copy of the business information.
	FetchListing(ctx context.Context, target Target) (*entity.Listing, error)

	// PublishListing pushes the location's business information to the platform.
	PublishListing(ctx context.Context, target Target) error
}

// Fallback is implemented by review sources that only run when the platform
// they substitute for could not be used.
type Fallback interface {
	FallbackFor() entity.Platform
}

// PageAccount is a Facebook page the user manages.
type PageAccount struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Category            string `json:"category,omitempty"`
	AccessToken         string `json:"-"`
	InstagramBusinessID string `json:"instagram_business_id,omitempty"`
}

// PageDirectory lists the pages reachable with a user token.
type PageDirectory interface {
	ListPages(ctx context.Context, userAccessToken string) ([]PageAccount, error)
}

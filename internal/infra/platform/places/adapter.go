// Package places reads the public reviews of a Google place. It stands in for
// My Business when no connected Business Profile account serves the location.
package places

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

type placeReview struct {
	AuthorName              string `json:"author_name"`
	AuthorURL               string `json:"author_url"`
	ProfilePhotoURL         string `json:"profile_photo_url"`
	Rating                  *int   `json:"rating"`
	Text                    string `json:"text"`
	Time                    *int64 `json:"time"`
	Language                string `json:"language"`
	RelativeTimeDescription string `json:"relative_time_description"`
}

type detailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Result       struct {
		Reviews []placeReview `json:"reviews"`
	} `json:"result"`
}

// Adapter implements the Places review capability. Calls are keyed by the
// configured API key; no stored credential is involved.
type Adapter struct {
	http   *resty.Client
	apiKey string
	logger *slog.Logger
	now    func() time.Time
}

// New creates the Places adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	google := cfg.Platforms.Google

	return &Adapter{
		http: resty.New().
			SetBaseURL(strings.TrimRight(google.PlacesBaseURL, "/")).
			SetTimeout(cfg.Platforms.RequestTimeout),
		apiKey: google.PlacesAPIKey,
		logger: logger.With("platform", entity.PlatformGoogle.String()),
		now:    time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformGoogle }

func (a *Adapter) Binding() service.Binding { return service.BindByKey }

func (a *Adapter) AccountRef(loc *entity.Location) string { return loc.GooglePlaceID }

// FallbackFor names the platform this source substitutes for.
func (a *Adapter) FallbackFor() entity.Platform { return entity.PlatformGoogleMyBusiness }

// FetchReviews reads the reviews embedded in the place details.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	if a.apiKey == "" {
		return nil, errors.Wrap(service.ErrPlatformNotConfigured, "places api key is not set")
	}

	var details detailsResponse
	resp, err := a.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"place_id": target.AccountRef,
			"fields":   "reviews",
			"key":      a.apiKey,
		}).
		SetResult(&details).
		Get("/details/json")
	if err != nil {
		return nil, errors.Wrapf(errors.Join(service.ErrRemoteRejected, err), "failed to fetch place %s", target.AccountRef)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(service.ErrRemoteRejected, "places status %d for %s", resp.StatusCode(), target.AccountRef)
	}
	// The API reports failures in the body with a 200 status.
	switch details.Status {
	case "OK", "ZERO_RESULTS":
	case "NOT_FOUND", "INVALID_REQUEST":
		return nil, errors.Wrapf(service.ErrBrokenLink, "place %s: %s %s", target.AccountRef, details.Status, details.ErrorMessage)
	default:
		return nil, errors.Wrapf(service.ErrRemoteRejected, "place %s: %s %s", target.AccountRef, details.Status, details.ErrorMessage)
	}

	now := a.now().UTC()
	reviews := make([]service.NormalizedReview, 0, len(details.Result.Reviews))
	for _, item := range details.Result.Reviews {
		if review, ok := normalizeReview(item, target.Location.ID, now); ok {
			reviews = append(reviews, service.NormalizedReview{Review: review})
		}
	}

	return reviews, nil
}

// normalizeReview stamps reviews without a time with now.
func normalizeReview(item placeReview, locationID uuid.UUID, now time.Time) (*entity.Review, bool) {
	if item.Rating == nil {
		return nil, false
	}
	stamp, publishedAt := "", now
	if item.Time != nil {
		stamp = strconv.FormatInt(*item.Time, 10)
		publishedAt = time.Unix(*item.Time, 0).UTC()
	}
	sum := md5.Sum([]byte(item.AuthorName + stamp))

	return &entity.Review{
		LocationID:  locationID,
		Platform:    entity.PlatformGoogle,
		ExternalID:  hex.EncodeToString(sum[:]),
		AuthorName:  item.AuthorName,
		AuthorImage: item.ProfilePhotoURL,
		Rating:      *item.Rating,
		Content:     item.Text,
		PublishedAt: publishedAt,
		Metadata: entity.ReviewMetadata{
			Raw: map[string]any{
				"author_url":                item.AuthorURL,
				"language":                  item.Language,
				"relative_time_description": item.RelativeTimeDescription,
			},
		},
	}, true
}


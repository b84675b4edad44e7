// Package googleplay imports Google Play store reviews of an app and replies to
// them through the Android Publisher API.
package googleplay

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"reviewhub/config"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/infra/platform/googleclient"

	"github.com/google/uuid"
	"google.golang.org/api/androidpublisher/v3"
)

const (
	pageSize = 100
	// The API only serves reviews from the last week, so a handful of pages is plenty.
	maxPages = 10
)

// Adapter implements the Google Play review and reply capabilities.
type Adapter struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the Google Play adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		httpClient: &http.Client{Timeout: cfg.Platforms.RequestTimeout},
		endpoint:   cfg.Platforms.Google.PlayEndpoint,
		logger:     logger.With("platform", entity.PlatformGooglePlay.String()),
		now:        time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformGooglePlay }

func (a *Adapter) Binding() service.Binding { return service.BindByLocation }

func (a *Adapter) AccountRef(loc *entity.Location) string { return loc.GooglePlayPackageName }

// FetchReviews lists the app's reviews. Developer replies already on the store
// come back as external replies.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	svc, err := a.publisher(ctx, target)
	if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	var reviews []service.NormalizedReview
	pageToken := ""
	for range maxPages {
		call := svc.Reviews.List(target.AccountRef).MaxResults(pageSize).Context(ctx)
		if pageToken != "" {
			call = call.Token(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, errors.Wrapf(googleclient.Classify(err), "failed to list reviews of %s", target.AccountRef)
		}

		for _, item := range resp.Reviews {
			if normalized, ok := normalizeReview(item, target.Location.ID, now); ok {
				reviews = append(reviews, normalized)
			}
		}

		if resp.TokenPagination == nil || resp.TokenPagination.NextPageToken == "" {
			break
		}
		pageToken = resp.TokenPagination.NextPageToken
	}

	deliverycontext.GetLoggerOrDefault(ctx, a.logger).DebugContext(ctx, "fetched play reviews",
		slog.String("package_name", target.AccountRef),
		slog.Int("count", len(reviews)))

	return reviews, nil
}

// PublishReply posts or replaces the developer reply of the review.
func (a *Adapter) PublishReply(ctx context.Context, target service.Target, review *entity.Review, content string) error {
	reviewID := review.Metadata.ReplyTargetID
	if reviewID == "" {
		reviewID = review.ExternalID
	}
	if reviewID == "" || target.AccountRef == "" {
		return errors.Wrapf(service.ErrBrokenLink, "review %s has no play review id", review.ID)
	}

	svc, err := a.publisher(ctx, target)
	if err != nil {
		return err
	}
	if _, err := svc.Reviews.Reply(target.AccountRef, reviewID, &androidpublisher.ReviewsReplyRequest{
		ReplyText: content,
	}).Context(ctx).Do(); err != nil {
		return errors.Wrapf(googleclient.Classify(err), "failed to reply to play review %s", reviewID)
	}

	return nil
}

func (a *Adapter) publisher(ctx context.Context, target service.Target) (*androidpublisher.Service, error) {
	ts, err := googleclient.TokenSource(ctx, a.httpClient, target.Token(), androidpublisher.AndroidpublisherScope)
	if err != nil {
		return nil, errors.Join(service.ErrRemoteRejected, err)
	}

	svc, err := androidpublisher.NewService(ctx, googleclient.ClientOptions(ctx, a.httpClient, ts, a.endpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create android publisher client")
	}

	return svc, nil
}

func normalizeReview(item *androidpublisher.Review, locationID uuid.UUID, now time.Time) (service.NormalizedReview, bool) {
	var user *androidpublisher.UserComment
	var developer *androidpublisher.DeveloperComment
	for _, c := range item.Comments {
		if c == nil {
			continue
		}
		if c.UserComment != nil && user == nil {
			user = c.UserComment
		}
		if c.DeveloperComment != nil {
			developer = c.DeveloperComment
		}
	}
	if user == nil || item.ReviewId == "" {
		return service.NormalizedReview{}, false
	}

	raw := map[string]any{
		"android_os_version": user.AndroidOsVersion,
		"app_version_code":   user.AppVersionCode,
		"app_version_name":   user.AppVersionName,
		"device":             user.Device,
		"reviewer_language":  user.ReviewerLanguage,
	}
	if dm := user.DeviceMetadata; dm != nil {
		raw["device_metadata"] = map[string]any{
			"manufacturer": dm.Manufacturer,
			"product_name": dm.ProductName,
			"device_class": dm.DeviceClass,
			"ram_mb":       dm.RamMb,
		}
	}

	normalized := service.NormalizedReview{
		Review: &entity.Review{
			LocationID:  locationID,
			Platform:    entity.PlatformGooglePlay,
			ExternalID:  item.ReviewId,
			AuthorName:  item.AuthorName,
			Rating:      int(user.StarRating),
			Content:     strings.TrimSpace(user.Text),
			PublishedAt: timestamp(user.LastModified, now),
			Metadata: entity.ReviewMetadata{
				ReplyTargetID: item.ReviewId,
				Raw:           raw,
			},
		},
	}
	if developer != nil && developer.Text != "" {
		normalized.Reply = &service.ExternalReply{
			Content:     developer.Text,
			PublishedAt: timestamp(developer.LastModified, now),
		}
	}

	return normalized, true
}

func timestamp(ts *androidpublisher.Timestamp, fallback time.Time) time.Time {
	if ts == nil {
		return fallback
	}

	return time.Unix(ts.Seconds, ts.Nanos).UTC()
}

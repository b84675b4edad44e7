// Package mybusiness integrates Google Business Profile locations: reviews and
// replies through the My Business v4 API, listings through Business Information v1.
package mybusiness

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

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"google.golang.org/api/mybusinessbusinessinformation/v1"
)

const (
	reviewsPageSize = "50"
	maxReviewPages  = 10
	readMask        = "name,title,phoneNumbers,storefrontAddress,websiteUri,categories,profile,latlng,regularHours,openInfo,metadata"
)

var starRatings = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type review struct {
	ReviewID string `json:"reviewId"`
	Name     string `json:"name"`
	Reviewer struct {
		DisplayName     string `json:"displayName"`
		ProfilePhotoURL string `json:"profilePhotoUrl"`
		IsAnonymous     bool   `json:"isAnonymous"`
	} `json:"reviewer"`
	StarRating  string `json:"starRating"`
	Comment     string `json:"comment"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
	ReviewReply *struct {
		Comment    string `json:"comment"`
		UpdateTime string `json:"updateTime"`
	} `json:"reviewReply"`
}

// Adapter implements the My Business review, reply and listing capabilities.
// The tenant's connected account serves its locations, so no per-location link is needed.
type Adapter struct {
	http                 *resty.Client
	httpClient           *http.Client
	businessInfoEndpoint string
	logger               *slog.Logger
	now                  func() time.Time
}

// New creates the My Business adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	google := cfg.Platforms.Google

	return &Adapter{
		http: resty.New().
			SetBaseURL(strings.TrimRight(google.MyBusinessBaseURL, "/")).
			SetTimeout(cfg.Platforms.RequestTimeout).
			SetHeader("Accept", "application/json"),
		httpClient:           &http.Client{Timeout: cfg.Platforms.RequestTimeout},
		businessInfoEndpoint: google.BusinessInfoEndpoint,
		logger:               logger.With("platform", entity.PlatformGoogleMyBusiness.String()),
		now:                  time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformGoogleMyBusiness }

func (a *Adapter) Binding() service.Binding { return service.BindByCredential }

// AccountRef is always empty: locations carry no My Business link.
func (a *Adapter) AccountRef(*entity.Location) string { return "" }

// FetchReviews lists the reviews of the target location.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	name, err := locationName(target)
	if err != nil {
		return nil, err
	}

	now := a.now().UTC()
	var reviews []service.NormalizedReview
	skipped := 0
	pageToken := ""
	for range maxReviewPages {
		var page struct {
			Reviews       []review `json:"reviews"`
			NextPageToken string   `json:"nextPageToken"`
		}
		req := a.http.R().
			SetContext(ctx).
			SetAuthToken(target.Token()).
			SetQueryParam("pageSize", reviewsPageSize).
			SetResult(&page)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}
		if err := a.send(req, http.MethodGet, "/v4/"+name+"/reviews"); err != nil {
			return nil, errors.Wrapf(err, "failed to list reviews of %s", name)
		}

		for _, item := range page.Reviews {
			normalized, ok := normalizeReview(item, target.Location.ID, now)
			if !ok {
				skipped++

				continue
			}
			reviews = append(reviews, normalized)
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	if skipped > 0 {
		deliverycontext.GetLoggerOrDefault(ctx, a.logger).WarnContext(ctx, "skipped reviews without a known star rating",
			slog.String("location_name", name),
			slog.Int("skipped", skipped))
	}

	return reviews, nil
}

// PublishReply creates or replaces the owner reply of the review.
func (a *Adapter) PublishReply(ctx context.Context, target service.Target, rev *entity.Review, content string) error {
	reviewName := rev.Metadata.ReplyTargetID
	if reviewName == "" && rev.ExternalID != "" {
		if name, err := locationName(target); err == nil {
			reviewName = name + "/reviews/" + rev.ExternalID
		}
	}
	if reviewName == "" {
		return errors.Wrapf(service.ErrBrokenLink, "review %s has no resource name", rev.ID)
	}

	req := a.http.R().
		SetContext(ctx).
		SetAuthToken(target.Token()).
		SetBody(map[string]string{"comment": content})
	if err := a.send(req, http.MethodPut, "/v4/"+reviewName+"/reply"); err != nil {
		return errors.Wrapf(err, "failed to reply to %s", reviewName)
	}

	return nil
}

// FetchListing reads the Business Profile of the target location.
func (a *Adapter) FetchListing(ctx context.Context, target service.Target) (*entity.Listing, error) {
	name, err := locationName(target)
	if err != nil {
		return nil, err
	}
	svc, err := a.businessInfo(ctx, target)
	if err != nil {
		return nil, err
	}

	loc, err := svc.Locations.Get(resourceName(name)).ReadMask(readMask).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(googleclient.Classify(err), "failed to fetch business profile %s", name)
	}

	listing := toListing(loc, target.Location.ID)
	listing.ExternalID = name

	return listing, nil
}

// PublishListing pushes the location's title, phone and website to the profile.
func (a *Adapter) PublishListing(ctx context.Context, target service.Target) error {
	name, err := locationName(target)
	if err != nil {
		return err
	}

	local := target.Location
	patch := &mybusinessbusinessinformation.Location{}
	var mask []string
	if local.Name != "" {
		patch.Title = local.Name
		mask = append(mask, "title")
	}
	if local.Phone != "" {
		patch.PhoneNumbers = &mybusinessbusinessinformation.PhoneNumbers{PrimaryPhone: local.Phone}
		mask = append(mask, "phoneNumbers.primaryPhone")
	}
	if local.Website != "" {
		patch.WebsiteUri = local.Website
		mask = append(mask, "websiteUri")
	}
	if len(mask) == 0 {
		return nil
	}

	svc, err := a.businessInfo(ctx, target)
	if err != nil {
		return err
	}
	if _, err := svc.Locations.Patch(resourceName(name), patch).
		UpdateMask(strings.Join(mask, ",")).
		Context(ctx).
		Do(); err != nil {
		return errors.Wrapf(googleclient.Classify(err), "failed to update business profile %s", name)
	}

	return nil
}

func (a *Adapter) businessInfo(ctx context.Context, target service.Target) (*mybusinessbusinessinformation.Service, error) {
	ts, err := googleclient.TokenSource(ctx, a.httpClient, target.Token(), "https://www.googleapis.com/auth/business.manage")
	if err != nil {
		return nil, errors.Join(service.ErrRemoteRejected, err)
	}

	svc, err := mybusinessbusinessinformation.NewService(ctx, googleclient.ClientOptions(ctx, a.httpClient, ts, a.businessInfoEndpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create business information client")
	}

	return svc, nil
}

func (a *Adapter) send(req *resty.Request, method, path string) error {
	var apiErr apiError
	resp, err := req.SetError(&apiErr).Execute(method, path)
	if err != nil {
		return errors.Join(service.ErrRemoteRejected, err)
	}
	if !resp.IsError() {
		return nil
	}

	cause := errors.Errorf("my business status %d: %s", resp.StatusCode(), apiErr.Error.Message)
	if resp.StatusCode() == http.StatusNotFound {
		return errors.Join(service.ErrBrokenLink, cause)
	}

	return errors.Join(service.ErrRemoteRejected, cause)
}

// locationName picks the "accounts/{a}/locations/{l}" name of the target: the
// synced listing's id, else the one stored on the credential.
func locationName(target service.Target) (string, error) {
	name := target.AccountRef
	if name == "" && target.Credential != nil {
		name = target.Credential.Metadata.LocationName
		if name == "" {
			name = target.Credential.ExternalID
		}
	}
	if !strings.Contains(name, "locations/") {
		return "", errors.Wrapf(service.ErrBrokenLink, "no my business location name, got %q", name)
	}

	return strings.Trim(name, "/"), nil
}

// resourceName converts a v4 location name into the Business Information form "locations/{l}".
func resourceName(name string) string {
	return name[strings.Index(name, "locations/"):]
}

func normalizeReview(item review, locationID uuid.UUID, now time.Time) (service.NormalizedReview, bool) {
	rating, ok := starRatings[item.StarRating]
	if !ok || item.ReviewID == "" {
		return service.NormalizedReview{}, false
	}

	author := item.Reviewer.DisplayName
	if author == "" || item.Reviewer.IsAnonymous {
		author = "Anonymous"
	}

	normalized := service.NormalizedReview{
		Review: &entity.Review{
			LocationID:  locationID,
			Platform:    entity.PlatformGoogleMyBusiness,
			ExternalID:  item.ReviewID,
			AuthorName:  author,
			AuthorImage: item.Reviewer.ProfilePhotoURL,
			Rating:      rating,
			Content:     item.Comment,
			PublishedAt: parseTime(item.CreateTime, now),
			Metadata: entity.ReviewMetadata{
				ReplyTargetID: item.Name,
				Raw: map[string]any{
					"star_rating": item.StarRating,
					"update_time": item.UpdateTime,
				},
			},
		},
	}
	if item.ReviewReply != nil && item.ReviewReply.Comment != "" {
		normalized.Reply = &service.ExternalReply{
			Content:     item.ReviewReply.Comment,
			PublishedAt: parseTime(item.ReviewReply.UpdateTime, now),
		}
	}

	return normalized, true
}

func parseTime(value string, fallback time.Time) time.Time {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return fallback
	}

	return t.UTC()
}

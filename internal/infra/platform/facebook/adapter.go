// Package facebook integrates Facebook pages: page ratings as reviews, replies
// as comments on the rating's story, and the page profile as a listing.
package facebook

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"reviewhub/config"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/infra/platform/graph"
)

const ratingsPageSize = "100"

var (
	ratingFields = strings.Join([]string{
		"rating",
		"review_text",
		"recommendation_type",
		"created_time",
		"open_graph_story",
		"reviewer{name,picture}",
	}, ",")

	pageFields = strings.Join([]string{
		"id", "name", "about", "description", "category", "category_list",
		"phone", "website", "emails", "location", "single_line_address", "hours",
		"is_permanently_closed", "verification_status", "fan_count",
		"followers_count", "rating_count", "overall_star_rating",
	}, ",")

	accountFields = "id,name,access_token,category,instagram_business_account"
)

// Adapter implements every Facebook capability.
type Adapter struct {
	graph  *graph.Client
	logger *slog.Logger
	now    func() time.Time
}

// New creates the Facebook adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		graph:  graph.NewClient(cfg),
		logger: logger.With("platform", entity.PlatformFacebook.String()),
		now:    time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformFacebook }

func (a *Adapter) Binding() service.Binding { return service.BindByLocation }

func (a *Adapter) AccountRef(loc *entity.Location) string { return loc.FacebookPageID }

// FetchReviews pulls up to one page of ratings for the target page.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)
	if target.Credential != nil && !target.Credential.HasReviewAccess() {
		logger.WarnContext(ctx, "credential is missing review scopes",
			slog.String("page_id", target.AccountRef),
			slog.Any("scopes", target.Credential.Scopes))
	}

	var page struct {
		Data []json.RawMessage `json:"data"`
	}
	err := a.graph.Get(ctx, target.AccountRef+"/ratings", target.Token(), map[string]string{
		"fields": ratingFields,
		"limit":  ratingsPageSize,
	}, &page)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch ratings of page %s", target.AccountRef)
	}

	now := a.now().UTC()
	reviews := make([]service.NormalizedReview, 0, len(page.Data))
	for _, raw := range page.Data {
		review, ok := normalizeRating(raw, target.Location.ID, now)
		if !ok {
			continue
		}
		reviews = append(reviews, service.NormalizedReview{Review: review})
	}
	logger.DebugContext(ctx, "fetched page ratings",
		slog.String("page_id", target.AccountRef),
		slog.Int("received", len(page.Data)),
		slog.Int("kept", len(reviews)))

	return reviews, nil
}

// PublishReply comments on the open graph story behind the rating.
func (a *Adapter) PublishReply(ctx context.Context, target service.Target, review *entity.Review, content string) error {
	storyID := review.Metadata.ReplyTargetID
	if storyID == "" {
		storyID, _ = review.Metadata.Lookup("open_graph_story", "id")
	}
	if storyID == "" {
		return errors.Wrapf(service.ErrBrokenLink, "review %s has no open graph story", review.ID)
	}

	if err := a.graph.Post(ctx, storyID+"/comments", target.Token(), map[string]string{
		"message": content,
	}, nil); err != nil {
		return errors.Wrapf(err, "failed to comment on story %s", storyID)
	}

	return nil
}

// FetchListing reads the page profile.
func (a *Adapter) FetchListing(ctx context.Context, target service.Target) (*entity.Listing, error) {
	var details pageDetails
	if err := a.graph.Get(ctx, target.AccountRef, target.Token(), map[string]string{
		"fields": pageFields,
	}, &details); err != nil {
		return nil, errors.Wrapf(err, "failed to fetch page %s", target.AccountRef)
	}

	return details.toListing(target.Location.ID), nil
}

// PublishListing pushes the location's name, phone and website to the page.
func (a *Adapter) PublishListing(ctx context.Context, target service.Target) error {
	loc := target.Location
	form := map[string]string{}
	for key, value := range map[string]string{
		"about":   loc.Name,
		"phone":   loc.Phone,
		"website": loc.Website,
	} {
		if value != "" {
			form[key] = value
		}
	}
	if len(form) == 0 {
		return nil
	}

	if err := a.graph.Post(ctx, target.AccountRef, target.Token(), form, nil); err != nil {
		return errors.Wrapf(err, "failed to update page %s", target.AccountRef)
	}

	return nil
}

// ListPages returns the pages the user token can manage, with their page tokens.
func (a *Adapter) ListPages(ctx context.Context, userAccessToken string) ([]service.PageAccount, error) {
	var resp struct {
		Data []struct {
			ID          string `json:"id"`
			Name        string `json:"name"`
			AccessToken string `json:"access_token"`
			Category    string `json:"category"`
			Instagram   *struct {
				ID string `json:"id"`
			} `json:"instagram_business_account"`
		} `json:"data"`
	}
	if err := a.graph.Get(ctx, "me/accounts", userAccessToken, map[string]string{
		"fields": accountFields,
	}, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to list managed pages")
	}

	pages := make([]service.PageAccount, 0, len(resp.Data))
	for _, p := range resp.Data {
		page := service.PageAccount{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			AccessToken: p.AccessToken,
		}
		if p.Instagram != nil {
			page.InstagramBusinessID = p.Instagram.ID
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// Package instagram imports comments on an Instagram business account's recent
// media as unrated reviews. The account is reached through the linked Facebook
// page and its credential.
package instagram

import (
	"context"
	"log/slog"
	"time"

	"reviewhub/config"
	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/infra/platform/graph"

	"github.com/google/uuid"
)

const (
	recentMediaLimit = "20"
	defaultAuthor    = "Instagram User"
	mediaFields      = "id,caption,media_type,media_url,permalink,comments_count,timestamp"
	commentFields    = "id,text,username,timestamp"
)

type media struct {
	ID            string `json:"id"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	Permalink     string `json:"permalink"`
	CommentsCount int    `json:"comments_count"`
}

type comment struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Username  string `json:"username"`
	Timestamp string `json:"timestamp"`
}

// Adapter implements the Instagram review and reply capabilities.
type Adapter struct {
	graph  *graph.Client
	logger *slog.Logger
	now    func() time.Time
}

// New creates the Instagram adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		graph:  graph.NewClient(cfg),
		logger: logger.With("platform", entity.PlatformInstagram.String()),
		now:    time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformInstagram }

func (a *Adapter) Binding() service.Binding { return service.BindByLocation }

func (a *Adapter) AccountRef(loc *entity.Location) string { return loc.FacebookPageID }

// FetchReviews lists comments on the business account's most recent media.
// A media item whose comments cannot be read is skipped.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, a.logger)
	token := target.Token()

	accountID, err := a.businessAccount(ctx, target.AccountRef, token)
	if err != nil {
		return nil, err
	}

	var recent struct {
		Data []media `json:"data"`
	}
	if err := a.graph.Get(ctx, accountID+"/media", token, map[string]string{
		"fields": mediaFields,
		"limit":  recentMediaLimit,
	}, &recent); err != nil {
		return nil, errors.Wrapf(err, "failed to list media of account %s", accountID)
	}

	now := a.now().UTC()
	var reviews []service.NormalizedReview
	for _, m := range recent.Data {
		if m.CommentsCount <= 0 {
			continue
		}

		var comments struct {
			Data []comment `json:"data"`
		}
		if err := a.graph.Get(ctx, m.ID+"/comments", token, map[string]string{
			"fields": commentFields,
		}, &comments); err != nil {
			logger.WarnContext(ctx, "failed to fetch media comments",
				slog.String("media_id", m.ID),
				slog.Any("error", err))

			continue
		}
		for _, c := range comments.Data {
			reviews = append(reviews, service.NormalizedReview{
				Review: normalizeComment(c, m, target.Location.ID, now),
			})
		}
	}

	return reviews, nil
}

// PublishReply replies to the comment.
func (a *Adapter) PublishReply(ctx context.Context, target service.Target, review *entity.Review, content string) error {
	commentID := review.Metadata.ReplyTargetID
	if commentID == "" {
		commentID = review.ExternalID
	}
	if commentID == "" {
		return errors.Wrapf(service.ErrBrokenLink, "review %s has no comment id", review.ID)
	}

	if err := a.graph.Post(ctx, commentID+"/replies", target.Token(), map[string]string{
		"message": content,
	}, nil); err != nil {
		return errors.Wrapf(err, "failed to reply to comment %s", commentID)
	}

	return nil
}

func (a *Adapter) businessAccount(ctx context.Context, pageID, token string) (string, error) {
	var page struct {
		Account *struct {
			ID string `json:"id"`
		} `json:"instagram_business_account"`
	}
	if err := a.graph.Get(ctx, pageID, token, map[string]string{
		"fields": "instagram_business_account",
	}, &page); err != nil {
		return "", errors.Wrapf(err, "failed to resolve instagram account of page %s", pageID)
	}
	if page.Account == nil || page.Account.ID == "" {
		return "", errors.Wrapf(service.ErrBrokenLink, "page %s has no instagram business account", pageID)
	}

	return page.Account.ID, nil
}

func normalizeComment(c comment, m media, locationID uuid.UUID, now time.Time) *entity.Review {
	author := c.Username
	if author == "" {
		author = defaultAuthor
	}
	mediaType := m.MediaType
	if mediaType == "" {
		mediaType = "unknown"
	}

	return &entity.Review{
		LocationID:  locationID,
		Platform:    entity.PlatformInstagram,
		ExternalID:  c.ID,
		AuthorName:  author,
		Content:     c.Text,
		PublishedAt: graph.ParseTime(c.Timestamp, now),
		Metadata: entity.ReviewMetadata{
			ReplyTargetID: c.ID,
			Raw: map[string]any{
				"media_id":   m.ID,
				"media_type": mediaType,
				"media_url":  m.MediaURL,
				"permalink":  m.Permalink,
			},
		},
	}
}

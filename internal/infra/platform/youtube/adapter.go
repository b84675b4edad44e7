// Package youtube imports top-level comments on a channel's videos as unrated
// reviews and replies to them.
package youtube

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/infra/platform/googleclient"

	"github.com/google/uuid"
	"google.golang.org/api/youtube/v3"
)

const maxThreads = 100

// Adapter implements the YouTube review and reply capabilities.
type Adapter struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
	now        func() time.Time
}

// New creates the YouTube adapter.
func New(cfg *config.Config, logger *slog.Logger) *Adapter {
	return &Adapter{
		httpClient: &http.Client{Timeout: cfg.Platforms.RequestTimeout},
		endpoint:   cfg.Platforms.YouTube.Endpoint,
		logger:     logger.With("platform", entity.PlatformYouTube.String()),
		now:        time.Now,
	}
}

func (a *Adapter) Platform() entity.Platform { return entity.PlatformYouTube }

func (a *Adapter) Binding() service.Binding { return service.BindByLocation }

func (a *Adapter) AccountRef(loc *entity.Location) string { return loc.YouTubeChannelID }

// FetchReviews lists the most recent comment threads across the channel.
func (a *Adapter) FetchReviews(ctx context.Context, target service.Target) ([]service.NormalizedReview, error) {
	svc, err := a.client(ctx, target)
	if err != nil {
		return nil, err
	}

	resp, err := svc.CommentThreads.List([]string{"snippet"}).
		AllThreadsRelatedToChannelId(target.AccountRef).
		MaxResults(maxThreads).
		TextFormat("plainText").
		Context(ctx).
		Do()
	if err != nil {
		return nil, errors.Wrapf(googleclient.Classify(err), "failed to list comment threads of %s", target.AccountRef)
	}

	now := a.now().UTC()
	reviews := make([]service.NormalizedReview, 0, len(resp.Items))
	for _, thread := range resp.Items {
		if review, ok := normalizeThread(thread, target.Location.ID, now); ok {
			reviews = append(reviews, service.NormalizedReview{Review: review})
		}
	}

	return reviews, nil
}

// PublishReply answers the top-level comment of the thread.
func (a *Adapter) PublishReply(ctx context.Context, target service.Target, review *entity.Review, content string) error {
	parentID := review.Metadata.ReplyTargetID
	if parentID == "" {
		parentID = review.ExternalID
	}
	if parentID == "" {
		return errors.Wrapf(service.ErrBrokenLink, "review %s has no parent comment", review.ID)
	}

	svc, err := a.client(ctx, target)
	if err != nil {
		return err
	}
	if _, err := svc.Comments.Insert([]string{"snippet"}, &youtube.Comment{
		Snippet: &youtube.CommentSnippet{
			ParentId:     parentID,
			TextOriginal: content,
		},
	}).Context(ctx).Do(); err != nil {
		return errors.Wrapf(googleclient.Classify(err), "failed to reply to comment %s", parentID)
	}

	return nil
}

func (a *Adapter) client(ctx context.Context, target service.Target) (*youtube.Service, error) {
	ts, err := googleclient.TokenSource(ctx, a.httpClient, target.Token(), youtube.YoutubeForceSslScope)
	if err != nil {
		return nil, errors.Join(service.ErrRemoteRejected, err)
	}

	svc, err := youtube.NewService(ctx, googleclient.ClientOptions(ctx, a.httpClient, ts, a.endpoint)...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create youtube client")
	}

	return svc, nil
}

func normalizeThread(thread *youtube.CommentThread, locationID uuid.UUID, now time.Time) (*entity.Review, bool) {
	if thread.Snippet == nil || thread.Snippet.TopLevelComment == nil || thread.Snippet.TopLevelComment.Snippet == nil {
		return nil, false
	}
	top := thread.Snippet.TopLevelComment
	snippet := top.Snippet

	commentID := top.Id
	if commentID == "" {
		commentID = thread.Id
	}

	publishedAt := now
	if t, err := time.Parse(time.RFC3339, snippet.PublishedAt); err == nil {
		publishedAt = t.UTC()
	}
	content := snippet.TextOriginal
	if content == "" {
		content = snippet.TextDisplay
	}

	return &entity.Review{
		LocationID:  locationID,
		Platform:    entity.PlatformYouTube,
		ExternalID:  commentID,
		AuthorName:  snippet.AuthorDisplayName,
		AuthorImage: snippet.AuthorProfileImageUrl,
		Content:     content,
		PublishedAt: publishedAt,
		Metadata: entity.ReviewMetadata{
			ReplyTargetID: commentID,
			Raw: map[string]any{
				"video_id":          thread.Snippet.VideoId,
				"channel_id":        thread.Snippet.ChannelId,
				"total_reply_count": thread.Snippet.TotalReplyCount,
				"like_count":        snippet.LikeCount,
			},
		},
	}, true
}

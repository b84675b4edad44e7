package instagram

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) add(call string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, call)
}

func (l *callLog) list() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.calls...)
}

func newTestAdapter(t *testing.T, routes map[string]string) (*Adapter, *callLog) {
	t.Helper()

	seen := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.add(r.Method + " " + r.URL.Path)
		body, ok := routes[r.Method+" "+r.URL.Path]
		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":{"message":"unexpected call","code":1}}`)

			return
		}
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	cfg := &config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: 5 * time.Second,
		Facebook:       config.FacebookConfig{BaseURL: srv.URL, GraphVersion: "v24.0"},
	}}

	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), seen
}

func target() service.Target {
	return service.Target{
		Location: &entity.Location{ID: uuid.New(), FacebookPageID: "pg1"},
		Credential: &entity.PlatformCredential{
			Platform:    entity.PlatformFacebook,
			AccessToken: "user-token",
			Metadata:    entity.CredentialMetadata{PageID: "pg1", PageAccessToken: "page-token"},
			IsActive:    true,
		},
		AccountRef: "pg1",
	}
}

func TestAdapter_FetchReviews(t *testing.T) {
	adapter, seen := newTestAdapter(t, map[string]string{
		"GET /v24.0/pg1":       `{"instagram_business_account":{"id":"ig1"},"id":"pg1"}`,
		"GET /v24.0/ig1/media": `{"data":[{"id":"m1","media_type":"IMAGE","permalink":"https://ig/p/1","comments_count":2},{"id":"m2","comments_count":0},{"id":"m3","comments_count":1}]}`,
		"GET /v24.0/m1/comments": `{"data":[
			{"id":"c1","text":"Love it","username":"sam","timestamp":"2024-05-01T10:00:00+0000"},
			{"id":"c2","text":"Where is this?"}
		]}`,
	})
	tgt := target()

	reviews, err := adapter.FetchReviews(context.Background(), tgt)
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	first := reviews[0].Review
	assert.Equal(t, "c1", first.ExternalID)
	assert.Equal(t, "c1", first.Metadata.ReplyTargetID)
	assert.Equal(t, entity.PlatformInstagram, first.Platform)
	assert.Zero(t, first.Rating)
	assert.Equal(t, "sam", first.AuthorName)
	assert.Equal(t, "m1", first.Metadata.Raw["media_id"])
	assert.Equal(t, "IMAGE", first.Metadata.Raw["media_type"])
	assert.Equal(t, "https://ig/p/1", first.Metadata.Raw["permalink"])
	assert.Equal(t, tgt.Location.ID, first.LocationID)

	assert.Equal(t, "Instagram User", reviews[1].Review.AuthorName)

	// m2 has no comments and m3 fails; neither stops the sync.
	assert.NotContains(t, seen.list(), "GET /v24.0/m2/comments")
	assert.Contains(t, seen.list(), "GET /v24.0/m3/comments")
}

func TestAdapter_FetchReviewsWithoutBusinessAccount(t *testing.T) {
	adapter, _ := newTestAdapter(t, map[string]string{
		"GET /v24.0/pg1": `{"id":"pg1"}`,
	})

	_, err := adapter.FetchReviews(context.Background(), target())
	assert.ErrorIs(t, err, service.ErrBrokenLink)
}

func TestAdapter_PublishReply(t *testing.T) {
	adapter, seen := newTestAdapter(t, map[string]string{
		"POST /v24.0/c1/replies": `{"id":"r1"}`,
	})
	review := &entity.Review{ID: uuid.New(), ExternalID: "c1", Metadata: entity.ReviewMetadata{ReplyTargetID: "c1"}}

	require.NoError(t, adapter.PublishReply(context.Background(), target(), review, "Thanks Sam"))
	assert.Equal(t, []string{"POST /v24.0/c1/replies"}, seen.list())
}

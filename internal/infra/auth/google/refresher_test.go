package google

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRefresher(tokenURL, clientID string) *Refresher {
	cfg := &config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: 5 * time.Second,
		Google: config.GoogleConfig{
			ClientID:     clientID,
			ClientSecret: "secret",
			TokenURL:     tokenURL,
		},
	}}

	return NewRefresher(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*Refresher)
}

func TestRefresher_CanRefresh(t *testing.T) {
	refresher := newTestRefresher("http://unused", "client")

	tests := []struct {
		name string
		cred *entity.PlatformCredential
		want bool
	}{
		{"my business with refresh token", &entity.PlatformCredential{Platform: entity.PlatformGoogleMyBusiness, RefreshToken: "r"}, true},
		{"youtube with refresh token", &entity.PlatformCredential{Platform: entity.PlatformYouTube, RefreshToken: "r"}, true},
		{"no refresh token", &entity.PlatformCredential{Platform: entity.PlatformYouTube}, false},
		{"facebook", &entity.PlatformCredential{Platform: entity.PlatformFacebook, RefreshToken: "r"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, refresher.CanRefresh(tt.cred))
		})
	}

	unconfigured := newTestRefresher("http://unused", "")
	assert.False(t, unconfigured.CanRefresh(&entity.PlatformCredential{Platform: entity.PlatformYouTube, RefreshToken: "r"}))
}

func TestRefresher_Refresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "old-refresh", r.PostForm.Get("refresh_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"new-access","token_type":"Bearer","expires_in":3600}`)
	}))
	defer srv.Close()

	refresher := newTestRefresher(srv.URL, "client")
	cred := &entity.PlatformCredential{
		ID:           uuid.New(),
		Platform:     entity.PlatformGoogleMyBusiness,
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
	}

	refreshed, err := refresher.Refresh(context.Background(), cred)
	require.NoError(t, err)
	assert.Equal(t, "new-access", refreshed.AccessToken)
	assert.Equal(t, "old-refresh", refreshed.RefreshToken)
	require.NotNil(t, refreshed.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), *refreshed.ExpiresAt, time.Minute)
	assert.Equal(t, "old-access", cred.AccessToken)
}

func TestRefresher_RefreshRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
	}))
	defer srv.Close()

	refresher := newTestRefresher(srv.URL, "client")
	_, err := refresher.Refresh(context.Background(), &entity.PlatformCredential{
		Platform:     entity.PlatformYouTube,
		RefreshToken: "revoked",
	})
	assert.ErrorContains(t, err, "invalid_grant")
}

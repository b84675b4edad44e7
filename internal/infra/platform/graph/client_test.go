package graph

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: time.Second,
		Facebook:       config.FacebookConfig{BaseURL: srv.URL + "/", GraphVersion: "v24.0"},
	}})
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		brokenLink bool
	}{
		{
			name:   "expired token",
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"Error validating access token","code":190}}`,
		},
		{
			name:       "missing object",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Unsupported get request","code":100,"error_subcode":33}}`,
			brokenLink: true,
		},
		{
			name:       "not found without body",
			status:     http.StatusNotFound,
			body:       ``,
			brokenLink: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := client.Get(context.Background(), "pg1", "token", nil, nil)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			if tt.brokenLink {
				assert.ErrorIs(t, err, service.ErrBrokenLink)
			} else {
				assert.ErrorIs(t, err, service.ErrRemoteRejected)
			}
		})
	}
}

func TestClient_TransportFailureIsRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(&config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: time.Second,
		Facebook:       config.FacebookConfig{BaseURL: srv.URL, GraphVersion: "v24.0"},
	}})

	err := client.Post(context.Background(), "story/comments", "token", map[string]string{"message": "hi"}, nil)
	assert.ErrorIs(t, err, service.ErrRemoteRejected)
}

func TestParseTime(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), ParseTime("2024-05-01T10:00:00+0200", fallback))
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), ParseTime("2024-05-01T10:00:00Z", fallback))
	assert.Equal(t, fallback, ParseTime("", fallback))
	assert.Equal(t, fallback, ParseTime("yesterday", fallback))
}

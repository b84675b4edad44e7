package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reviewhub/config"
	"reviewhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSyncJob(t *testing.T) {
	job := &service.SyncJob{
		RequestID:  "req-1",
		JobID:      "job-1",
		Kind:       service.SyncJobReviews,
		TenantID:   "tenant-1",
		LocationID: "loc-1",
	}

	var received PushEnvelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	require.NoError(t, publisher.PublishSyncJob(context.Background(), job))

	assert.Equal(t, "job-1", received.Message.MessageID)
	assert.Equal(t, "reviews", received.Message.Attributes["kind"])
	assert.NotContains(t, received.Message.Attributes, "platform")

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SyncJob
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *job, decoded)
}

func TestLocalHTTPPublisher_WorkerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	publisher := NewLocalHTTPPublisher(srv.URL, discardLogger())
	err := publisher.PublishSyncJob(context.Background(), &service.SyncJob{JobID: "job-2"})
	assert.ErrorContains(t, err, "500")
}

func TestNewSyncJobPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", pubsub: nil},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: "noop"}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher, err := NewSyncJobPublisher(PublisherParams{
				Lc:     fxtest.NewLifecycle(t),
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)
			if _, ok := publisher.(*noopPublisher); ok {
				assert.NoError(t, publisher.PublishSyncJob(context.Background(), &service.SyncJob{JobID: "job-3"}))
			}
		})
	}
}

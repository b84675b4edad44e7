package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"time"

	"reviewhub/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const localPublishTimeout = 30 * time.Second

// localHTTPPublisher implements SyncJobPublisher by POSTing push envelopes
// to the worker directly, the way a Pub/Sub push subscription would.
type localHTTPPublisher struct {
	endpoint string
	http     *resty.Client
	logger   *slog.Logger
}

// PushEnvelope is the body Pub/Sub sends to push endpoints.
type PushEnvelope struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.SyncJobPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		http:     resty.New().SetTimeout(localPublishTimeout),
		logger:   logger,
	}
}

// PublishSyncJob delivers the job envelope to the worker endpoint
func (p *localHTTPPublisher) PublishSyncJob(ctx context.Context, job *service.SyncJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope PushEnvelope
	envelope.Subscription = "projects/local/subscriptions/sync-jobs"
	envelope.Message.Data = base64.StdEncoding.EncodeToString(data)
	envelope.Message.MessageID = job.JobID
	envelope.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	envelope.Message.Attributes = jobAttributes(job)

	req := p.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(envelope)
	if job.RequestID != "" {
		req.SetHeader("X-Request-Id", job.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.Wrapf(err, "failed to deliver sync job %s", job.JobID)
	}
	if resp.IsError() {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Info("[LocalPubSub] Sync job delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("job_id", job.JobID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"reviewhub/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements SyncJobPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.SyncJobPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

// PublishSyncJob publishes a job and waits for the server to acknowledge it
func (p *googlePubSubPublisher) PublishSyncJob(ctx context.Context, job *service.SyncJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: jobAttributes(job),
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.Wrapf(err, "failed to publish sync job %s", job.JobID)
	}

	p.logger.Info("[GooglePubSub] Sync job published",
		slog.String("job_id", job.JobID),
		slog.String("kind", string(job.Kind)),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}

// jobAttributes exposes the routing fields of a job for subscription filters.
func jobAttributes(job *service.SyncJob) map[string]string {
	attributes := map[string]string{
		"job_id":      job.JobID,
		"kind":        string(job.Kind),
		"tenant_id":   job.TenantID,
		"location_id": job.LocationID,
	}
	if job.Platform != "" {
		attributes["platform"] = job.Platform
	}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}

	return attributes
}

package service

import (
	"context"
)

// SyncJobKind selects what a scheduled sync job pulls.
type SyncJobKind string

const (
	SyncJobReviews  SyncJobKind = "reviews"
	SyncJobListings SyncJobKind = "listings"
)

// SyncJob is a scheduled sync of one location, processed by the worker.
type SyncJob struct {
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	JobID      string      `json:"job_id"`
	Kind       SyncJobKind `json:"kind"`
	TenantID   string      `json:"tenant_id"`
	LocationID string      `json:"location_id"`
	Platform   string      `json:"platform,omitempty"` // Empty means every platform
}

// SyncJobPublisher defines the interface for publishing sync jobs to a message queue
type SyncJobPublisher interface {
	// PublishSyncJob publishes a sync job for async processing
	PublishSyncJob(ctx context.Context, job *SyncJob) error

	// Close releases any resources held by the publisher
	Close() error
}

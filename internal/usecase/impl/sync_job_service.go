package impl

import (
	"context"
	"log/slog"

	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SyncJobServiceParams holds dependencies for the sync job service
type SyncJobServiceParams struct {
	fx.In

	Logger       *slog.Logger
	Publisher    service.SyncJobPublisher
	LocationRepo repository.LocationRepository
}

type syncJobService struct {
	publisher    service.SyncJobPublisher
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// NewSyncJobService creates the sync scheduling service
func NewSyncJobService(params SyncJobServiceParams) usecase.SyncJobUsecase {
	return &syncJobService{
		publisher:    params.Publisher,
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

// ScheduleLocationSync queues a sync for one location of the tenant
func (srv *syncJobService) ScheduleLocationSync(ctx context.Context, tenantID, locationID uuid.UUID, kind service.SyncJobKind, platform entity.Platform) (*service.SyncJob, error) {
	if _, err := findLocation(ctx, srv.locationRepo, tenantID, locationID); err != nil {
		return nil, err
	}

	job := srv.newJob(ctx, tenantID, locationID, kind, platform)
	if err := srv.publisher.PublishSyncJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to queue sync job")
	}

	return job, nil
}

// ScheduleTenantSync queues a sync for each location. Jobs that fail to publish
// are logged and left out of the result.
func (srv *syncJobService) ScheduleTenantSync(ctx context.Context, tenantID uuid.UUID, kind service.SyncJobKind) ([]*service.SyncJob, error) {
	locationIDs, err := srv.locationRepo.ListIDsByTenant(ctx, tenantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenant locations")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	jobs := make([]*service.SyncJob, 0, len(locationIDs))
	for _, locationID := range locationIDs {
		job := srv.newJob(ctx, tenantID, locationID, kind, "")
		if err := srv.publisher.PublishSyncJob(ctx, job); err != nil {
			logger.Error("Failed to queue sync job",
				slog.String("location_id", locationID.String()),
				slog.Any("error", err),
			)

			continue
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}

func (srv *syncJobService) newJob(ctx context.Context, tenantID, locationID uuid.UUID, kind service.SyncJobKind, platform entity.Platform) *service.SyncJob {
	return &service.SyncJob{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		JobID:      uuid.NewString(),
		Kind:       kind,
		TenantID:   tenantID.String(),
		LocationID: locationID.String(),
		Platform:   platform.String(),
	}
}

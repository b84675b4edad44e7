package usecase

import (
	"context"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/google/uuid"
)

// SyncJobUsecase schedules background syncs through the job queue
type SyncJobUsecase interface {
	// ScheduleLocationSync queues one job for a location. An empty platform means every platform.
	ScheduleLocationSync(ctx context.Context, tenantID, locationID uuid.UUID, kind service.SyncJobKind, platform entity.Platform) (*service.SyncJob, error)

	// ScheduleTenantSync queues one job per location of the tenant.
	ScheduleTenantSync(ctx context.Context, tenantID uuid.UUID, kind service.SyncJobKind) ([]*service.SyncJob, error)
}

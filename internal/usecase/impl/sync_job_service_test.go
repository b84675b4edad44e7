package impl

import (
	"context"
	"testing"

	deliverycontext "reviewhub/internal/delivery/context"
	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	mockRepo "reviewhub/internal/mocks/repository"
	mockService "reviewhub/internal/mocks/service"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type syncJobServiceFixtures struct {
	service      usecase.SyncJobUsecase
	publisher    *mockService.MockSyncJobPublisher
	locationRepo *mockRepo.MockLocationRepository
}

func createTestSyncJobService(t *testing.T) syncJobServiceFixtures {
	publisher := mockService.NewMockSyncJobPublisher(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	return syncJobServiceFixtures{
		service: NewSyncJobService(SyncJobServiceParams{
			Logger:       discardLogger(),
			Publisher:    publisher,
			LocationRepo: locationRepo,
		}),
		publisher:    publisher,
		locationRepo: locationRepo,
	}
}

func TestSyncJobService_ScheduleLocationSync(t *testing.T) {
	fx := createTestSyncJobService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	tenantID, locationID := uuid.New(), uuid.New()

	fx.locationRepo.EXPECT().
		FindByID(ctx, tenantID, locationID).
		Return(&entity.Location{ID: locationID, TenantID: tenantID}, nil)
	fx.publisher.EXPECT().
		PublishSyncJob(ctx, mock.MatchedBy(func(job *service.SyncJob) bool {
			return job.Kind == service.SyncJobListings &&
				job.TenantID == tenantID.String() &&
				job.LocationID == locationID.String() &&
				job.Platform == "facebook" &&
				job.RequestID == "req-1" &&
				job.JobID != ""
		})).
		Return(nil)

	job, err := fx.service.ScheduleLocationSync(ctx, tenantID, locationID, service.SyncJobListings, entity.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, service.SyncJobListings, job.Kind)
}

func TestSyncJobService_ScheduleLocationSync_UnknownLocation(t *testing.T) {
	fx := createTestSyncJobService(t)
	ctx := context.Background()
	tenantID, locationID := uuid.New(), uuid.New()

	fx.locationRepo.EXPECT().FindByID(ctx, tenantID, locationID).Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.ScheduleLocationSync(ctx, tenantID, locationID, service.SyncJobReviews, "")
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	fx.publisher.AssertNotCalled(t, "PublishSyncJob", mock.Anything, mock.Anything)
}

func TestSyncJobService_ScheduleTenantSync_SkipsFailedPublishes(t *testing.T) {
	fx := createTestSyncJobService(t)
	ctx := context.Background()
	tenantID := uuid.New()
	first, second := uuid.New(), uuid.New()

	fx.locationRepo.EXPECT().ListIDsByTenant(ctx, tenantID).Return([]uuid.UUID{first, second}, nil)
	fx.publisher.EXPECT().
		PublishSyncJob(ctx, mock.MatchedBy(func(job *service.SyncJob) bool { return job.LocationID == first.String() })).
		Return(errors.New("topic not found"))
	fx.publisher.EXPECT().
		PublishSyncJob(ctx, mock.MatchedBy(func(job *service.SyncJob) bool { return job.LocationID == second.String() })).
		Return(nil)

	jobs, err := fx.service.ScheduleTenantSync(ctx, tenantID, service.SyncJobReviews)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, second.String(), jobs[0].LocationID)
	assert.Empty(t, jobs[0].Platform)
}

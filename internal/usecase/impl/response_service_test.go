package impl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/infra/platform/facebook"
	"reviewhub/internal/infra/platform/places"
	mockRepo "reviewhub/internal/mocks/repository"
	mockUsecase "reviewhub/internal/mocks/usecase"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// responseServiceFixtures holds all test dependencies for response service tests.
type responseServiceFixtures struct {
	service      *responseService
	resolver     *mockUsecase.MockCredentialResolver
	locationRepo *mockRepo.MockLocationRepository
	reviewRepo   *mockRepo.MockReviewRepository
	responseRepo *mockRepo.MockReviewResponseRepository
	listingRepo  *mockRepo.MockListingRepository
}

func createTestResponseService(t *testing.T, adapters ...service.PlatformAdapter) responseServiceFixtures {
	fx := responseServiceFixtures{
		resolver:     mockUsecase.NewMockCredentialResolver(t),
		locationRepo: mockRepo.NewMockLocationRepository(t),
		reviewRepo:   mockRepo.NewMockReviewRepository(t),
		responseRepo: mockRepo.NewMockReviewResponseRepository(t),
		listingRepo:  mockRepo.NewMockListingRepository(t),
	}
	srv := NewResponseService(ResponseServiceParams{
		Logger:       discardLogger(),
		Registry:     service.NewRegistry(adapters...),
		Resolver:     fx.resolver,
		LocationRepo: fx.locationRepo,
		ReviewRepo:   fx.reviewRepo,
		ResponseRepo: fx.responseRepo,
		ListingRepo:  fx.listingRepo,
	}).(*responseService)
	srv.now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

// graphServer starts a Graph API stub and returns a Facebook adapter pointed at it.
func graphServer(t *testing.T, handler http.HandlerFunc) *facebook.Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return facebook.New(&config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: 5 * time.Second,
		Facebook:       config.FacebookConfig{BaseURL: srv.URL, GraphVersion: "v24.0"},
	}}, discardLogger())
}

type publishCase struct {
	tenantID uuid.UUID
	loc      *entity.Location
	review   *entity.Review
	resp     *entity.ReviewResponse
}

func newPublishCase(platform entity.Platform) publishCase {
	tenantID := uuid.New()
	approver := uuid.New()
	author := uuid.New()
	loc := &entity.Location{ID: uuid.New(), TenantID: tenantID, FacebookPageID: "pg1", GooglePlaceID: "place1"}
	review := &entity.Review{
		ID:         uuid.New(),
		LocationID: loc.ID,
		Platform:   platform,
		ExternalID: "story_9",
		Metadata:   entity.ReviewMetadata{ReplyTargetID: "story_9"},
	}
	approvedAt := fixedNow.Add(-time.Hour)
	resp := &entity.ReviewResponse{
		ID:         uuid.New(),
		ReviewID:   review.ID,
		UserID:     &author,
		Content:    "Thank you!",
		Status:     entity.ResponseStatusApproved,
		ApprovedBy: &approver,
		ApprovedAt: &approvedAt,
	}

	return publishCase{tenantID: tenantID, loc: loc, review: review, resp: resp}
}

func (fx responseServiceFixtures) expectLoad(ctx context.Context, pc publishCase) {
	fx.responseRepo.EXPECT().FindByID(ctx, pc.resp.ID).Return(pc.resp, nil)
	fx.reviewRepo.EXPECT().FindByID(ctx, pc.tenantID, pc.review.ID).Return(pc.review, nil)
}

func TestResponseService_PublishResponse_FacebookStory(t *testing.T) {
	var calls atomic.Int32
	adapter := graphServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v24.0/story_9/comments", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "Thank you!", r.PostForm.Get("message"))
		assert.Equal(t, "page-token", r.PostForm.Get("access_token"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"story_9_1"}`)
	})
	fx := createTestResponseService(t, adapter)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformFacebook)
	cred := testCredential(pc.tenantID, entity.PlatformFacebook, "pg1")
	cred.Metadata.PageAccessToken = "page-token"

	fx.expectLoad(ctx, pc)
	fx.locationRepo.EXPECT().FindByID(ctx, pc.tenantID, pc.loc.ID).Return(pc.loc, nil)
	fx.resolver.EXPECT().Resolve(ctx, pc.loc, entity.PlatformFacebook).Return(cred, nil)
	fx.responseRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(r *entity.ReviewResponse) bool {
			return r.Status == entity.ResponseStatusPublished && r.PlatformSynced
		})).
		Return(nil)

	got, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, entity.ResponseStatusPublished, got.Status)
	assert.True(t, got.PlatformSynced)
	require.NotNil(t, got.PublishedAt)
	assert.Equal(t, fixedNow, *got.PublishedAt)
}

func TestResponseService_PublishResponse_Failures(t *testing.T) {
	tests := []struct {
		name       string
		resolveErr error
		status     int
		body       string
		wantReason domainerrors.PublishFailureReason
		wantCalls  int32
	}{
		{
			name:       "no credential for the page",
			resolveErr: domainerrors.ErrCredentialNotFound,
			wantReason: domainerrors.PublishReasonNoCredential,
		},
		{
			name:       "disconnected account",
			resolveErr: domainerrors.ErrCredentialInactive,
			wantReason: domainerrors.PublishReasonNoCredential,
		},
		{
			name:       "expired token",
			resolveErr: domainerrors.ErrCredentialExpired,
			wantReason: domainerrors.PublishReasonExpiredToken,
		},
		{
			name:       "story deleted",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Unsupported post request","code":100,"error_subcode":33}}`,
			wantReason: domainerrors.PublishReasonBrokenLink,
			wantCalls:  1,
		},
		{
			name:       "platform refuses",
			status:     http.StatusForbidden,
			body:       `{"error":{"message":"Permissions error","code":200}}`,
			wantReason: domainerrors.PublishReasonRemoteRejected,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			adapter := graphServer(t, func(w http.ResponseWriter, _ *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			fx := createTestResponseService(t, adapter)
			ctx := context.Background()
			pc := newPublishCase(entity.PlatformFacebook)

			fx.expectLoad(ctx, pc)
			fx.locationRepo.EXPECT().FindByID(ctx, pc.tenantID, pc.loc.ID).Return(pc.loc, nil)
			if tt.resolveErr != nil {
				fx.resolver.EXPECT().Resolve(ctx, pc.loc, entity.PlatformFacebook).Return(nil, tt.resolveErr)
			} else {
				fx.resolver.EXPECT().
					Resolve(ctx, pc.loc, entity.PlatformFacebook).
					Return(testCredential(pc.tenantID, entity.PlatformFacebook, "pg1"), nil)
			}

			got, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
			require.Error(t, err)
			assert.Nil(t, got)

			var publishErr *domainerrors.PublishError
			require.True(t, errors.As(err, &publishErr))
			assert.Equal(t, tt.wantReason, publishErr.Reason)
			assert.Equal(t, "facebook", publishErr.Platform)
			assert.Equal(t, tt.wantCalls, calls.Load())
			assert.Equal(t, entity.ResponseStatusApproved, pc.resp.Status)
			fx.responseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestResponseService_PublishResponse_UnlinkedLocation(t *testing.T) {
	var paths []string
	adapter := graphServer(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"story_9_1"}`)
	})
	fx := createTestResponseService(t, adapter)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformFacebook)
	pc.loc.FacebookPageID = ""

	fx.expectLoad(ctx, pc)
	fx.locationRepo.EXPECT().FindByID(ctx, pc.tenantID, pc.loc.ID).Return(pc.loc, nil)
	fx.resolver.EXPECT().
		Resolve(ctx, pc.loc, entity.PlatformFacebook).
		Return(testCredential(pc.tenantID, entity.PlatformFacebook, "pg7"), nil)
	fx.responseRepo.EXPECT().Update(ctx, pc.resp).Return(nil)

	got, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ResponseStatusPublished, got.Status)
	assert.True(t, got.PlatformSynced)
	assert.Equal(t, []string{"/v24.0/story_9/comments"}, paths)
}

func TestResponseService_PublishResponse_UnlinkedLocationWithoutAccount(t *testing.T) {
	adapter := graphServer(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("platform must not be called")
	})
	fx := createTestResponseService(t, adapter)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformFacebook)
	pc.loc.FacebookPageID = ""

	fx.expectLoad(ctx, pc)
	fx.locationRepo.EXPECT().FindByID(ctx, pc.tenantID, pc.loc.ID).Return(pc.loc, nil)
	fx.resolver.EXPECT().
		Resolve(ctx, pc.loc, entity.PlatformFacebook).
		Return(nil, domainerrors.ErrCredentialNotFound)

	_, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
	var publishErr *domainerrors.PublishError
	require.True(t, errors.As(err, &publishErr))
	assert.Equal(t, domainerrors.PublishReasonNoCredential, publishErr.Reason)
	fx.responseRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestResponseService_PublishResponse_LocalOnlyPlatform(t *testing.T) {
	adapter := places.New(&config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: time.Second,
		Google:         config.GoogleConfig{PlacesBaseURL: "http://127.0.0.1:0", PlacesAPIKey: "key"},
	}}, discardLogger())
	fx := createTestResponseService(t, adapter)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformGoogle)

	fx.expectLoad(ctx, pc)
	fx.responseRepo.EXPECT().Update(ctx, pc.resp).Return(nil)

	got, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ResponseStatusPublished, got.Status)
	assert.False(t, got.PlatformSynced)
}

func TestResponseService_PublishResponse_RequiresApproval(t *testing.T) {
	fx := createTestResponseService(t)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformFacebook)
	pc.resp.Status = entity.ResponseStatusDraft

	fx.expectLoad(ctx, pc)

	_, err := fx.service.PublishResponse(ctx, pc.tenantID, pc.resp.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidResponseTransition))
}

func TestResponseService_OtherTenantSeesNotFound(t *testing.T) {
	fx := createTestResponseService(t)
	ctx := context.Background()
	pc := newPublishCase(entity.PlatformFacebook)
	otherTenant := uuid.New()

	fx.responseRepo.EXPECT().FindByID(ctx, pc.resp.ID).Return(pc.resp, nil)
	fx.reviewRepo.EXPECT().FindByID(ctx, otherTenant, pc.review.ID).Return(nil, repository.ErrReviewNotFound)

	_, err := fx.service.ApproveResponse(ctx, otherTenant, uuid.New(), pc.resp.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrResponseNotFound))
}

func TestResponseService_CreateDraft(t *testing.T) {
	fx := createTestResponseService(t)
	ctx := context.Background()
	tenantID, userID := uuid.New(), uuid.New()
	review := &entity.Review{ID: uuid.New()}

	fx.reviewRepo.EXPECT().FindByID(ctx, tenantID, review.ID).Return(review, nil)
	fx.responseRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ReviewResponse")).Return(nil)

	resp, err := fx.service.CreateDraft(ctx, tenantID, userID, review.ID, &usecase.DraftResponseInput{
		Content:     "Thanks for visiting",
		AIGenerated: true,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ResponseStatusDraft, resp.Status)
	assert.Equal(t, review.ID, resp.ReviewID)
	assert.Equal(t, &userID, resp.UserID)
	assert.True(t, resp.AIGenerated)
}

func TestResponseService_CreateDraft_AlreadyAnswered(t *testing.T) {
	tests := []struct {
		name      string
		review    *entity.Review
		createErr error
	}{
		{name: "loaded with a response", review: &entity.Review{ID: uuid.New(), Response: &entity.ReviewResponse{}}},
		{name: "lost a race", review: &entity.Review{ID: uuid.New()}, createErr: repository.ErrDuplicateResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestResponseService(t)
			ctx := context.Background()
			tenantID := uuid.New()

			fx.reviewRepo.EXPECT().FindByID(ctx, tenantID, tt.review.ID).Return(tt.review, nil)
			if tt.createErr != nil {
				fx.responseRepo.EXPECT().Create(ctx, mock.Anything).Return(tt.createErr)
			}

			_, err := fx.service.CreateDraft(ctx, tenantID, uuid.New(), tt.review.ID, &usecase.DraftResponseInput{Content: "Hi"})
			assert.True(t, errors.Is(err, domainerrors.ErrResponseAlreadyExists))
		})
	}
}

func TestResponseService_Transitions(t *testing.T) {
	approver := uuid.New()

	tests := []struct {
		name       string
		from       entity.ResponseStatus
		run        func(context.Context, usecase.ResponseUsecase, uuid.UUID, uuid.UUID) (*entity.ReviewResponse, error)
		wantStatus entity.ResponseStatus
		wantErr    bool
	}{
		{
			name: "approve draft",
			from: entity.ResponseStatusDraft,
			run: func(ctx context.Context, uc usecase.ResponseUsecase, tenantID, id uuid.UUID) (*entity.ReviewResponse, error) {
				return uc.ApproveResponse(ctx, tenantID, approver, id)
			},
			wantStatus: entity.ResponseStatusApproved,
		},
		{
			name: "reject approved",
			from: entity.ResponseStatusApproved,
			run: func(ctx context.Context, uc usecase.ResponseUsecase, tenantID, id uuid.UUID) (*entity.ReviewResponse, error) {
				return uc.RejectResponse(ctx, tenantID, id, "tone")
			},
			wantStatus: entity.ResponseStatusRejected,
		},
		{
			name: "resubmit rejected",
			from: entity.ResponseStatusRejected,
			run: func(ctx context.Context, uc usecase.ResponseUsecase, tenantID, id uuid.UUID) (*entity.ReviewResponse, error) {
				return uc.ResubmitResponse(ctx, tenantID, id, "Kinder words")
			},
			wantStatus: entity.ResponseStatusDraft,
		},
		{
			name: "edit published",
			from: entity.ResponseStatusPublished,
			run: func(ctx context.Context, uc usecase.ResponseUsecase, tenantID, id uuid.UUID) (*entity.ReviewResponse, error) {
				return uc.EditResponse(ctx, tenantID, id, "changed")
			},
			wantErr: true,
		},
		{
			name: "approve rejected",
			from: entity.ResponseStatusRejected,
			run: func(ctx context.Context, uc usecase.ResponseUsecase, tenantID, id uuid.UUID) (*entity.ReviewResponse, error) {
				return uc.ApproveResponse(ctx, tenantID, approver, id)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestResponseService(t)
			ctx := context.Background()
			pc := newPublishCase(entity.PlatformFacebook)
			pc.resp.Status = tt.from

			fx.expectLoad(ctx, pc)
			if !tt.wantErr {
				fx.responseRepo.EXPECT().Update(ctx, pc.resp).Return(nil)
			}

			got, err := tt.run(ctx, fx.service, pc.tenantID, pc.resp.ID)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrInvalidResponseTransition))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

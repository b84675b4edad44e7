package impl

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type graphRequest struct {
	path  string
	token string
}

// Two pages of one tenant are connected; a location linked to pg1 must only
// ever talk to pg1 with pg1's token.
func TestReviewService_SyncReviewsForLocation_UsesOnlyTheLocationPage(t *testing.T) {
	var (
		mu       sync.Mutex
		requests []graphRequest
	)
	adapter := graphServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, graphRequest{path: r.URL.Path, token: r.URL.Query().Get("access_token")})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"rating":5,"review_text":"Lovely","created_time":"2024-05-01T10:00:00+0000",
			 "open_graph_story":{"id":"story_1"},"reviewer":{"name":"Jane"}}
		]}`))
	})

	resolverFx := createTestCredentialResolver(t, false)
	fx := createTestReviewService(t, adapter)
	fx.service.targets.resolver = resolverFx.resolver

	ctx := context.Background()
	tenantID := uuid.New()
	loc := &entity.Location{ID: uuid.New(), TenantID: tenantID, FacebookPageID: "pg1"}

	other := testCredential(tenantID, entity.PlatformFacebook, "pg2")
	other.Metadata = entity.CredentialMetadata{PageID: "pg2", PageAccessToken: "page-token-pg2"}
	own := testCredential(tenantID, entity.PlatformFacebook, "pg1")
	own.Metadata = entity.CredentialMetadata{PageID: "pg1", PageAccessToken: "page-token-pg1"}
	stored := []*entity.PlatformCredential{other, own}

	resolverFx.credRepo.EXPECT().
		FindByExternalID(mock.Anything, tenantID, entity.PlatformFacebook, mock.Anything).
		RunAndReturn(func(_ context.Context, _ uuid.UUID, _ entity.Platform, externalID string) (*entity.PlatformCredential, error) {
			for _, c := range stored {
				if c.ExternalID == externalID {
					return c, nil
				}
			}

			return nil, repository.ErrCredentialNotFound
		})
	resolverFx.credRepo.EXPECT().
		ListByPlatform(mock.Anything, tenantID, entity.PlatformFacebook, mock.Anything).
		Return(stored, nil).
		Maybe()
	resolverFx.refresher.EXPECT().CanRefresh(mock.Anything).Return(false).Maybe()

	fx.locationRepo.EXPECT().FindByID(ctx, tenantID, loc.ID).Return(loc, nil)
	fx.expectUpserts(1)
	fx.locationRepo.EXPECT().MarkReviewsSynced(ctx, loc.ID, fixedNow).Return(nil)

	counts, err := fx.service.SyncReviewsForLocation(ctx, tenantID, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, usecase.SyncCounts{entity.PlatformFacebook: 1}, counts)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, requests)
	for _, req := range requests {
		assert.Equal(t, "/v24.0/pg1/ratings", req.path)
		assert.NotContains(t, req.path, "pg2")
		assert.Equal(t, "page-token-pg1", req.token)
		assert.NotEqual(t, "page-token-pg2", req.token)
		assert.NotEqual(t, other.AccessToken, req.token)
	}
}

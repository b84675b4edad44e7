package postgres

import (
	"context"
	"encoding/base64"
	"testing"
	"time"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/infra/crypto"
	"reviewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func seedLocation(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) *entity.Location {
	t.Helper()

	loc := &entity.Location{TenantID: tenantID, Name: name, Status: "active", FacebookPageID: "pg-" + name}
	locationM := fromLocationDomain(loc)
	require.NoError(t, db.Create(locationM).Error)
	loc.ID = locationM.ID

	return loc
}

func newReview(loc *entity.Location, platform entity.Platform, externalID string, rating int) *entity.Review {
	return &entity.Review{
		LocationID:  loc.ID,
		Platform:    platform,
		ExternalID:  externalID,
		AuthorName:  "Jane",
		Rating:      rating,
		Content:     "Great coffee",
		PublishedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
		Metadata:    entity.ReviewMetadata{ReplyTargetID: externalID, Raw: map[string]any{"source": "test"}},
	}
}

func TestReviewRepository_UpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()
	loc := seedLocation(t, db, tenantID, "main")
	repo := NewReviewRepository(db)

	first := newReview(loc, entity.PlatformFacebook, "story_1", 4)
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)

	second := newReview(loc, entity.PlatformFacebook, "story_1", 5)
	second.Content = "Even better the second time"
	require.NoError(t, repo.Upsert(ctx, second))

	var count int64
	require.NoError(t, db.Model(&model.ReviewModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.FindByID(ctx, tenantID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
	assert.Equal(t, "Even better the second time", stored.Content)
	assert.Equal(t, "story_1", stored.Metadata.ReplyTargetID)
	assert.Equal(t, "test", stored.Metadata.Raw["source"])
}

func TestReviewRepository_FindByIDIsTenantScoped(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	loc := seedLocation(t, db, uuid.New(), "main")
	repo := NewReviewRepository(db)

	review := newReview(loc, entity.PlatformFacebook, "story_1", 4)
	require.NoError(t, repo.Upsert(ctx, review))

	_, err := repo.FindByID(ctx, uuid.New(), review.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestReviewRepository_StatsAndFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()
	loc := seedLocation(t, db, tenantID, "main")
	other := seedLocation(t, db, uuid.New(), "other")
	repo := NewReviewRepository(db)
	responses := NewReviewResponseRepository(db)

	for i, rating := range []int{5, 4, 4} {
		require.NoError(t, repo.Upsert(ctx, newReview(loc, entity.PlatformFacebook, "fb-"+string(rune('a'+i)), rating)))
	}
	played := newReview(loc, entity.PlatformGooglePlay, "gp-1", 2)
	played.Content = "Crashes on launch"
	require.NoError(t, repo.Upsert(ctx, played))
	require.NoError(t, repo.Upsert(ctx, newReview(loc, entity.PlatformInstagram, "ig-1", 0)))
	require.NoError(t, repo.Upsert(ctx, newReview(other, entity.PlatformFacebook, "fb-x", 1)))

	require.NoError(t, responses.UpsertForReview(ctx, entity.NewExternalResponse(played.ID, "Fixed in 2.1", time.Now().UTC())))

	stats, err := repo.Stats(ctx, tenantID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.Total)
	// (5+4+4+2)/4 rated reviews
	assert.InDelta(t, 3.8, stats.AverageRating, 0.001)
	assert.Equal(t, map[int]int64{5: 1, 4: 2, 3: 0, 2: 1, 1: 0}, stats.RatingDistribution)
	assert.Equal(t, int64(3), stats.ByPlatform[entity.PlatformFacebook].Count)
	assert.InDelta(t, 4.3, stats.ByPlatform[entity.PlatformFacebook].AverageRating, 0.001)
	assert.Equal(t, int64(1), stats.ByPlatform[entity.PlatformInstagram].Count)
	assert.Zero(t, stats.ByPlatform[entity.PlatformInstagram].AverageRating)

	hasResponse := true
	withResponse, total, err := repo.List(ctx, tenantID, entity.ReviewFilter{HasResponse: &hasResponse})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, withResponse, 1)
	require.NotNil(t, withResponse[0].Response)
	assert.Equal(t, entity.ResponseStatusPublished, withResponse[0].Response.Status)

	searched, total, err := repo.List(ctx, tenantID, entity.ReviewFilter{Search: "CRASHES"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "gp-1", searched[0].ExternalID)

	rated, total, err := repo.List(ctx, tenantID, entity.ReviewFilter{MinRating: 4, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, rated, 2)
}

func TestReviewResponseRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	loc := seedLocation(t, db, uuid.New(), "main")
	reviews := NewReviewRepository(db)
	repo := NewReviewResponseRepository(db)

	review := newReview(loc, entity.PlatformGooglePlay, "gp-1", 3)
	require.NoError(t, reviews.Upsert(ctx, review))

	draft := entity.NewDraftResponse(review.ID, uuid.New(), "Thanks!", false)
	require.NoError(t, repo.Create(ctx, draft))
	assert.ErrorIs(t, repo.Create(ctx, entity.NewDraftResponse(review.ID, uuid.New(), "Again", false)), repository.ErrDuplicateResponse)

	require.NoError(t, draft.Approve(uuid.New(), time.Now().UTC()))
	require.NoError(t, repo.Update(ctx, draft))

	// A platform-side reply replaces the local one.
	external := entity.NewExternalResponse(review.ID, "Thanks from the store", time.Now().UTC())
	require.NoError(t, repo.UpsertForReview(ctx, external))
	require.NoError(t, repo.UpsertForReview(ctx, external))
	assert.Equal(t, draft.ID, external.ID)

	stored, err := repo.FindByID(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ResponseStatusPublished, stored.Status)
	assert.Nil(t, stored.UserID)
	assert.True(t, stored.PlatformSynced)
	assert.Equal(t, "Thanks from the store", stored.Content)

	byReview, err := repo.FindByReviewID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, byReview.ID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrResponseNotFound)
	_, err = repo.FindByReviewID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrResponseNotFound)
}

func TestCredentialRepository_SealsTokensAndUpserts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cipher, err := crypto.NewSecretboxCipher(base64.StdEncoding.EncodeToString([]byte("0123456789abcdef0123456789abcdef")))
	require.NoError(t, err)
	repo := NewCredentialRepository(db, cipher)
	tenantID := uuid.New()

	cred := &entity.PlatformCredential{
		TenantID:    tenantID,
		Platform:    entity.PlatformFacebook,
		ExternalID:  "pg1",
		AccessToken: "user-token",
		Scopes:      entity.FacebookDefaultScopes,
		Metadata:    entity.CredentialMetadata{PageID: "pg1", PageAccessToken: "page-token"},
		IsActive:    true,
	}
	require.NoError(t, repo.Upsert(ctx, cred))
	require.NotEqual(t, uuid.Nil, cred.ID)
	assert.Equal(t, entity.DefaultTokenType, cred.TokenType)

	var raw model.PlatformCredentialModel
	require.NoError(t, db.First(&raw, "id = ?", cred.ID).Error)
	assert.NotEqual(t, "user-token", raw.AccessToken)
	assert.NotEqual(t, "page-token", raw.Metadata["page_access_token"])

	cred.AccessToken = "rotated-token"
	require.NoError(t, repo.Upsert(ctx, &entity.PlatformCredential{
		TenantID:    tenantID,
		Platform:    entity.PlatformFacebook,
		ExternalID:  "pg1",
		AccessToken: "rotated-token",
		Metadata:    entity.CredentialMetadata{PageID: "pg1", PageAccessToken: "page-token-2"},
		IsActive:    true,
	}))

	found, err := repo.FindByExternalID(ctx, tenantID, entity.PlatformFacebook, "pg1")
	require.NoError(t, err)
	assert.Equal(t, cred.ID, found.ID)
	assert.Equal(t, "rotated-token", found.AccessToken)
	assert.Equal(t, "page-token-2", found.Metadata.PageAccessToken)
	assert.Equal(t, "page-token-2", found.EffectiveToken())

	var count int64
	require.NoError(t, db.Model(&model.PlatformCredentialModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCredentialRepository_LegacyRowsAndDeactivation(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCredentialRepository(db, crypto.NewPlaintextCipher())
	tenantID := uuid.New()

	legacy := &entity.PlatformCredential{TenantID: tenantID, Platform: entity.PlatformYouTube, AccessToken: "a", IsActive: true}
	require.NoError(t, repo.Upsert(ctx, legacy))
	again := &entity.PlatformCredential{TenantID: tenantID, Platform: entity.PlatformYouTube, AccessToken: "b", IsActive: true}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, legacy.ID, again.ID)

	second := &entity.PlatformCredential{TenantID: tenantID, Platform: entity.PlatformYouTube, ExternalID: "UC2", AccessToken: "c", IsActive: true}
	require.NoError(t, repo.Upsert(ctx, second))

	active, err := repo.ListByPlatform(ctx, tenantID, entity.PlatformYouTube, true)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, legacy.ID, active[0].ID)
	assert.Equal(t, "b", active[0].AccessToken)

	require.NoError(t, repo.Deactivate(ctx, tenantID, legacy.ID))
	active, err = repo.ListByPlatform(ctx, tenantID, entity.PlatformYouTube, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	all, err := repo.ListByPlatform(ctx, tenantID, entity.PlatformYouTube, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New(), second.ID), repository.ErrCredentialNotFound)

	expiry := time.Now().Add(time.Hour).UTC()
	require.NoError(t, repo.UpdateTokens(ctx, second.ID, "fresh", "", &expiry))
	refreshed, err := repo.FindByID(ctx, tenantID, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "fresh", refreshed.AccessToken)
	require.NotNil(t, refreshed.ExpiresAt)
}

func TestListingRepository_UpsertErrorAndStats(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()
	loc := seedLocation(t, db, tenantID, "main")
	repo := NewListingRepository(db)
	now := time.Now().UTC()

	listing := &entity.Listing{
		LocationID: loc.ID,
		Platform:   entity.PlatformFacebook,
		ExternalID: "pg-main",
		Name:       "Main Street Cafe",
		Phone:      "555-0100",
		Categories: []string{"Cafe"},
		Attributes: map[string]any{"fan_count": float64(12)},
	}
	listing.MarkSynced(now, entity.Discrepancies{"phone": {Local: "555-0199", Platform: "555-0100"}})
	require.NoError(t, repo.Upsert(ctx, listing))
	require.NotEqual(t, uuid.Nil, listing.ID)

	listing.Name = "Main St. Cafe"
	require.NoError(t, repo.Upsert(ctx, listing))

	require.NoError(t, repo.MarkError(ctx, loc.ID, entity.PlatformFacebook, "token expired"))
	stored, err := repo.FindByLocationAndPlatform(ctx, loc.ID, entity.PlatformFacebook)
	require.NoError(t, err)
	assert.Equal(t, listing.ID, stored.ID)
	assert.Equal(t, entity.ListingStatusError, stored.Status)
	assert.Equal(t, "token expired", stored.ErrorMessage)
	assert.Equal(t, "Main St. Cafe", stored.Name)
	assert.Equal(t, "555-0100", stored.Discrepancies["phone"].Platform)

	require.NoError(t, repo.MarkError(ctx, loc.ID, entity.PlatformGoogleMyBusiness, "no credential"))
	require.NoError(t, repo.MarkPublished(ctx, loc.ID, entity.PlatformFacebook, now))

	stats, err := repo.Stats(ctx, tenantID, nil, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalListings)
	assert.Equal(t, int64(1), stats.ByPlatform[entity.PlatformFacebook])
	assert.Equal(t, int64(1), stats.ByStatus[entity.ListingStatusSynced])
	assert.Equal(t, int64(1), stats.ByStatus[entity.ListingStatusError])
	assert.Equal(t, int64(0), stats.ByStatus[entity.ListingStatusPending])
	assert.Equal(t, int64(1), stats.WithDiscrepancies)
	assert.Equal(t, int64(1), stats.RecentlySynced)

	listings, total, err := repo.List(ctx, tenantID, entity.ListingFilter{OnlyDiscrepancies: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, entity.PlatformFacebook, listings[0].Platform)

	_, total, err = repo.List(ctx, uuid.New(), entity.ListingFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestLocationRepository(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	tenantID := uuid.New()
	loc := seedLocation(t, db, tenantID, "main")
	repo := NewLocationRepository(db)

	found, err := repo.FindByID(ctx, tenantID, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, "pg-main", found.FacebookPageID)
	assert.Empty(t, found.GooglePlaceID)

	_, err = repo.FindByID(ctx, uuid.New(), loc.ID)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)

	at := time.Now().UTC()
	require.NoError(t, repo.MarkReviewsSynced(ctx, loc.ID, at))
	found, err = repo.FindByID(ctx, tenantID, loc.ID)
	require.NoError(t, err)
	require.NotNil(t, found.ReviewsSyncedAt)

	ids, err := repo.ListIDsByTenant(ctx, tenantID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{loc.ID}, ids)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	loc := seedLocation(t, db, uuid.New(), "main")
	tm := NewTransactionManager(db, crypto.NewPlaintextCipher())

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewReviewRepository().Upsert(ctx, newReview(loc, entity.PlatformGooglePlay, "gp-1", 4)); err != nil {
			return err
		}

		return repository.ErrReviewNotFound
	})
	require.ErrorIs(t, err, repository.ErrReviewNotFound)

	var count int64
	require.NoError(t, db.Model(&model.ReviewModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

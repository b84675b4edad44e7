package postgres

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var listingIdentity = []clause.Column{{Name: "location_id"}, {Name: "platform"}}

// listingRepository implements the repository.ListingRepository interface.
type listingRepository struct {
	db *gorm.DB
}

// NewListingRepository is the constructor for listingRepository.
func NewListingRepository(db *gorm.DB) repository.ListingRepository {
	return &listingRepository{
		db: db,
	}
}

// Upsert inserts or updates the listing identified by (location, platform).
func (repo *listingRepository) Upsert(ctx context.Context, listing *entity.Listing) error {
	listingM := fromListingDomain(listing)
	listingM.ID = uuid.Nil

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: listingIdentity,
			DoUpdates: clause.AssignmentColumns([]string{
				"external_id", "status", "name", "address", "city", "state", "postal_code", "country",
				"phone", "website", "description", "categories", "business_hours", "latitude", "longitude",
				"attributes", "discrepancies", "last_synced_at", "error_message", "updated_at",
			}),
		}).
		Create(listingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert listing")
	}

	stored, err := repo.FindByLocationAndPlatform(ctx, listing.LocationID, listing.Platform)
	if err != nil {
		return err
	}
	listing.ID = stored.ID
	listing.LastPublishedAt = stored.LastPublishedAt
	listing.CreatedAt = stored.CreatedAt
	listing.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByLocationAndPlatform retrieves the listing of a location on one platform.
func (repo *listingRepository) FindByLocationAndPlatform(ctx context.Context, locationID uuid.UUID, platform entity.Platform) (*entity.Listing, error) {
	var listingM model.ListingModel

	if err := repo.db.WithContext(ctx).
		Where("location_id = ? AND platform = ?", locationID, platform.String()).
		First(&listingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to find listing")
	}

	return toListingDomain(&listingM), nil
}

// MarkError records a failed sync, creating the row when none exists yet.
// Previously synced fields are left untouched.
func (repo *listingRepository) MarkError(ctx context.Context, locationID uuid.UUID, platform entity.Platform, message string) error {
	listingM := fromListingDomain(&entity.Listing{
		LocationID:   locationID,
		Platform:     platform,
		Status:       entity.ListingStatusError,
		ErrorMessage: message,
	})

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   listingIdentity,
			DoUpdates: clause.AssignmentColumns([]string{"status", "error_message", "updated_at"}),
		}).
		Create(listingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark listing as failed")
	}

	return nil
}

// MarkPublished stamps a successful publish.
func (repo *listingRepository) MarkPublished(ctx context.Context, locationID uuid.UUID, platform entity.Platform, at time.Time) error {
	listingM := fromListingDomain(&entity.Listing{
		LocationID:      locationID,
		Platform:        platform,
		Status:          entity.ListingStatusSynced,
		LastPublishedAt: &at,
	})

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   listingIdentity,
			DoUpdates: clause.AssignmentColumns([]string{"status", "last_published_at", "error_message", "updated_at"}),
		}).
		Create(listingM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to mark listing as published")
	}

	return nil
}

// List returns the tenant's listings matching filter.
func (repo *listingRepository) List(ctx context.Context, tenantID uuid.UUID, filter entity.ListingFilter) ([]*entity.Listing, int64, error) {
	query := repo.tenantScope(ctx, tenantID, filter.LocationID)
	if filter.Platform != "" {
		query = query.Where("listings.platform = ?", filter.Platform.String())
	}
	if filter.Status != "" {
		query = query.Where("listings.status = ?", string(filter.Status))
	}
	query = query.Session(&gorm.Session{})

	// Discrepancy bags are JSON; filtering them in Go keeps the query portable.
	var listingModels []*model.ListingModel
	if err := query.
		Select("listings.*").
		Order("listings.updated_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list listings")
	}

	listings := make([]*entity.Listing, 0, len(listingModels))
	for _, listingM := range listingModels {
		listing := toListingDomain(listingM)
		if filter.OnlyDiscrepancies && !listing.HasDiscrepancies() {
			continue
		}
		listings = append(listings, listing)
	}

	total := int64(len(listings))
	start := min(max(filter.Offset, 0), len(listings))
	end := len(listings)
	if filter.Limit > 0 {
		end = min(start+filter.Limit, len(listings))
	}

	return listings[start:end], total, nil
}

// Stats aggregates the tenant's listings on a read replica when one is configured.
func (repo *listingRepository) Stats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID, syncedSince time.Time) (*entity.ListingStats, error) {
	base := repo.tenantScope(ctx, tenantID, locationID).Clauses(dbresolver.Read).Session(&gorm.Session{})

	var rows []struct {
		Platform       string
		Status         string
		Count          int64
		RecentlySynced int64
	}
	if err := base.
		Select("listings.platform AS platform, listings.status AS status, COUNT(*) AS count, "+
			"SUM(CASE WHEN listings.last_synced_at >= ? THEN 1 ELSE 0 END) AS recently_synced", syncedSince).
		Group("listings.platform, listings.status").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate listings")
	}

	var bags []model.ListingModel
	if err := base.Select("listings.discrepancies").Find(&bags).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load listing discrepancies")
	}

	stats := entity.NewListingStats()
	for _, row := range rows {
		stats.TotalListings += row.Count
		stats.ByPlatform[entity.Platform(row.Platform)] += row.Count
		stats.ByStatus[entity.ListingStatus(row.Status)] += row.Count
		stats.RecentlySynced += row.RecentlySynced
	}
	for _, bag := range bags {
		if len(bag.Discrepancies) > 0 {
			stats.WithDiscrepancies++
		}
	}

	return stats, nil
}

func (repo *listingRepository) tenantScope(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) *gorm.DB {
	query := repo.db.WithContext(ctx).
		Model(&model.ListingModel{}).
		Joins("JOIN locations ON locations.id = listings.location_id").
		Where("locations.tenant_id = ?", tenantID)
	if locationID != nil {
		query = query.Where("listings.location_id = ?", *locationID)
	}

	return query
}

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
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindByID retrieves a location owned by tenantID.
func (repo *locationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	return toLocationDomain(&locationM), nil
}

// ListIDsByTenant returns the ids of every location of a tenant.
func (repo *locationRepository) ListIDsByTenant(ctx context.Context, tenantID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list location ids")
	}

	return ids, nil
}

// MarkReviewsSynced records when reviews were last pulled for a location.
func (repo *locationRepository) MarkReviewsSynced(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("id = ?", id).
		Update("reviews_synced_at", at)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to stamp reviews sync time")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

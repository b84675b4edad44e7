package postgres

import (
	"context"
	"math"
	"strings"

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

const defaultPageSize = 50

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Upsert inserts the review or refreshes the row with the same natural key.
func (repo *reviewRepository) Upsert(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)
	// The natural key picks the surviving row, never the caller's id.
	reviewM.ID = uuid.Nil

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "location_id"}, {Name: "platform"}, {Name: "external_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"author_name", "author_image", "rating", "content", "published_at", "metadata", "updated_at",
			}),
		}).
		Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrLocationNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review")
	}

	// The insert may have been turned into an update; read back the surviving row id.
	var stored model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Select("id", "created_at", "updated_at").
		Where("location_id = ? AND platform = ? AND external_id = ?", reviewM.LocationID, reviewM.Platform, reviewM.ExternalID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to read back upserted review")
	}
	review.ID = stored.ID
	review.CreatedAt = stored.CreatedAt
	review.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByID retrieves a review with its response, scoped to tenantID.
func (repo *reviewRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel

	if err := repo.tenantScope(ctx, tenantID).
		Preload("Response").
		Where("reviews.id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by ID")
	}

	return toReviewDomain(&reviewM), nil
}

// List returns the tenant's reviews matching filter, newest first.
func (repo *reviewRepository) List(ctx context.Context, tenantID uuid.UUID, filter entity.ReviewFilter) ([]*entity.Review, int64, error) {
	query := repo.tenantScope(ctx, tenantID)

	if filter.LocationID != nil {
		query = query.Where("reviews.location_id = ?", *filter.LocationID)
	}
	if filter.Platform != "" {
		query = query.Where("reviews.platform = ?", filter.Platform.String())
	}
	if filter.Rating > 0 {
		query = query.Where("reviews.rating = ?", filter.Rating)
	}
	if filter.MinRating > 0 {
		query = query.Where("reviews.rating >= ?", filter.MinRating)
	}
	if filter.HasResponse != nil {
		exists := "EXISTS (SELECT 1 FROM review_responses WHERE review_responses.review_id = reviews.id)"
		if !*filter.HasResponse {
			exists = "NOT " + exists
		}
		query = query.Where(exists)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("(LOWER(reviews.content) LIKE ? OR LOWER(reviews.author_name) LIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("reviews.published_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("reviews.published_at <= ?", *filter.To)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reviews")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	var reviewModels []*model.ReviewModel
	if err := query.
		Select("reviews.*").
		Preload("Response").
		Order("reviews.published_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&reviewModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, total, nil
}

// Stats aggregates the tenant's reviews on a read replica when one is configured.
func (repo *reviewRepository) Stats(ctx context.Context, tenantID uuid.UUID, locationID *uuid.UUID) (*entity.ReviewStats, error) {
	base := repo.tenantScope(ctx, tenantID).Clauses(dbresolver.Read)
	if locationID != nil {
		base = base.Where("reviews.location_id = ?", *locationID)
	}
	base = base.Session(&gorm.Session{})

	var byRating []struct {
		Rating int
		Count  int64
	}
	if err := base.
		Select("reviews.rating AS rating, COUNT(*) AS count").
		Group("reviews.rating").
		Scan(&byRating).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews by rating")
	}

	var byPlatform []struct {
		Platform  string
		Count     int64
		RatingSum int64
		Rated     int64
	}
	if err := base.
		Select("reviews.platform AS platform, COUNT(*) AS count, " +
			"COALESCE(SUM(reviews.rating), 0) AS rating_sum, " +
			"SUM(CASE WHEN reviews.rating > 0 THEN 1 ELSE 0 END) AS rated").
		Group("reviews.platform").
		Scan(&byPlatform).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate reviews by platform")
	}

	stats := entity.NewReviewStats()
	var ratingSum, rated int64
	for _, row := range byRating {
		if row.Rating >= 1 && row.Rating <= 5 {
			stats.RatingDistribution[row.Rating] = row.Count
			ratingSum += int64(row.Rating) * row.Count
			rated += row.Count
		}
	}
	for _, row := range byPlatform {
		stats.Total += row.Count
		stats.ByPlatform[entity.Platform(row.Platform)] = entity.PlatformReviewStats{
			Count:         row.Count,
			AverageRating: roundRating(row.RatingSum, row.Rated),
		}
	}
	stats.AverageRating = roundRating(ratingSum, rated)

	return stats, nil
}

func (repo *reviewRepository) tenantScope(ctx context.Context, tenantID uuid.UUID) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Joins("JOIN locations ON locations.id = reviews.location_id").
		Where("locations.tenant_id = ?", tenantID)
}

// roundRating returns sum/count rounded to one decimal, or 0 without rated reviews.
func roundRating(sum, count int64) float64 {
	if count == 0 {
		return 0
	}

	return math.Round(float64(sum)/float64(count)*10) / 10
}

// reviewResponseRepository implements the repository.ReviewResponseRepository interface.
type reviewResponseRepository struct {
	db *gorm.DB
}

// NewReviewResponseRepository is the constructor for reviewResponseRepository.
func NewReviewResponseRepository(db *gorm.DB) repository.ReviewResponseRepository {
	return &reviewResponseRepository{
		db: db,
	}
}

// Create persists a new response.
func (repo *reviewResponseRepository) Create(ctx context.Context, resp *entity.ReviewResponse) error {
	respM := fromReviewResponseDomain(resp)

	if err := repo.db.WithContext(ctx).Create(respM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateResponse
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrReviewNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review response")
	}

	resp.ID = respM.ID
	resp.CreatedAt = respM.CreatedAt
	resp.UpdatedAt = respM.UpdatedAt

	return nil
}

// Update saves every mutable field of a response.
func (repo *reviewResponseRepository) Update(ctx context.Context, resp *entity.ReviewResponse) error {
	respM := fromReviewResponseDomain(resp)

	result := repo.db.WithContext(ctx).
		Model(&model.ReviewResponseModel{ID: resp.ID}).
		Select("*").
		Omit("id", "review_id", "created_at").
		Updates(respM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review response")
	}
	if result.RowsAffected == 0 {
		return repository.ErrResponseNotFound
	}
	resp.UpdatedAt = respM.UpdatedAt

	return nil
}

// UpsertForReview inserts or replaces the response of resp.ReviewID.
func (repo *reviewResponseRepository) UpsertForReview(ctx context.Context, resp *entity.ReviewResponse) error {
	respM := fromReviewResponseDomain(resp)
	respM.ID = uuid.Nil

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "review_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "content", "status", "published_at", "platform_synced", "updated_at",
			}),
		}).
		Create(respM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert review response")
	}

	var stored model.ReviewResponseModel
	if err := repo.db.WithContext(ctx).
		Select("id", "created_at", "updated_at").
		Where("review_id = ?", respM.ReviewID).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to read back upserted review response")
	}
	resp.ID = stored.ID
	resp.CreatedAt = stored.CreatedAt
	resp.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByID retrieves a response.
func (repo *reviewResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewResponse, error) {
	var respM model.ReviewResponseModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&respM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResponseNotFound
		}

		return nil, errors.Wrap(err, "failed to find review response by ID")
	}

	return toReviewResponseDomain(&respM), nil
}

// FindByReviewID retrieves the response attached to a review.
func (repo *reviewResponseRepository) FindByReviewID(ctx context.Context, reviewID uuid.UUID) (*entity.ReviewResponse, error) {
	var respM model.ReviewResponseModel

	if err := repo.db.WithContext(ctx).
		Where("review_id = ?", reviewID).
		First(&respM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResponseNotFound
		}

		return nil, errors.Wrap(err, "failed to find review response by review ID")
	}

	return toReviewResponseDomain(&respM), nil
}

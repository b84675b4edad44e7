package postgres

import (
	"context"
	"time"

	"reviewhub/internal/domain/entity"
	domainerrors "reviewhub/internal/domain/errors"
	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var credentialUpsertColumns = []string{
	"access_token", "refresh_token", "token_type", "expires_at",
	"scopes", "metadata", "is_active", "updated_at",
}

// credentialRepository implements the repository.CredentialRepository interface.
// Tokens pass through the cipher on every write and read.
type credentialRepository struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB, cipher service.TokenCipher) repository.CredentialRepository {
	return &credentialRepository{
		db:     db,
		cipher: cipher,
	}
}

// Upsert creates or updates the credential identified by (tenant, platform, external id).
func (repo *credentialRepository) Upsert(ctx context.Context, cred *entity.PlatformCredential) error {
	credM := fromCredentialDomain(cred)
	credM.ID = uuid.Nil
	if err := repo.seal(credM); err != nil {
		return err
	}

	var err error
	if credM.ExternalID != nil {
		err = repo.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "platform"}, {Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns(credentialUpsertColumns),
			}).
			Create(credM).Error
	} else {
		// NULL external ids never conflict, so legacy rows are matched explicitly.
		err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing model.PlatformCredentialModel
			findErr := tx.Where("tenant_id = ? AND platform = ? AND external_id IS NULL", credM.TenantID, credM.Platform).
				First(&existing).Error
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return tx.Create(credM).Error
			}
			if findErr != nil {
				return findErr
			}
			credM.ID = existing.ID

			return tx.Model(&existing).Select(credentialUpsertColumns).Updates(credM).Error
		})
	}
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert platform credential")
	}

	stored, err := repo.findOne(ctx, repo.identityScope(credM))
	if err != nil {
		return err
	}
	cred.ID = stored.ID
	cred.TokenType = stored.TokenType
	cred.CreatedAt = stored.CreatedAt
	cred.UpdatedAt = stored.UpdatedAt

	return nil
}

// FindByID retrieves a credential owned by tenantID, active or not.
func (repo *credentialRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.PlatformCredential, error) {
	return repo.findOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("id = ? AND tenant_id = ?", id, tenantID)
	})
}

// FindByExternalID retrieves the credential bound to one platform account, active or not.
func (repo *credentialRepository) FindByExternalID(ctx context.Context, tenantID uuid.UUID, platform entity.Platform, externalID string) (*entity.PlatformCredential, error) {
	return repo.findOne(ctx, func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ? AND platform = ? AND external_id = ?", tenantID, platform.String(), externalID)
	})
}

// ListByPlatform returns the tenant's credentials for a platform, oldest first.
func (repo *credentialRepository) ListByPlatform(ctx context.Context, tenantID uuid.UUID, platform entity.Platform, activeOnly bool) ([]*entity.PlatformCredential, error) {
	query := repo.db.WithContext(ctx).Where("tenant_id = ? AND platform = ?", tenantID, platform.String())
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	return repo.findMany(query.Order("created_at ASC").Order("id ASC"))
}

// ListByTenant returns every credential of a tenant.
func (repo *credentialRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.PlatformCredential, error) {
	return repo.findMany(repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("platform ASC").
		Order("created_at ASC"))
}

// UpdateTokens stores refreshed tokens for a credential.
func (repo *credentialRepository) UpdateTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt *time.Time) error {
	sealedAccess, err := repo.cipher.Seal(accessToken)
	if err != nil {
		return errors.Wrap(err, "failed to seal access token")
	}
	updates := map[string]any{
		"access_token": sealedAccess,
		"expires_at":   expiresAt,
	}
	if refreshToken != "" {
		sealedRefresh, err := repo.cipher.Seal(refreshToken)
		if err != nil {
			return errors.Wrap(err, "failed to seal refresh token")
		}
		updates["refresh_token"] = sealedRefresh
	}

	result := repo.db.WithContext(ctx).
		Model(&model.PlatformCredentialModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update credential tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

// Deactivate soft-disconnects a credential.
func (repo *credentialRepository) Deactivate(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlatformCredentialModel{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate credential")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCredentialNotFound
	}

	return nil
}

func (repo *credentialRepository) identityScope(credM *model.PlatformCredentialModel) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("tenant_id = ? AND platform = ?", credM.TenantID, credM.Platform)
		if credM.ExternalID == nil {
			return db.Where("external_id IS NULL")
		}

		return db.Where("external_id = ?", *credM.ExternalID)
	}
}

func (repo *credentialRepository) findOne(ctx context.Context, scope func(*gorm.DB) *gorm.DB) (*entity.PlatformCredential, error) {
	var credM model.PlatformCredentialModel

	if err := repo.db.WithContext(ctx).Scopes(scope).First(&credM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.Wrap(err, "failed to find platform credential")
	}
	if err := repo.open(&credM); err != nil {
		return nil, err
	}

	return toCredentialDomain(&credM), nil
}

func (repo *credentialRepository) findMany(query *gorm.DB) ([]*entity.PlatformCredential, error) {
	var credModels []*model.PlatformCredentialModel

	if err := query.Find(&credModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list platform credentials")
	}

	creds := make([]*entity.PlatformCredential, 0, len(credModels))
	for _, credM := range credModels {
		if err := repo.open(credM); err != nil {
			return nil, err
		}
		creds = append(creds, toCredentialDomain(credM))
	}

	return creds, nil
}

func (repo *credentialRepository) seal(credM *model.PlatformCredentialModel) error {
	var err error
	if credM.AccessToken, err = repo.cipher.Seal(credM.AccessToken); err != nil {
		return errors.Wrap(err, "failed to seal access token")
	}
	if credM.RefreshToken, err = repo.cipher.Seal(credM.RefreshToken); err != nil {
		return errors.Wrap(err, "failed to seal refresh token")
	}
	if pageToken, ok := credM.Metadata["page_access_token"].(string); ok && pageToken != "" {
		sealed, err := repo.cipher.Seal(pageToken)
		if err != nil {
			return errors.Wrap(err, "failed to seal page access token")
		}
		credM.Metadata["page_access_token"] = sealed
	}

	return nil
}

func (repo *credentialRepository) open(credM *model.PlatformCredentialModel) error {
	var err error
	if credM.AccessToken, err = repo.cipher.Open(credM.AccessToken); err != nil {
		return errors.Wrapf(err, "failed to open access token of credential %s", credM.ID)
	}
	if credM.RefreshToken, err = repo.cipher.Open(credM.RefreshToken); err != nil {
		return errors.Wrapf(err, "failed to open refresh token of credential %s", credM.ID)
	}
	if pageToken, ok := credM.Metadata["page_access_token"].(string); ok && pageToken != "" {
		opened, err := repo.cipher.Open(pageToken)
		if err != nil {
			return errors.Wrapf(err, "failed to open page access token of credential %s", credM.ID)
		}
		credM.Metadata["page_access_token"] = opened
	}

	return nil
}

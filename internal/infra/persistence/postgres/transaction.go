// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"reviewhub/internal/domain/repository"
	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	cipher service.TokenCipher
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
	cipher service.TokenCipher
}

// NewReviewRepository creates a review repository bound to the transaction.
func (f *gormRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return NewReviewRepository(f.tx)
}

// NewReviewResponseRepository creates a review response repository bound to the transaction.
func (f *gormRepositoryFactory) NewReviewResponseRepository() repository.ReviewResponseRepository {
	return NewReviewResponseRepository(f.tx)
}

// NewCredentialRepository creates a credential repository bound to the transaction.
func (f *gormRepositoryFactory) NewCredentialRepository() repository.CredentialRepository {
	return NewCredentialRepository(f.tx, f.cipher)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cipher service.TokenCipher) repository.TransactionManager {
	return &gormTransactionManager{db: db, cipher: cipher}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx, cipher: tm.cipher}

	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}
		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// Package postgres is the GORM persistence layer. Postgres is the primary store;
// SQLite serves local runs and tests.
package postgres

import (
	"context"

	"parkospace/internal/domain/repository"
	"parkospace/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f *txRepositories) NewListingRepository() repository.ListingRepository {
	return NewListingRepository(f.tx)
}

func (f *txRepositories) NewOwnerRepository() repository.OwnerRepository {
	return NewOwnerRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, including on panic.
// Errors returned by fn are passed through unchanged so domain errors keep their identity.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&txRepositories{tx: tx})

		return fnErr
	})

	switch {
	case err == nil:
		return nil
	case fnErr != nil && errors.Is(err, fnErr):
		return fnErr
	case fnErr != nil:
		return errors.Wrapf(fnErr, "rollback failed: %v", err)
	default:
		return errors.Wrap(err, "transaction")
	}
}

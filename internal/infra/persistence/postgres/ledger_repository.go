// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"courtside/internal/domain/repository"
	"courtside/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ledgerRepository implements the repository.LedgerRepository interface on
// top of the dispatch_ledger table. The delivery key is the table's primary
// key, so reservation is a plain insert and a duplicate surfaces as a
// unique-constraint violation without any read-then-write window.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Reserve claims the delivery key until expiresAt. Exactly one of two
// concurrent reservations for the same key succeeds.
func (repo *ledgerRepository) Reserve(ctx context.Context, key string, expiresAt time.Time) error {
	entry := &model.LedgerEntryModel{
		Key:       key,
		ExpiresAt: expiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(entry).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReservation
		}

		return errors.Wrap(err, "failed to reserve delivery key")
	}

	return nil
}

// PurgeExpired removes reservations that expired before now, bounding the
// ledger's growth to roughly one deduplication window of keys.
func (repo *ledgerRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.LedgerEntryModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge expired ledger entries")
	}

	return result.RowsAffected, nil
}

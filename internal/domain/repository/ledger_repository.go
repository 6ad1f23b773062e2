// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrDuplicateReservation is returned when a delivery key has already been
// reserved, meaning an equivalent delivery is in flight or recently completed.
var ErrDuplicateReservation = errors.New("delivery key already reserved")

// LedgerRepository is the idempotency and deduplication ledger. Reservation
// must be atomic: of two concurrent Reserve calls for the same key, exactly
// one succeeds and the other observes ErrDuplicateReservation.
type LedgerRepository interface {
	// Reserve claims the delivery key until expiresAt. Implemented as a
	// unique-key insert (postgres) or SETNX (redis); never read-then-write.
	Reserve(ctx context.Context, key string, expiresAt time.Time) error

	// PurgeExpired removes reservations that expired before now, bounding
	// storage growth. Returns the number of entries removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

package ledger

import (
	"context"
	"time"

	"courtside/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "dispatch:ledger:"

// redisLedger implements repository.LedgerRepository with SETNX. The TTL
// carries the expiry, so redis evicts reservations on its own and
// PurgeExpired has nothing to do.
type redisLedger struct {
	client *redis.Client
}

// NewRedisLedger is the constructor for redisLedger.
func NewRedisLedger(client *redis.Client) repository.LedgerRepository {
	return &redisLedger{
		client: client,
	}
}

// Reserve claims the delivery key until expiresAt. SETNX is atomic on the
// server, so of two concurrent reservations exactly one wins.
func (l *redisLedger) Reserve(ctx context.Context, key string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// An already-expired reservation would be evicted immediately and
		// defeat deduplication; treat it as a caller bug.
		return errors.New("reservation expiry is in the past")
	}

	ok, err := l.client.SetNX(ctx, keyPrefix+key, 1, ttl).Result()
	if err != nil {
		return errors.Wrap(err, "failed to reserve delivery key")
	}
	if !ok {
		return repository.ErrDuplicateReservation
	}

	return nil
}

// PurgeExpired is a no-op: redis removes reservations via key TTL.
func (l *redisLedger) PurgeExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

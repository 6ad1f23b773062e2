// Package ledger wires the idempotency ledger backend selected by
// configuration: unique-key inserts on PostgreSQL or SETNX on Redis.
package ledger

import (
	"context"
	"log/slog"

	"courtside/config"
	"courtside/internal/domain/constants"
	"courtside/internal/domain/repository"
	"courtside/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// LedgerParams holds dependencies for LedgerRepository, injected by Fx
type LedgerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// NewLedgerRepository creates a LedgerRepository based on configuration.
// Defaults to the PostgreSQL backend so a single-store deployment needs no
// extra configuration.
func NewLedgerRepository(params LedgerParams) (repository.LedgerRepository, error) {
	cfg := params.Config.Ledger
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.LedgerProviderPostgres {
		logger.Info("Using PostgreSQL ledger backend")

		return postgres.NewLedgerRepository(params.DB), nil
	}

	switch cfg.Provider {
	case constants.LedgerProviderRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis ledger provider")
		}
		logger.Info("Using Redis ledger backend",
			slog.String("addr", cfg.Redis.Addr),
		)

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := client.Ping(params.Ctx).Err(); err != nil {
			return nil, errors.Wrap(err, "failed to connect to redis")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing Redis ledger client")

				return client.Close()
			},
		})

		return NewRedisLedger(client), nil

	default:
		return nil, errors.Errorf("unknown ledger provider: %s", cfg.Provider)
	}
}

// Module provides the ledger FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLedgerRepository),
)

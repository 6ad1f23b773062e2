package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"courtside/config"
	"courtside/internal/delivery"
	"courtside/internal/delivery/worker"
	"courtside/internal/delivery/worker/handler"
	"courtside/internal/domain/service"
	"courtside/internal/infra/channel"
	"courtside/internal/infra/ledger"
	logs "courtside/internal/infra/log"
	"courtside/internal/infra/persistence/postgres"
	"courtside/internal/infra/pubsub"
	"courtside/internal/infra/push"
	"courtside/internal/usecase"
	"courtside/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startSweeper,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		ledger.Module,
		fx.Provide(
			postgres.NewRegistrationRepository,
			postgres.NewDispatchRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newPushProvider,
			newChannelAdapters,
		),
	)
}

// newPushProvider creates the FCM-backed push provider with dependency injection.
// The worker delivers and sweeps through the provider, so a missing Firebase
// config fails at startup rather than on the first dispatch.
func newPushProvider(ctx context.Context, cfg *config.Config) (service.PushProvider, error) {
	if cfg.Firebase == nil {
		return nil, errors.New("firebase config is required for the dispatch worker")
	}

	provider, err := push.NewFCMProvider(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create push provider: %w", err)
	}

	return provider, nil
}

// newChannelAdapters assembles the adapters in their fixed dispatch order
func newChannelAdapters(provider service.PushProvider, logger *slog.Logger) []service.ChannelAdapter {
	return []service.ChannelAdapter{
		channel.NewPushAdapter(provider, logger),
		channel.NewInAppAdapter(logger),
		channel.NewWebPushAdapter(provider, logger),
	}
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRecipientResolver,
			impl.NewDispatchService,
			impl.NewReaperService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewSweepHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSweeper runs the reaper on its configured cadence until shutdown
func startSweeper(lc fx.Lifecycle, cfg *config.Config, reaperUC usecase.ReaperUsecase, logger *slog.Logger) {
	sweepCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)

				ticker := time.NewTicker(cfg.Sweep.Interval)
				defer ticker.Stop()

				for {
					select {
					case <-sweepCtx.Done():
						return
					case <-ticker.C:
						report, err := reaperUC.Sweep(sweepCtx)
						if err != nil {
							logger.Error("Scheduled sweep failed", slog.Any("error", err))

							continue
						}

						logger.Info("Scheduled sweep completed",
							slog.Int("addresses_checked", report.AddressesChecked),
							slog.Int("addresses_reaped", report.AddressesReaped),
							slog.Int64("ledger_purged", report.LedgerPurged),
							slog.Int64("deliveries_purged", report.DeliveriesPurged),
						)
					}
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()

			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

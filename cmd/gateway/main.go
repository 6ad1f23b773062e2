package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"courtside/config"
	"courtside/internal/delivery"
	"courtside/internal/delivery/http"
	"courtside/internal/delivery/http/middleware"
	"courtside/internal/delivery/http/router/handler"
	"courtside/internal/domain/service"
	"courtside/internal/infra/auth"
	"courtside/internal/infra/channel"
	"courtside/internal/infra/ledger"
	logs "courtside/internal/infra/log"
	"courtside/internal/infra/persistence/postgres"
	"courtside/internal/infra/pubsub"
	"courtside/internal/infra/push"
	"courtside/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
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
			auth.NewJWTService,
			newPushProvider,
			newChannelAdapters,
		),
	)
}

// newPushProvider creates the FCM-backed push provider with dependency injection
func newPushProvider(ctx context.Context, cfg *config.Config) (service.PushProvider, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
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
			impl.NewRegistrationService,
			impl.NewInboxService,
			impl.NewRecipientResolver,
			impl.NewDispatchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRegistrationHandler,
			handler.NewInboxHandler,
			handler.NewIntentHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

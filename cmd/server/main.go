package main

import (
	"context"
	"log/slog"
	"os"

	"reviewhub/config"
	"reviewhub/internal/delivery"
	"reviewhub/internal/delivery/api"
	"reviewhub/internal/delivery/api/middleware"
	"reviewhub/internal/delivery/api/router/handler"
	"reviewhub/internal/infra/auth"
	"reviewhub/internal/infra/auth/google"
	"reviewhub/internal/infra/crypto"
	logs "reviewhub/internal/infra/log"
	"reviewhub/internal/infra/persistence/postgres"
	"reviewhub/internal/infra/platform"
	"reviewhub/internal/infra/pubsub"
	"reviewhub/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			crypto.NewTokenCipher,
		),
		platform.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewCredentialRepository,
			postgres.NewReviewRepository,
			postgres.NewReviewResponseRepository,
			postgres.NewListingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewRefresher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialResolver,
			impl.NewReviewService,
			impl.NewResponseService,
			impl.NewListingService,
			impl.NewCredentialService,
			impl.NewSyncJobService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewReviewHandler,
			handler.NewListingHandler,
			handler.NewCredentialHandler,
			handler.NewSyncJobHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"reviewhub/config"
	"reviewhub/internal/delivery"
	"reviewhub/internal/delivery/worker"
	"reviewhub/internal/delivery/worker/handler"
	"reviewhub/internal/infra/auth/google"
	"reviewhub/internal/infra/crypto"
	logs "reviewhub/internal/infra/log"
	"reviewhub/internal/infra/persistence/postgres"
	"reviewhub/internal/infra/platform"
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
		injectHandler(),
		injectDelivery(),
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewCredentialRepository,
			postgres.NewReviewRepository,
			postgres.NewListingRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			google.NewRefresher,
		),
	)
}

// The worker only runs syncs; publishing and scheduling stay with the API server.
func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialResolver,
			impl.NewReviewService,
			impl.NewListingService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
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

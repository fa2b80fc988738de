package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"cryptopress/config"
	"cryptopress/internal/delivery"
	"cryptopress/internal/delivery/http"
	"cryptopress/internal/delivery/http/middleware"
	"cryptopress/internal/delivery/http/router/handler"
	"cryptopress/internal/delivery/worker"
	workerhandler "cryptopress/internal/delivery/worker/handler"
	"cryptopress/internal/infra/auth"
	logs "cryptopress/internal/infra/log"
	"cryptopress/internal/infra/mail"
	"cryptopress/internal/infra/persistence/postgres"
	"cryptopress/internal/infra/pubsub"
	"cryptopress/internal/usecase"
	"cryptopress/internal/usecase/impl"

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
			startTokenSweeper,
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
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTCodec,
			mail.NewSMTPMailer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionOrchestrator,
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
			handler.NewAuthHandler,
			workerhandler.NewMailHandler,
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

// startTokenSweeper periodically flags ledger rows whose expiry has passed.
func startTokenSweeper(lc fx.Lifecycle, orchestrator usecase.SessionOrchestrator, logger *slog.Logger) {
	sweepCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(time.Hour)
				defer ticker.Stop()

				for {
					select {
					case <-sweepCtx.Done():
						return
					case <-ticker.C:
						swept, err := orchestrator.SweepExpiredTokens(sweepCtx)
						if err != nil {
							logger.Error("Token sweep failed", slog.Any("error", err))

							continue
						}
						if swept > 0 {
							logger.Info("Marked expired tokens", slog.Int64("count", swept))
						}
					}
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}

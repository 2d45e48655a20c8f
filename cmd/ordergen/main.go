package main

import (
	"context"
	"log/slog"

	"ordergen/config"
	"ordergen/internal/delivery/stream"
	"ordergen/internal/domain/repository"
	"ordergen/internal/infra/catalog"
	logs "ordergen/internal/infra/log"
	"ordergen/internal/usecase"
	"ordergen/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Logger *slog.Logger
	Writer *stream.Writer
	Source usecase.OrderUsecase
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			newCatalogRepository,
			impl.NewOrderGenerator,
			stream.New,
		),
		fx.Invoke(
			run,
		),
	).Run()
}

func newCatalogRepository(cfg *config.Config) repository.CatalogRepository {
	return catalog.NewLoader(cfg.Catalog.Path)
}

// run drives one full generation pass and shuts the app down when the
// stream is drained. Interrupting the process stops the stream early
// through the lifecycle hook.
func run(params runParams) {
	ctx, cancel := context.WithCancel(context.Background())

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := params.Writer.Run(ctx, params.Source); err != nil {
					params.Logger.Error("order stream failed", slog.Any("error", err))
				}
				if err := params.Shutdowner.Shutdown(); err != nil {
					params.Logger.Error("shutdown failed", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return params.Writer.Close()
		},
	})
}

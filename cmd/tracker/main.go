package main

import (
	"context"

	fxmodules "chess-tracker/internal/fx"
	"chess-tracker/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(runTracker),
	).Run()
}

func runTracker(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	tracker *service.Tracker,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := tracker.Run(context.Background()); err != nil {
					logger.Error().Err(err).Msg("run failed")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
					return
				}
				_ = shutdowner.Shutdown()
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("tracker exited")
			return nil
		},
	})
}

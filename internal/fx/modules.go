package fx

import (
	"chess-tracker/internal/config"
	"chess-tracker/internal/logger"
	"chess-tracker/internal/report"
	"chess-tracker/internal/service"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// report collaborator
	fx.Provide(report.NewRenderer),
	// svc
	fx.Provide(service.NewTracker),
)

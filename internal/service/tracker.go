package service

import (
	"context"
	"os"

	"chess-tracker/internal/config"
	"chess-tracker/internal/engine"
	"chess-tracker/internal/loader"
	"chess-tracker/internal/logger"
	"chess-tracker/internal/registry"
	"chess-tracker/internal/report"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Tracker runs the whole pipeline once: load the games log, feed it
// through the rating engine, then emit the report, the JSON exports and
// the console summary.
type Tracker struct {
	cfg      *config.Config
	renderer *report.Renderer
	logger   zerolog.Logger
}

func NewTracker(cfg *config.Config, renderer *report.Renderer, logger zerolog.Logger) *Tracker {
	return &Tracker{cfg: cfg, renderer: renderer, logger: logger}
}

func (t *Tracker) Run(ctx context.Context) error {
	runID, err := gonanoid.New()
	if err != nil {
		return err
	}

	log := logger.SetLevel(t.logger, t.cfg.LogLevel).
		With().Str("run_id", runID).Logger()

	lines, err := loader.ReadLines(t.cfg.GamesFile)
	if err != nil {
		log.Error().Err(err).Str("path", t.cfg.GamesFile).Msg("failed to load games file")
		return err
	}
	log.Info().Int("lines", len(lines)).Str("path", t.cfg.GamesFile).Msg("games file loaded")

	// One registry per run; the engine mutates it strictly in log order.
	reg := registry.New(log)
	eng := engine.New(reg, log)
	eng.ProcessAll(lines)

	players := reg.Players()
	games := eng.Games()
	log.Info().Int("games", len(games)).Int("players", len(players)).Msg("log processed")

	if err := ctx.Err(); err != nil {
		return err
	}

	// Both outputs only read the final immutable state, so they can be
	// written concurrently.
	g := new(errgroup.Group)
	g.Go(func() error {
		return t.renderer.WriteHTML(t.cfg.ReportFile, runID, players, games)
	})
	g.Go(func() error {
		return t.renderer.WriteJSON(t.cfg.ExportDir, players, games)
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to write outputs")
		return err
	}

	t.renderer.PrintSummary(os.Stdout, players, games)
	return nil
}

// Package registry owns the name-to-player mapping for a single run.
package registry

import (
	"chess-tracker/internal/constants"
	"chess-tracker/internal/domain"

	"github.com/rs/zerolog"
)

// Registry lazily creates player state on first appearance. Names are
// matched exactly after trimming; differently-cased spellings are distinct
// players. Construct one registry per run and pass it into the engine.
type Registry struct {
	players map[string]*domain.Player
	logger  zerolog.Logger
}

func New(logger zerolog.Logger) *Registry {
	return &Registry{
		players: make(map[string]*domain.Player),
		logger:  logger,
	}
}

// Ensure returns the mutable record for name, creating it with the fixed
// starting values on first sight. Idempotent; there is no removal.
func (r *Registry) Ensure(name string) *domain.Player {
	if p, ok := r.players[name]; ok {
		return p
	}

	p := &domain.Player{
		Name:             name,
		Elo:              constants.InitialElo,
		GlickoRating:     constants.InitialGlickoRating,
		GlickoDeviation:  constants.InitialGlickoDeviation,
		GlickoVolatility: constants.InitialGlickoVolatility,
		USCFRating:       constants.InitialUSCFRating,
		Opponents:        make(map[string]*domain.OpponentTally),
		HighestElo:       constants.InitialElo,
		LowestElo:        constants.InitialElo,
		HighestGlicko:    constants.InitialGlickoRating,
		LowestGlicko:     constants.InitialGlickoRating,
		HighestUSCF:      constants.InitialUSCFRating,
		LowestUSCF:       constants.InitialUSCFRating,
	}
	r.players[name] = p

	r.logger.Debug().Str("player", name).Msg("registered new player")
	return p
}

// Get looks a player up without creating one.
func (r *Registry) Get(name string) (*domain.Player, bool) {
	p, ok := r.players[name]
	return p, ok
}

// Players exposes the full mapping for report collaborators. Callers must
// treat it as read-only.
func (r *Registry) Players() map[string]*domain.Player {
	return r.players
}

func (r *Registry) Len() int {
	return len(r.players)
}

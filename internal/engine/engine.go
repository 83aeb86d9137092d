// Package engine processes game log lines in order and keeps every
// per-player statistic consistent game by game.
package engine

import (
	"fmt"
	"sort"

	"chess-tracker/internal/constants"
	"chess-tracker/internal/domain"
	"chess-tracker/internal/parser"
	"chess-tracker/internal/rating"
	"chess-tracker/internal/registry"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine applies parsed games to the registry and accumulates the ordered
// game record sequence. Games must be fed strictly in log order: later
// expected scores depend on every earlier result, so processing is
// single-threaded by contract.
type Engine struct {
	registry *registry.Registry
	logger   zerolog.Logger
	games    []*domain.GameRecord
	lineNo   int
}

func New(reg *registry.Registry, logger zerolog.Logger) *Engine {
	return &Engine{registry: reg, logger: logger}
}

// ProcessLine consumes one raw log line. Every line advances the sequence
// number, but only parsable ones mutate state and yield a record;
// malformed lines are dropped silently by design.
func (e *Engine) ProcessLine(line string) *domain.GameRecord {
	e.lineNo++

	game, ok := parser.ParseLine(line)
	if !ok {
		e.logger.Debug().Int("line", e.lineNo).Msg("skipping unparsable line")
		return nil
	}

	return e.apply(game, e.lineNo)
}

// ProcessAll feeds every line through ProcessLine in order.
func (e *Engine) ProcessAll(lines []string) {
	for _, line := range lines {
		e.ProcessLine(line)
	}
}

// Games returns the ordered records of every successfully processed game.
func (e *Engine) Games() []*domain.GameRecord {
	return e.games
}

func (e *Engine) apply(game *parser.Game, number int) *domain.GameRecord {
	white := e.registry.Ensure(game.White)
	black := e.registry.Ensure(game.Black)

	whiteBefore := white.Elo
	blackBefore := black.Elo

	// All three systems update independently from the same pre-game
	// snapshots; both sides' deltas are computed before either applies.
	whiteChange := rating.EloDelta(whiteBefore, blackBefore, game.WhiteScore)
	blackChange := rating.EloDelta(blackBefore, whiteBefore, game.BlackScore)
	white.Elo += whiteChange
	black.Elo += blackChange

	e.updateGlicko(white, black, game.WhiteScore)
	e.updateUSCF(white, black, game.WhiteScore)

	updateExtremes(white)
	updateExtremes(black)

	e.recordOutcome(white, black, game)
	e.recordHeadToHead(white, black, game)
	e.recordNotable(white, black, whiteBefore, blackBefore, game, number)

	e.appendHistory(white, game, number)
	e.appendHistory(black, game, number)

	record := &domain.GameRecord{
		ID:          uuid.New().String(),
		Number:      number,
		White:       game.White,
		Black:       game.Black,
		Result:      game.Result,
		Date:        game.Date,
		DateRaw:     game.DateRaw,
		WhiteBefore: whiteBefore,
		BlackBefore: blackBefore,
		WhiteAfter:  white.Elo,
		BlackAfter:  black.Elo,
		WhiteChange: whiteChange,
		BlackChange: blackChange,
	}
	e.games = append(e.games, record)

	e.logger.Debug().
		Int("game", number).
		Str("white", game.White).
		Str("black", game.Black).
		Str("result", game.Result).
		Int("white_change", whiteChange).
		Int("black_change", blackChange).
		Msg("game processed")

	return record
}

func (e *Engine) updateGlicko(white, black *domain.Player, whiteScore float64) {
	newWhite, newBlack := rating.UpdateGlicko(
		rating.Glicko{Rating: white.GlickoRating, Deviation: white.GlickoDeviation, Volatility: white.GlickoVolatility},
		rating.Glicko{Rating: black.GlickoRating, Deviation: black.GlickoDeviation, Volatility: black.GlickoVolatility},
		whiteScore,
	)

	white.GlickoRating = newWhite.Rating
	white.GlickoDeviation = newWhite.Deviation
	white.GlickoVolatility = newWhite.Volatility

	black.GlickoRating = newBlack.Rating
	black.GlickoDeviation = newBlack.Deviation
	black.GlickoVolatility = newBlack.Volatility
}

func (e *Engine) updateUSCF(white, black *domain.Player, whiteScore float64) {
	whiteK := rating.USCFKFactor(white.USCFGames, white.USCFRating)
	blackK := rating.USCFKFactor(black.USCFGames, black.USCFRating)

	whiteDelta := rating.USCFDelta(white.USCFRating, black.USCFRating, whiteScore, whiteK)
	blackDelta := rating.USCFDelta(black.USCFRating, white.USCFRating, 1-whiteScore, blackK)

	white.USCFRating += whiteDelta
	black.USCFRating += blackDelta

	// The USCF game counters drive K tiering only; they are independent
	// of the overall game counters.
	white.USCFGames++
	black.USCFGames++
}

func updateExtremes(p *domain.Player) {
	if p.Elo > p.HighestElo {
		p.HighestElo = p.Elo
	}
	if p.Elo < p.LowestElo {
		p.LowestElo = p.Elo
	}
	if p.GlickoRating > p.HighestGlicko {
		p.HighestGlicko = p.GlickoRating
	}
	if p.GlickoRating < p.LowestGlicko {
		p.LowestGlicko = p.GlickoRating
	}
	if p.USCFRating > p.HighestUSCF {
		p.HighestUSCF = p.USCFRating
	}
	if p.USCFRating < p.LowestUSCF {
		p.LowestUSCF = p.USCFRating
	}
}

func (e *Engine) recordOutcome(white, black *domain.Player, game *parser.Game) {
	white.Games++
	black.Games++

	switch {
	case game.WhiteScore == 1:
		white.Wins++
		black.Losses++
		advanceStreak(white, true)
		advanceStreak(black, false)
	case game.BlackScore == 1:
		black.Wins++
		white.Losses++
		advanceStreak(black, true)
		advanceStreak(white, false)
	default:
		white.Draws++
		black.Draws++
		advanceStreak(white, false)
		advanceStreak(black, false)
	}
}

func advanceStreak(p *domain.Player, won bool) {
	if !won {
		p.WinStreak = 0
		return
	}
	p.WinStreak++
	if p.WinStreak > p.BestWinStreak {
		p.BestWinStreak = p.WinStreak
	}
}

func (e *Engine) recordHeadToHead(white, black *domain.Player, game *parser.Game) {
	whiteTally := ensureTally(white, black.Name)
	blackTally := ensureTally(black, white.Name)

	whiteTally.Games++
	blackTally.Games++

	switch {
	case game.WhiteScore == 1:
		whiteTally.Wins++
		blackTally.Losses++
	case game.BlackScore == 1:
		whiteTally.Losses++
		blackTally.Wins++
	default:
		whiteTally.Draws++
		blackTally.Draws++
	}
}

func ensureTally(p *domain.Player, opponent string) *domain.OpponentTally {
	tally, ok := p.Opponents[opponent]
	if !ok {
		tally = &domain.OpponentTally{}
		p.Opponents[opponent] = tally
	}
	return tally
}

// recordNotable tracks upset results by pre-game ELO gap: the winner gets
// a biggest-win entry only when they were rated below the loser, and the
// loser a biggest-upset entry only when rated above the winner. Draws
// record nothing.
func (e *Engine) recordNotable(white, black *domain.Player, whiteBefore, blackBefore int, game *parser.Game, number int) {
	gap := whiteBefore - blackBefore
	if gap < 0 {
		gap = -gap
	}

	var winner, loser *domain.Player
	var winnerBefore, loserBefore int

	switch {
	case game.WhiteScore == 1:
		winner, loser = white, black
		winnerBefore, loserBefore = whiteBefore, blackBefore
	case game.BlackScore == 1:
		winner, loser = black, white
		winnerBefore, loserBefore = blackBefore, whiteBefore
	default:
		return
	}

	if winnerBefore >= loserBefore {
		return
	}

	winner.BiggestWins = appendNotable(winner.BiggestWins, domain.NotableResult{
		Opponent:       loser.Name,
		RatingDiff:     gap,
		OwnRating:      winnerBefore,
		OpponentRating: loserBefore,
		GameNumber:     number,
		Date:           game.Date,
		Result:         "Win",
	})

	loser.BiggestUpsets = appendNotable(loser.BiggestUpsets, domain.NotableResult{
		Opponent:       winner.Name,
		RatingDiff:     gap,
		OwnRating:      loserBefore,
		OpponentRating: winnerBefore,
		GameNumber:     number,
		Date:           game.Date,
		Result:         "Loss",
	})
}

// appendNotable keeps the list sorted descending by rating gap and bounded
// to the top five. The stable sort keeps earlier entries ahead on ties.
func appendNotable(list []domain.NotableResult, result domain.NotableResult) []domain.NotableResult {
	list = append(list, result)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].RatingDiff > list[j].RatingDiff
	})
	if len(list) > constants.NotableResultLimit {
		list = list[:constants.NotableResultLimit]
	}
	return list
}

func (e *Engine) appendHistory(p *domain.Player, game *parser.Game, number int) {
	date := game.Date
	if date == "" {
		date = fmt.Sprintf("Game %d", number)
	}

	p.History = append(p.History, domain.HistoryEntry{
		Game:   number,
		Date:   date,
		Elo:    p.Elo,
		Glicko: p.GlickoRating,
		USCF:   p.USCFRating,
	})
}

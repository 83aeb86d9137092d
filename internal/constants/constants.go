package constants

const (
	InitialElo              = 1200
	InitialGlickoRating     = 1200
	InitialGlickoDeviation  = 350.0
	InitialGlickoVolatility = 0.06
	InitialUSCFRating       = 1200
)

const (
	// EloKFactor is the fixed K used by the plain ELO system for every game.
	EloKFactor = 32

	// GlickoScale converts between the display rating and the internal
	// Glicko-2 scale: mu = (rating - 1200) / GlickoScale.
	GlickoScale         = 173.7178
	GlickoMaxVolatility = 0.2
)

// USCF K-factor tiers, keyed off the player's own pre-game USCF state.
const (
	USCFProvisionalGames  = 20
	USCFProvisionalK      = 40
	USCFStandardK         = 32
	USCFMasterK           = 24
	USCFMasterRatingFloor = 2100
)

const (
	// NotableResultLimit bounds the biggest-wins and biggest-upsets lists.
	NotableResultLimit = 5

	// SummaryTopPlayers is how many leaders the console summary prints.
	SummaryTopPlayers = 5
)

// Package rating implements the three independent rating systems the
// engine runs side by side: fixed-K ELO, a simplified one-shot Glicko-2,
// and USCF-style ELO with a tiered K-factor. All update functions are pure
// and consume pre-game values only.
package rating

import (
	"math"

	"chess-tracker/internal/constants"
)

// ExpectedScore is the logistic win expectation of a player rated ratingA
// against one rated ratingB.
func ExpectedScore(ratingA, ratingB float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (ratingB-ratingA)/400.0))
}

// EloDelta is the signed rating change for a player with the given score
// (1 win, 0.5 draw, 0 loss) at the fixed club K-factor. Both sides of a
// game must be computed from the same pre-game ratings before either is
// applied.
func EloDelta(ratingA, ratingB int, score float64) int {
	expected := ExpectedScore(float64(ratingA), float64(ratingB))
	return int(math.Round(constants.EloKFactor * (score - expected)))
}

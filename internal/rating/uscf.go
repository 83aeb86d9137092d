package rating

import (
	"math"

	"chess-tracker/internal/constants"
)

// USCFKFactor picks the K tier from the player's own pre-game USCF state:
// provisional players (fewer than 20 USCF-rated games) move fastest, then
// regular players, then masters at 2100 and above.
func USCFKFactor(uscfGames, uscfRating int) int {
	if uscfGames < constants.USCFProvisionalGames {
		return constants.USCFProvisionalK
	}
	if uscfRating < constants.USCFMasterRatingFloor {
		return constants.USCFStandardK
	}
	return constants.USCFMasterK
}

// USCFDelta is the signed USCF rating change at the given K-factor. The
// expected-score curve is the same logistic as plain ELO.
func USCFDelta(ratingA, ratingB int, score float64, kFactor int) int {
	expected := ExpectedScore(float64(ratingA), float64(ratingB))
	return int(math.Round(float64(kFactor) * (score - expected)))
}

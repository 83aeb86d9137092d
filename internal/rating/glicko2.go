package rating

import (
	"math"

	"chess-tracker/internal/constants"
)

// Glicko is a player's Glicko-2 state on the display scale: a 1200-centered
// rating, a deviation (uncertainty) and a volatility.
type Glicko struct {
	Rating     int
	Deviation  float64
	Volatility float64
}

// NewGlicko returns the starting state for an unrated player.
func NewGlicko() Glicko {
	return Glicko{
		Rating:     constants.InitialGlickoRating,
		Deviation:  constants.InitialGlickoDeviation,
		Volatility: constants.InitialGlickoVolatility,
	}
}

// UpdateGlicko applies one game to both players and returns their new
// states, each computed from the pre-game values of the other side.
//
// This is deliberately the simplified single-period, one-opponent variant:
// the new volatility is computed analytically as
// min(sqrt((sigma^2 + delta^2/v) / 2), cap) instead of running the
// iterative solver from the Glicko-2 paper. Results produced this way stay
// compatible with existing rating histories, so keep the formula as is.
func UpdateGlicko(a, b Glicko, scoreA float64) (Glicko, Glicko) {
	newA := glickoOneSided(a, b, scoreA)
	newB := glickoOneSided(b, a, 1-scoreA)
	return newA, newB
}

func glickoOneSided(p, opp Glicko, score float64) Glicko {
	mu := toGlickoScale(p.Rating)
	phi := p.Deviation / constants.GlickoScale
	muOpp := toGlickoScale(opp.Rating)
	phiOpp := opp.Deviation / constants.GlickoScale

	gOpp := glickoG(phiOpp)
	e := glickoE(mu, muOpp, phiOpp)

	// E is strictly inside (0, 1) for finite ratings, so v is finite.
	v := 1 / (gOpp * gOpp * e * (1 - e))
	delta := v * gOpp * (score - e)

	sigmaNew := math.Sqrt((p.Volatility*p.Volatility + delta*delta/v) / 2)
	sigmaNew = math.Min(sigmaNew, constants.GlickoMaxVolatility)

	phiStar := math.Sqrt(phi*phi + sigmaNew*sigmaNew)
	phiNew := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	muNew := mu + phiNew*phiNew*gOpp*(score-e)

	return Glicko{
		Rating:     int(math.Round(fromGlickoScale(muNew))),
		Deviation:  math.Round(phiNew*constants.GlickoScale*10) / 10,
		Volatility: math.Round(sigmaNew*10000) / 10000,
	}
}

func toGlickoScale(rating int) float64 {
	return (float64(rating) - constants.InitialGlickoRating) / constants.GlickoScale
}

func fromGlickoScale(mu float64) float64 {
	return mu*constants.GlickoScale + constants.InitialGlickoRating
}

// glickoG dampens the impact of games against opponents with an uncertain
// rating.
func glickoG(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

// glickoE is the expected score on the internal scale.
func glickoE(mu, muOpp, phiOpp float64) float64 {
	return 1 / (1 + math.Exp(-glickoG(phiOpp)*(mu-muOpp)))
}

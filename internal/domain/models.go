package domain

// Player carries every per-participant statistic the engine maintains.
// JSON tags use the snake_case keys the report data format expects.
type Player struct {
	Name string `json:"name"`

	// Current ratings for the three independent systems.
	Elo              int     `json:"rating"`
	GlickoRating     int     `json:"glicko_rating"`
	GlickoDeviation  float64 `json:"glicko_deviation"`
	GlickoVolatility float64 `json:"glicko_volatility"`
	USCFRating       int     `json:"uscf_rating"`

	// USCFGames drives the USCF K-factor tiering. It is incremented only
	// by the USCF update step and is independent of Games.
	USCFGames int `json:"uscf_games"`

	Games  int `json:"games"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`

	Opponents map[string]*OpponentTally `json:"opponents"`

	// Bounded top-5 lists, sorted descending by rating gap.
	BiggestWins   []NotableResult `json:"biggest_wins"`
	BiggestUpsets []NotableResult `json:"biggest_upsets"`

	HighestElo    int `json:"highest_elo"`
	LowestElo     int `json:"lowest_elo"`
	HighestGlicko int `json:"highest_glicko"`
	LowestGlicko  int `json:"lowest_glicko"`
	HighestUSCF   int `json:"highest_uscf"`
	LowestUSCF    int `json:"lowest_uscf"`

	// Consecutive-win bookkeeping. WinStreak resets on any draw or loss.
	WinStreak     int `json:"win_streak"`
	BestWinStreak int `json:"best_win_streak"`

	// History holds one snapshot per game the player participated in,
	// appended in chronological order immediately after each update.
	History []HistoryEntry `json:"rating_history"`
}

// WinRate is the score percentage (draws count half). Zero games is 0.
func (p *Player) WinRate() float64 {
	if p.Games == 0 {
		return 0
	}
	return (float64(p.Wins) + 0.5*float64(p.Draws)) / float64(p.Games) * 100
}

// OpponentTally is one side of a head-to-head record.
type OpponentTally struct {
	Games  int `json:"games"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// NotableResult records a win over a higher-rated opponent or a loss to a
// lower-rated one, ranked by the pre-game ELO gap.
type NotableResult struct {
	Opponent       string `json:"opponent"`
	RatingDiff     int    `json:"rating_diff"`
	OwnRating      int    `json:"own_rating"`
	OpponentRating int    `json:"opponent_rating"`
	GameNumber     int    `json:"game_number"`
	Date           string `json:"date,omitempty"`
	Result         string `json:"result"`
}

// HistoryEntry is a post-game snapshot of all three ratings.
type HistoryEntry struct {
	Game   int    `json:"game"`
	Date   string `json:"date"`
	Elo    int    `json:"elo"`
	Glicko int    `json:"glicko2"`
	USCF   int    `json:"uscf"`
}

// GameRecord is immutable once the engine appends it. Only the ELO system
// is reflected here; Glicko-2 and USCF movements live in player state and
// history.
type GameRecord struct {
	ID          string `json:"id"`
	Number      int    `json:"game_number"`
	White       string `json:"white_player"`
	Black       string `json:"black_player"`
	Result      string `json:"result"`
	Date        string `json:"date,omitempty"`
	DateRaw     string `json:"date_raw,omitempty"`
	WhiteBefore int    `json:"white_rating_before"`
	BlackBefore int    `json:"black_rating_before"`
	WhiteAfter  int    `json:"white_rating_after"`
	BlackAfter  int    `json:"black_rating_after"`
	WhiteChange int    `json:"white_change"`
	BlackChange int    `json:"black_change"`
}

package report

import (
	"fmt"
	"io"

	"chess-tracker/internal/constants"
	"chess-tracker/internal/domain"
)

// PrintSummary writes the run totals and the current top players to w.
func (r *Renderer) PrintSummary(w io.Writer, players map[string]*domain.Player, games []*domain.GameRecord) {
	fmt.Fprintf(w, "Processed %d games for %d players\n", len(games), len(players))

	sorted := sortedByElo(players)
	top := constants.SummaryTopPlayers
	if len(sorted) < top {
		top = len(sorted)
	}
	if top == 0 {
		return
	}

	fmt.Fprintf(w, "\nTop %d Players:\n", top)
	for i, p := range sorted[:top] {
		fmt.Fprintf(w, "%d. %s: %d (%d-%d-%d, %.1f%%)\n",
			i+1, p.Name, p.Elo, p.Wins, p.Draws, p.Losses, p.WinRate())
	}
}

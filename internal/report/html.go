// Package report is the presentation collaborator: it renders the
// engine's final player map and game list as an HTML report, JSON exports
// and a console summary. It only reads the engine's output structures.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"sort"
	"strings"
	"time"

	"chess-tracker/internal/domain"

	"github.com/rs/zerolog"
)

//go:embed template.html
var templateFS embed.FS

type Renderer struct {
	logger zerolog.Logger
	tmpl   *template.Template
}

func NewRenderer(logger zerolog.Logger) (*Renderer, error) {
	tmpl, err := template.New("template.html").
		Funcs(template.FuncMap{
			"inc": func(i int) int { return i + 1 },
		}).
		ParseFS(templateFS, "template.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	return &Renderer{logger: logger, tmpl: tmpl}, nil
}

type reportData struct {
	GeneratedAt  string
	RunID        string
	TotalPlayers int
	TotalGames   int
	Players      []playerView
	Games        []gameView
}

type playerView struct {
	*domain.Player
	Anchor    string
	WinRate   string
	Opponents []opponentView
}

type opponentView struct {
	Name   string
	Games  int
	Wins   int
	Draws  int
	Losses int
	Score  string
}

type gameView struct {
	*domain.GameRecord
	WhiteDelta string
	BlackDelta string
}

// WriteHTML renders the full report to path.
func (r *Renderer) WriteHTML(path, runID string, players map[string]*domain.Player, games []*domain.GameRecord) error {
	data := reportData{
		GeneratedAt:  time.Now().Format("Jan 2, 2006 15:04"),
		RunID:        runID,
		TotalPlayers: len(players),
		TotalGames:   len(games),
		Players:      playerViews(players),
		Games:        gameViews(games),
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := r.tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	r.logger.Info().Str("path", path).Msg("HTML report written")
	return nil
}

// playerViews sorts players by current ELO descending and precomputes the
// display-only fields.
func playerViews(players map[string]*domain.Player) []playerView {
	sorted := sortedByElo(players)

	views := make([]playerView, 0, len(sorted))
	for _, p := range sorted {
		views = append(views, playerView{
			Player:    p,
			Anchor:    anchorFor(p.Name),
			WinRate:   fmt.Sprintf("%.1f%%", p.WinRate()),
			Opponents: opponentViews(p),
		})
	}
	return views
}

func opponentViews(p *domain.Player) []opponentView {
	names := make([]string, 0, len(p.Opponents))
	for name := range p.Opponents {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]opponentView, 0, len(names))
	for _, name := range names {
		tally := p.Opponents[name]
		views = append(views, opponentView{
			Name:   name,
			Games:  tally.Games,
			Wins:   tally.Wins,
			Draws:  tally.Draws,
			Losses: tally.Losses,
			Score:  formatScore(tally),
		})
	}
	return views
}

// gameViews lists games newest first, with signed ELO deltas.
func gameViews(games []*domain.GameRecord) []gameView {
	views := make([]gameView, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		g := games[i]
		views = append(views, gameView{
			GameRecord: g,
			WhiteDelta: fmt.Sprintf("%+d", g.WhiteChange),
			BlackDelta: fmt.Sprintf("%+d", g.BlackChange),
		})
	}
	return views
}

func sortedByElo(players map[string]*domain.Player) []*domain.Player {
	sorted := make([]*domain.Player, 0, len(players))
	for _, p := range players {
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Elo != sorted[j].Elo {
			return sorted[i].Elo > sorted[j].Elo
		}
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}

// formatScore renders a head-to-head score like "5.5/10" or "3/4".
func formatScore(t *domain.OpponentTally) string {
	score := float64(t.Wins) + 0.5*float64(t.Draws)
	if score == float64(int(score)) {
		return fmt.Sprintf("%d/%d", int(score), t.Games)
	}
	return fmt.Sprintf("%.1f/%d", score, t.Games)
}

func anchorFor(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

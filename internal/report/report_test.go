package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"chess-tracker/internal/engine"
	"chess-tracker/internal/registry"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func processedState(t *testing.T) (*registry.Registry, *engine.Engine) {
	t.Helper()
	reg := registry.New(zerolog.Nop())
	eng := engine.New(reg, zerolog.Nop())
	eng.ProcessAll([]string{
		"Alice - Bob 1-0 20250101",
		"Bob - Carol 0.5-0.5",
		"Carol - Alice 0-1",
	})
	return reg, eng
}

func TestWriteHTML(t *testing.T) {
	reg, eng := processedState(t)
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, renderer.WriteHTML(path, "test-run", reg.Players(), eng.Games()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(data)

	assert.Contains(t, html, "Chess Club Ratings")
	assert.Contains(t, html, "Alice")
	assert.Contains(t, html, "Jan 1, 2025")
	assert.Contains(t, html, "run test-run")
	assert.Contains(t, html, "Head-to-Head Records")
}

func TestWriteJSON(t *testing.T) {
	reg, eng := processedState(t)
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, renderer.WriteJSON(dir, reg.Players(), eng.Games()))

	playersData, err := os.ReadFile(filepath.Join(dir, "players.json"))
	require.NoError(t, err)

	var players map[string]map[string]any
	require.NoError(t, json.Unmarshal(playersData, &players))
	require.Contains(t, players, "Alice")
	assert.EqualValues(t, 1231, players["Alice"]["rating"])
	assert.Contains(t, players["Alice"], "rating_history")

	gamesData, err := os.ReadFile(filepath.Join(dir, "games.json"))
	require.NoError(t, err)

	var games []map[string]any
	require.NoError(t, json.Unmarshal(gamesData, &games))
	require.Len(t, games, 3)
	assert.EqualValues(t, 1, games[0]["game_number"])
}

func TestPrintSummary(t *testing.T) {
	reg, eng := processedState(t)
	renderer, err := NewRenderer(zerolog.Nop())
	require.NoError(t, err)

	var buf bytes.Buffer
	renderer.PrintSummary(&buf, reg.Players(), eng.Games())

	out := buf.String()
	assert.Contains(t, out, "Processed 3 games for 3 players")
	assert.Contains(t, out, "Top 3 Players:")
	assert.Contains(t, out, "1. Alice:")
}

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"chess-tracker/internal/domain"
)

// WriteJSON exports the player map and game list as players.json and
// games.json under dir, using the same snake_case keys the HTML data
// format has always used.
func (r *Renderer) WriteJSON(dir string, players map[string]*domain.Player, games []*domain.GameRecord) error {
	if err := writeJSONFile(filepath.Join(dir, "players.json"), players); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, "games.json"), games); err != nil {
		return err
	}

	r.logger.Info().Str("dir", dir).Msg("JSON exports written")
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

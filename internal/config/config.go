package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	GamesFile  string
	ReportFile string
	ExportDir  string
	LogLevel   string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		GamesFile:  getEnv("GAMES_FILE", "games.txt"),
		ReportFile: getEnv("REPORT_FILE", "index.html"),
		ExportDir:  getEnv("EXPORT_DIR", "."),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	logger.Info().
		Str("games_file", cfg.GamesFile).
		Str("report_file", cfg.ReportFile).
		Str("export_dir", cfg.ExportDir).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

var Module = fx.Provide(Load)

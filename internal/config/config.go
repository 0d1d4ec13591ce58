// Package config loads application configuration from environment variables.
//
// Environment variables are the whole configuration surface of this tool —
// there is no config file. The caarlos0/env library parses them straight
// into a struct using struct tags, the same way encoding/json parses JSON:
// the `env:"..."` tag names the variable, `envDefault` supplies a fallback,
// and `notEmpty` makes an unset or empty value a parse error.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/sakif/snipvault/internal/apperror"
)

// Config holds everything read from the environment at startup.
type Config struct {
	// Storage selects the backend, in the form JSON:<path> or SQLITE:<path>.
	// Splitting and validating the value is the storage selector's job;
	// config only guarantees it is present.
	Storage string `env:"SNIPPETS_APP_STORAGE,notEmpty"`

	// LogLevel and LogPath control the slog output file. Logs go to a file
	// rather than stdout so command output stays clean for shell pipelines.
	LogLevel string `env:"SNIPPETS_APP_LOG_LEVEL" envDefault:"info"`
	LogPath  string `env:"SNIPPETS_APP_LOG_PATH" envDefault:"snippets.log"`
}

// Load parses the environment into a Config.
// A missing SNIPPETS_APP_STORAGE is a fatal startup error — the tool has
// no default storage location.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, apperror.Config(
			"SNIPPETS_APP_STORAGE must be set to JSON:<path> or SQLITE:<path>")
	}
	return &cfg, nil
}

// SlogLevel maps the LogLevel string to a slog.Level.
// Unknown values fall back to info rather than failing startup — a typo in
// the log level should not stop the tool from saving a snippet.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

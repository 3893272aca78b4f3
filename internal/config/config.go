// Package config loads server settings from the environment, with a .env
// file as an optional source for local development.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	LogLevel   slog.Level
	IDStrategy string // "uuid" or "counter"
	JournalDSN string // empty disables the edit journal
}

// Load reads .env files (if present) and then the process environment.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else {
		for _, f := range envFiles {
			if err := godotenv.Load(f); err != nil {
				return Config{}, fmt.Errorf("failed to load env file %s: %w", f, err)
			}
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, applying defaults.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:       getenv("PORT"),
		IDStrategy: strings.ToLower(strings.TrimSpace(getenv("ID_STRATEGY"))),
		JournalDSN: strings.TrimSpace(getenv("JOURNAL_DATABASE_URL")),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	if cfg.IDStrategy == "" {
		cfg.IDStrategy = "uuid"
	}
	if cfg.IDStrategy != "uuid" && cfg.IDStrategy != "counter" {
		return Config{}, fmt.Errorf("config error: ID_STRATEGY must be 'uuid' or 'counter', got %q", cfg.IDStrategy)
	}

	level := strings.TrimSpace(getenv("LOG_LEVEL"))
	if level == "" {
		level = "info"
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("config error: invalid LOG_LEVEL %q: %w", level, err)
	}
	return cfg, nil
}

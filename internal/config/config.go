// Package config reads the portfolio settings from the environment. A .env
// file in the working directory is loaded first by the main package.
package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the portfolio settings. The gin mode is read from its own key:
// gin panics at init on an unknown GIN_MODE, before Load could report it.
type Config struct {
	Port      string     `env:"PORT" envDefault:"8080"`
	GinMode   string     `env:"PORTFOLIO_GIN_MODE" envDefault:"debug"`
	AssetsDir string     `env:"PORTFOLIO_ASSETS_DIR" envDefault:"./assets"`
	LogLevel  slog.Level `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return Config{}, fmt.Errorf("parse env: PORTFOLIO_GIN_MODE must be debug, release or test, got %q", cfg.GinMode)
	}
	return cfg, nil
}

// Addr is the listen address for the web server.
func (c Config) Addr() string {
	return ":" + c.Port
}

// NewLogger returns a text logger writing to w at the configured level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

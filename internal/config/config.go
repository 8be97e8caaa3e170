// Package config holds build settings read from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/3-lines-studio/devportfolio/internal/adapters/site"
	"github.com/3-lines-studio/devportfolio/internal/content"
)

type Config struct {
	OutDir         string `env:"DEVPORTFOLIO_OUT_DIR" envDefault:"dist"`
	Title          string `env:"DEVPORTFOLIO_TITLE" envDefault:"DevPortfolio"`
	Lang           string `env:"DEVPORTFOLIO_LANG" envDefault:"en"`
	Description    string `env:"DEVPORTFOLIO_DESCRIPTION"`
	RelativeAssets bool   `env:"DEVPORTFOLIO_RELATIVE_ASSETS" envDefault:"false"`
	LogLevel       string `env:"DEVPORTFOLIO_LOG_LEVEL" envDefault:"info"`
	NoColor        string `env:"NO_COLOR"`
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Description == "" {
		cfg.Description = content.Tagline
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}

// ColorsDisabled follows the NO_COLOR convention: any non-empty value disables color.
func (c Config) ColorsDisabled() bool {
	return c.NoColor != ""
}

func (c Config) SiteOptions() site.Options {
	return site.Options{
		Title:          c.Title,
		Lang:           c.Lang,
		Description:    c.Description,
		RelativeAssets: c.RelativeAssets,
	}
}

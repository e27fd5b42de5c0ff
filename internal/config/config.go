package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Deck string `koanf:"deck"` // path to the default deck (file or directory)

	// Swipe behavior settings
	Swipe SwipeConfig `koanf:"swipe"`
}

// SwipeConfig holds the carousel behavior configuration. Pointer fields
// distinguish "unset" from an explicit false so defaults can apply.
type SwipeConfig struct {
	Loop           *bool   `koanf:"loop"`            // wrap from the last panel back to the first (default: true)
	Vertical       bool    `koanf:"vertical"`        // stack panels vertically instead of horizontally
	Touchable      *bool   `koanf:"touchable"`       // allow mouse dragging (default: true)
	AutoplayMs     int     `koanf:"autoplay_ms"`     // auto-advance interval; 0 disables (default: 0)
	DurationMs     int     `koanf:"duration_ms"`     // settle animation duration (50-5000, default: 500)
	InitialIndex   int     `koanf:"initial_index"`   // panel shown on startup (default: 0)
	ShowIndicators *bool   `koanf:"show_indicators"` // render the position dots (default: true)
	CommitVelocity float64 `koanf:"commit_velocity"` // flick speed that commits a move, cells/ms (default: 0.25)
}

func Load() (*Config, error) {
	k := koanf.New(".")

	// Try config files in order of priority (last wins)
	configPaths := getConfigPaths()

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		Deck: "", // empty means use the built-in demo deck
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Expand ~ in deck path
	if cfg.Deck != "" {
		cfg.Deck = expandPath(cfg.Deck)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/swipedeck/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "swipedeck", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetSwipeConfig returns the swipe configuration with defaults applied.
func (c *Config) GetSwipeConfig() SwipeConfig {
	cfg := c.Swipe

	// Apply defaults
	if cfg.Loop == nil {
		cfg.Loop = boolPtr(true)
	}
	if cfg.Touchable == nil {
		cfg.Touchable = boolPtr(true)
	}
	if cfg.ShowIndicators == nil {
		cfg.ShowIndicators = boolPtr(true)
	}
	if cfg.AutoplayMs < 0 {
		cfg.AutoplayMs = 0
	}
	if cfg.DurationMs < 50 || cfg.DurationMs > 5000 {
		cfg.DurationMs = 500
	}
	if cfg.InitialIndex < 0 {
		cfg.InitialIndex = 0
	}
	if cfg.CommitVelocity <= 0 {
		cfg.CommitVelocity = 0.25
	}

	return cfg
}

func boolPtr(b bool) *bool { return &b }

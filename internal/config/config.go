// Package config loads user settings from an optional TOML file. Everything
// has a working default, so the app runs fine with no config at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/nikverma/physlab/internal/phase"
)

// Config holds user-tunable settings.
type Config struct {
	// DebounceMs is the phase transition debounce window in milliseconds.
	// Zero disables debouncing; negative values are rejected.
	DebounceMs *int `toml:"debounce_ms,omitempty"`

	// DefaultGame is pre-selected on the home screen.
	DefaultGame string `toml:"default_game,omitempty"`

	// SnapshotKeep is how many progress snapshots to retain.
	SnapshotKeep int `toml:"snapshot_keep,omitempty"`

	// Sound rings the terminal bell on correct answers. Default on.
	Sound *bool `toml:"sound,omitempty"`

	Coach CoachConfig `toml:"coach"`
}

// CoachConfig overrides the LLM coach setup. Env vars still win over these.
type CoachConfig struct {
	Provider string `toml:"provider,omitempty"` // anthropic, openai, gemini, mock
	Model    string `toml:"model,omitempty"`
}

// DebounceWindow resolves the configured debounce window.
func (c Config) DebounceWindow() time.Duration {
	if c.DebounceMs == nil {
		return phase.DefaultDebounceWindow
	}
	return time.Duration(*c.DebounceMs) * time.Millisecond
}

// SoundEnabled reports whether the terminal bell is on.
func (c Config) SoundEnabled() bool {
	return c.Sound == nil || *c.Sound
}

// ResolvedSnapshotKeep returns the snapshot retention count, default 10.
func (c Config) ResolvedSnapshotKeep() int {
	if c.SnapshotKeep > 0 {
		return c.SnapshotKeep
	}
	return 10
}

// DefaultConfigPath resolves the config file path in priority order:
// 1. PHYSLAB_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/physlab/config.toml
// 3. ~/.config/physlab/config.toml
func DefaultConfigPath() string {
	if p := os.Getenv("PHYSLAB_CONFIG"); p != "" {
		return p
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "physlab", "config.toml")
}

// Load reads the config file at path. A missing file yields the zero Config
// (all defaults) with no error.
func Load(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DebounceMs != nil && *cfg.DebounceMs < 0 {
		return cfg, fmt.Errorf("debounce_ms must be >= 0, got %d", *cfg.DebounceMs)
	}

	return cfg, nil
}

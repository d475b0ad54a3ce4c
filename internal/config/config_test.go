package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/nikverma/physlab/internal/phase"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DebounceWindow() != phase.DefaultDebounceWindow {
		t.Errorf("DebounceWindow = %v, want default %v", cfg.DebounceWindow(), phase.DefaultDebounceWindow)
	}
	if cfg.ResolvedSnapshotKeep() != 10 {
		t.Errorf("SnapshotKeep = %d, want 10", cfg.ResolvedSnapshotKeep())
	}
	if !cfg.SoundEnabled() {
		t.Error("sound should default to on")
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
debounce_ms = 400
default_game = "pendulum-clock"
snapshot_keep = 5
sound = false

[coach]
provider = "gemini"
model = "gemini-2.5-flash"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DebounceWindow() != 400*time.Millisecond {
		t.Errorf("DebounceWindow = %v, want 400ms", cfg.DebounceWindow())
	}
	if cfg.DefaultGame != "pendulum-clock" {
		t.Errorf("DefaultGame = %q", cfg.DefaultGame)
	}
	if cfg.ResolvedSnapshotKeep() != 5 {
		t.Errorf("SnapshotKeep = %d, want 5", cfg.ResolvedSnapshotKeep())
	}
	if cfg.Coach.Provider != "gemini" || cfg.Coach.Model != "gemini-2.5-flash" {
		t.Errorf("Coach = %+v", cfg.Coach)
	}
	if cfg.SoundEnabled() {
		t.Error("sound = false should disable the bell")
	}
}

func TestZeroDebounceDisables(t *testing.T) {
	path := writeConfig(t, "debounce_ms = 0\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DebounceWindow() != 0 {
		t.Errorf("DebounceWindow = %v, want 0", cfg.DebounceWindow())
	}
}

func TestNegativeDebounceRejected(t *testing.T) {
	path := writeConfig(t, "debounce_ms = -5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for negative debounce_ms")
	}
}

func TestMalformedTOMLRejected(t *testing.T) {
	path := writeConfig(t, "debounce_ms = = 5\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	want := DefaultPacmanConfig()

	if cfg.Screen != want.Screen || cfg.FPS != want.FPS {
		t.Errorf("embedded screen/fps = %+v/%d, expected %+v/%d", cfg.Screen, cfg.FPS, want.Screen, want.FPS)
	}
	if cfg.Enemies.Count != want.Enemies.Count ||
		cfg.Enemies.RedirectSeconds != want.Enemies.RedirectSeconds ||
		cfg.Enemies.Spawn != want.Enemies.Spawn ||
		len(cfg.Enemies.Palette) != len(want.Enemies.Palette) {
		t.Errorf("embedded enemies = %+v, expected %+v", cfg.Enemies, want.Enemies)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded defaults should validate: %v", err)
	}
}

func TestGridAndInterval(t *testing.T) {
	cfg := DefaultPacmanConfig()

	g := cfg.Grid()
	if g.Cols != 30 || g.Rows != 20 {
		t.Errorf("Grid() = %dx%d, expected 30x20", g.Cols, g.Rows)
	}
	if got := cfg.RedirectInterval(); got != 5*time.Second {
		t.Errorf("RedirectInterval() = %v, expected 5s", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PacmanConfig)
		valid  bool
	}{
		{"defaults", func(*PacmanConfig) {}, true},
		{"edge inclusive spawn", func(c *PacmanConfig) { c.Enemies.Spawn = SpawnEdgeInclusive }, true},
		{"zero cell size", func(c *PacmanConfig) { c.Screen.CellSize = 0 }, false},
		{"width not a multiple", func(c *PacmanConfig) { c.Screen.Width = 610 }, false},
		{"grid too small", func(c *PacmanConfig) { c.Screen.Width, c.Screen.Height = 40, 40 }, false},
		{"zero fps", func(c *PacmanConfig) { c.FPS = 0 }, false},
		{"no enemies", func(c *PacmanConfig) { c.Enemies.Count = 0 }, false},
		{"zero redirect", func(c *PacmanConfig) { c.Enemies.RedirectSeconds = 0 }, false},
		{"unknown spawn", func(c *PacmanConfig) { c.Enemies.Spawn = "wrap" }, false},
		{"empty palette", func(c *PacmanConfig) { c.Enemies.Palette = nil }, false},
		{"unknown color", func(c *PacmanConfig) { c.Enemies.Palette = []string{"red", "mauve"} }, false},
		{"black blends into the board", func(c *PacmanConfig) { c.Enemies.Palette = []string{"red", "black"} }, false},
		{"default has no hue", func(c *PacmanConfig) { c.Enemies.Palette = []string{"Default"} }, false},
		{"gray and white are visible", func(c *PacmanConfig) { c.Enemies.Palette = []string{"gray", "white"} }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultPacmanConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("enemies:\n  count: 7\n  palette: [yellow]\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Enemies.Count != 7 {
		t.Errorf("Enemies.Count = %d, expected 7", cfg.Enemies.Count)
	}
	if len(cfg.Enemies.Palette) != 1 || cfg.Enemies.Palette[0] != "yellow" {
		t.Errorf("Enemies.Palette = %v, expected [yellow]", cfg.Enemies.Palette)
	}
	// Unset keys keep their defaults
	if cfg.FPS != 10 || cfg.Enemies.RedirectSeconds != 5 || cfg.Screen.CellSize != 20 {
		t.Errorf("Unset keys should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom file should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("fps: [not, a, number]\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestOverridesApply(t *testing.T) {
	cfg := DefaultPacmanConfig()
	Overrides{EnemyCount: 2, Spawn: SpawnEdgeInclusive}.Apply(&cfg)

	if cfg.Enemies.Count != 2 || cfg.Enemies.Spawn != SpawnEdgeInclusive {
		t.Errorf("overrides not applied: %+v", cfg.Enemies)
	}
	if cfg.FPS != 10 || cfg.Enemies.RedirectSeconds != 5 {
		t.Errorf("zero overrides should leave values alone: fps=%d redirect=%d", cfg.FPS, cfg.Enemies.RedirectSeconds)
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultPacmanConfig()
	cfg.Enemies.Count = 9

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back.Enemies.Count != 9 {
		t.Errorf("Enemies.Count after round trip = %d, expected 9", back.Enemies.Count)
	}
}

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("embedded default config is invalid: %v", err)
	}
	if cfg.Window.Width != 960 || cfg.Window.Height != 540 {
		t.Errorf("default window = %dx%d, want 960x540", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Pickin' Sticks" {
		t.Errorf("default title = %q", cfg.Window.Title)
	}
	if cfg.Player.StartSpeed != 150.0 {
		t.Errorf("default start speed = %v, want 150", cfg.Player.StartSpeed)
	}
	if cfg.Player.SpeedPerStick != 10.0 {
		t.Errorf("default speed per stick = %v, want 10", cfg.Player.SpeedPerStick)
	}
	if len(cfg.Ranks) != 3 {
		t.Fatalf("default rank table has %d entries, want 3", len(cfg.Ranks))
	}
	want := []Rank{{1, "Weak"}, {5, "Decent"}, {10, "Ok"}}
	for i, r := range want {
		if cfg.Ranks[i] != r {
			t.Errorf("rank %d = %+v, want %+v", i, cfg.Ranks[i], r)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := `
window: {width: 640, height: 480, title: Test}
hud: {bar_height: 40, font_size: 16}
player: {start_speed: 100, speed_per_stick: 5, frame_seconds: 0.2, scale: 1}
sticks: {collision_radius: 12, spawn_inset: 8, scale: 1}
ranks:
  - {min_score: 1, label: Novice}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("width = %d, want 640", cfg.Window.Width)
	}
	if cfg.Ranks[0].Label != "Novice" {
		t.Errorf("rank label = %q, want Novice", cfg.Ranks[0].Label)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("window: {width: -1, height: 540}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative window width")
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	// Run from a directory with no local config file.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("expected embedded default, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	base := Default()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative height", func(c *Config) { c.Window.Height = -10 }},
		{"bars swallow window", func(c *Config) { c.HUD.BarHeight = 270 }},
		{"zero font size", func(c *Config) { c.HUD.FontSize = 0 }},
		{"zero start speed", func(c *Config) { c.Player.StartSpeed = 0 }},
		{"negative speed per stick", func(c *Config) { c.Player.SpeedPerStick = -1 }},
		{"zero frame interval", func(c *Config) { c.Player.FrameSeconds = 0 }},
		{"zero player scale", func(c *Config) { c.Player.Scale = 0 }},
		{"zero radius", func(c *Config) { c.Sticks.CollisionRadius = 0 }},
		{"negative inset", func(c *Config) { c.Sticks.SpawnInset = -1 }},
		{"zero stick scale", func(c *Config) { c.Sticks.Scale = 0 }},
		{"empty rank table", func(c *Config) { c.Ranks = nil }},
		{"empty rank label", func(c *Config) { c.Ranks = []Rank{{MinScore: 1}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Ranks = append([]Rank(nil), base.Ranks...)
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

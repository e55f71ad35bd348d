package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Size <= 0 {
		t.Error("size should be positive")
	}
	if cfg.Speed <= 0 {
		t.Error("speed should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown algorithm", func(c *Config) { c.Algorithm = "bogo" }},
		{"size too small", func(c *Config) { c.Size = 0 }},
		{"size too large", func(c *Config) { c.Size = 1000 }},
		{"inverted range", func(c *Config) { c.MinValue = 50; c.MaxValue = 10 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }},
		{"frame rate too high", func(c *Config) { c.FrameRate = 500 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Algorithm = "insertion"
	cfg.Size = 20
	cfg.Seed = 42
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Algorithm != "insertion" {
		t.Errorf("expected insertion, got %s", loaded.Algorithm)
	}
	if loaded.Size != 20 {
		t.Errorf("expected size 20, got %d", loaded.Size)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
	// Fields absent from the file keep their defaults.
	if loaded.FrameRate != DefaultFrameRate {
		t.Errorf("expected default frame rate, got %d", loaded.FrameRate)
	}
}

func TestLoad_NotFound(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPlaybackDelays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Delays.CompareMs = 100
	cfg.Speed = 2.0
	d := cfg.PlaybackDelays()
	if d.Compare != 50*time.Millisecond {
		t.Errorf("expected 50ms compare at 2x speed, got %v", d.Compare)
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FrameRate = 20
	if got := cfg.TickInterval(); got != 50*time.Millisecond {
		t.Errorf("expected 50ms, got %v", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("bubble", "tiny")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 6 {
		t.Errorf("expected size 6, got %d", cfg.Size)
	}
	// Presets inherit the default pacing.
	if cfg.Delays.CompareMs == 0 {
		t.Error("preset should carry default delays")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("bubble", "nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if GetPreset("nonexistent", "tiny") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("insertion")) == 0 {
		t.Error("expected presets for insertion")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent algorithm")
	}
}

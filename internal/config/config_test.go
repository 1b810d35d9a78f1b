package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Model != "grayscott" {
		t.Errorf("expected model grayscott, got %s", cfg.Model)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("grid dimensions should be positive")
	}
	if cfg.Steps <= 0 {
		t.Error("steps per frame should be positive")
	}
	if cfg.Window.Width != 600 || cfg.Window.Height != 600 {
		t.Errorf("expected 600x600 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Shaders.Vertex == "" || cfg.Shaders.Fragment == "" {
		t.Error("shader file names should be set")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("grayscott", "spots")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Params.Feed != 0.035 {
		t.Errorf("expected feed 0.035, got %f", cfg.Params.Feed)
	}
	if cfg.Params.Kill != 0.065 {
		t.Errorf("expected kill 0.065, got %f", cfg.Params.Kill)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("grayscott", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "spots")
	if cfg != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("grayscott")
	if len(presets) == 0 {
		t.Error("expected presets for grayscott")
	}
	for i := 1; i < len(presets); i++ {
		if presets[i-1] >= presets[i] {
			t.Errorf("presets not sorted: %v", presets)
		}
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent model")
	}
}

func TestGetModelParams(t *testing.T) {
	tests := []struct {
		model    string
		expected int
	}{
		{"grayscott", 5},
		{"life", 1},
		{"plasma", 1},
	}

	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Model = tt.model
		params := cfg.GetModelParams()
		if len(params) != tt.expected {
			t.Errorf("model %s: expected %d params, got %d", tt.model, tt.expected, len(params))
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Model = "life"
	cfg.Width = 128
	cfg.Params.Density = 0.42
	cfg.Window.Title = "roundtrip"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Model != "life" {
		t.Errorf("expected model life, got %s", loaded.Model)
	}
	if loaded.Width != 128 {
		t.Errorf("expected width 128, got %d", loaded.Width)
	}
	if loaded.Params.Density != 0.42 {
		t.Errorf("expected density 0.42, got %f", loaded.Params.Density)
	}
	if loaded.Window.Title != "roundtrip" {
		t.Errorf("expected title roundtrip, got %s", loaded.Window.Title)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("model: plasma\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "plasma" {
		t.Errorf("expected model plasma, got %s", cfg.Model)
	}
	// Unspecified fields keep their defaults.
	if cfg.Width != DefaultWidth {
		t.Errorf("expected default width %d, got %d", DefaultWidth, cfg.Width)
	}
	if cfg.Params.Speed != DefaultSpeed {
		t.Errorf("expected default speed %f, got %f", DefaultSpeed, cfg.Params.Speed)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

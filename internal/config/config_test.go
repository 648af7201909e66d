package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Method != "yoshida4" {
		t.Errorf("expected method yoshida4, got %s", cfg.Method)
	}
	if cfg.Step <= 0 {
		t.Error("step should be positive")
	}
	if cfg.Periods < 1 {
		t.Error("periods should be at least 1")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative eccentricity", func(c *Config) { c.Eccentricity = -0.1 }},
		{"parabolic eccentricity", func(c *Config) { c.Eccentricity = 1.0 }},
		{"tau out of range", func(c *Config) { c.Tau = 1.0 }},
		{"zero step", func(c *Config) { c.Step = 0 }},
		{"step too large", func(c *Config) { c.Step = 0.5 }},
		{"step does not divide a period", func(c *Config) { c.Step = 0.03 }},
		{"no periods", func(c *Config) { c.Periods = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestValidateUnknownMethod(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Method = "euler"
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an unregistered method")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Eccentricity = 0.35
	cfg.Periods = 50
	cfg.MEGNO = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip changed the config: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := DefaultConfig()
	cfg.Eccentricity = 2.0
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("megno", "chaotic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Eccentricity != 0.6 {
		t.Errorf("expected eccentricity 0.6, got %f", cfg.Eccentricity)
	}
	if !cfg.MEGNO {
		t.Error("expected a MEGNO preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	cfg := GetPreset("megno", "nonexistent")
	if cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}

	cfg = GetPreset("nonexistent", "chaotic")
	if cfg != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets("orbit")
	if len(presets) == 0 {
		t.Error("expected presets for orbit")
	}

	presets = ListPresets("nonexistent")
	if presets != nil {
		t.Error("expected nil for nonexistent family")
	}
}

func TestPresetsValidate(t *testing.T) {
	for _, family := range ListFamilies() {
		for _, name := range ListPresets(family) {
			if err := GetPreset(family, name).Validate(); err != nil {
				t.Errorf("preset %s/%s does not validate: %v", family, name, err)
			}
		}
	}
}

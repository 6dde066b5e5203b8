package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test profile defaults
	if cfg.Profile.Sex != "male" {
		t.Errorf("Profile.Sex = %q, want %q", cfg.Profile.Sex, "male")
	}
	if cfg.Profile.Age != 39 {
		t.Errorf("Profile.Age = %v, want 39", cfg.Profile.Age)
	}
	if cfg.Profile.DeclineRate != 0.7 {
		t.Errorf("Profile.DeclineRate = %v, want 0.7", cfg.Profile.DeclineRate)
	}
	if cfg.Profile.VO2Max != 0 {
		t.Errorf("Profile.VO2Max = %v, want 0", cfg.Profile.VO2Max)
	}

	// Test display defaults
	if cfg.Display.ChartHeight != 16 {
		t.Errorf("Display.ChartHeight = %v, want 16", cfg.Display.ChartHeight)
	}
	if !cfg.Display.Thresholds() {
		t.Error("Display.Thresholds() should default to true")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
		errContains []string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "female profile",
			mutate: func(c *Config) { c.Profile.Sex = "female" },
		},
		{
			name:        "unknown sex",
			mutate:      func(c *Config) { c.Profile.Sex = "Male" },
			expectError: true,
			errContains: []string{"profile.sex"},
		},
		{
			name:        "age below range",
			mutate:      func(c *Config) { c.Profile.Age = 19 },
			expectError: true,
			errContains: []string{"profile.age"},
		},
		{
			name:        "age above range",
			mutate:      func(c *Config) { c.Profile.Age = 71 },
			expectError: true,
			errContains: []string{"profile.age"},
		},
		{
			name:        "negative vo2 max",
			mutate:      func(c *Config) { c.Profile.VO2Max = -1 },
			expectError: true,
			errContains: []string{"profile.vo2_max"},
		},
		{
			name:        "decline rate too high",
			mutate:      func(c *Config) { c.Profile.DeclineRate = 2 },
			expectError: true,
			errContains: []string{"profile.decline_rate"},
		},
		{
			name:        "tiny chart",
			mutate:      func(c *Config) { c.Display.ChartHeight = 2; c.Display.ChartWidth = 10 },
			expectError: true,
			errContains: []string{"display.chart_height", "display.chart_width"},
		},
		{
			name:        "bad log level",
			mutate:      func(c *Config) { c.Log.Level = "loud" },
			expectError: true,
			errContains: []string{"log.level"},
		},
		{
			name: "all problems reported",
			mutate: func(c *Config) {
				c.Profile.Sex = ""
				c.Profile.Age = 5
				c.Profile.DeclineRate = 0
			},
			expectError: true,
			errContains: []string{"profile.sex", "profile.age", "profile.decline_rate"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.expectError {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			for _, want := range tt.errContains {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q should contain %q", err.Error(), want)
				}
			}
			if got := len(multierr.Errors(err)); got != len(tt.errContains) {
				t.Errorf("got %d errors, want %d: %v", got, len(tt.errContains), err)
			}
		})
	}
}

func TestLoadSave(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if _, err := Load(); !errors.Is(err, ErrNoConfig) {
		t.Fatalf("Load() without file error = %v, want ErrNoConfig", err)
	}

	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}
	path := filepath.Join(home, ".vo2max", "config.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("example config not written: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Profile.VO2Max != 45 {
		t.Errorf("Profile.VO2Max = %v, want 45", cfg.Profile.VO2Max)
	}

	cfg.Profile.Sex = "female"
	cfg.Profile.Age = 52
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// CreateExample must not overwrite an existing file
	if err := CreateExample(); err != nil {
		t.Fatalf("CreateExample() error = %v", err)
	}

	reloaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if reloaded.Profile.Sex != "female" || reloaded.Profile.Age != 52 {
		t.Errorf("reloaded profile = %+v", reloaded.Profile)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".vo2max")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	partial := `{"profile": {"vo2_max": 38.5}, "display": {"show_thresholds": false}}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(partial), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	defaults := DefaultConfig()
	if cfg.Profile.VO2Max != 38.5 {
		t.Errorf("Profile.VO2Max = %v, want 38.5", cfg.Profile.VO2Max)
	}
	if cfg.Profile.Sex != defaults.Profile.Sex {
		t.Errorf("Profile.Sex = %q, want default %q", cfg.Profile.Sex, defaults.Profile.Sex)
	}
	if cfg.Profile.Age != defaults.Profile.Age {
		t.Errorf("Profile.Age = %v, want default %v", cfg.Profile.Age, defaults.Profile.Age)
	}
	if cfg.Display.ChartWidth != defaults.Display.ChartWidth {
		t.Errorf("Display.ChartWidth = %v, want default %v", cfg.Display.ChartWidth, defaults.Display.ChartWidth)
	}
	if cfg.Display.Thresholds() {
		t.Error("Display.Thresholds() should be false when disabled")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".vo2max")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "parsing config file") {
		t.Errorf("Load() error = %v, want parsing error", err)
	}
}

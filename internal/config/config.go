package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// Input ranges accepted by the assessment form
const (
	MinAge         = 20
	MaxAge         = 70
	MinDeclineRate = 0.1
	MaxDeclineRate = 1.5
)

// Config represents the application configuration
type Config struct {
	Profile ProfileConfig `json:"profile"`
	Display DisplayConfig `json:"display"`
	Log     LogConfig     `json:"log"`
}

// ProfileConfig holds the initial form values
type ProfileConfig struct {
	Sex         string  `json:"sex"`
	Age         int     `json:"age"`
	VO2Max      float64 `json:"vo2_max"`
	DeclineRate float64 `json:"decline_rate"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	ChartHeight    int   `json:"chart_height"`
	ChartWidth     int   `json:"chart_width"`
	ShowThresholds *bool `json:"show_thresholds,omitempty"`
}

// Thresholds reports whether activity levels are drawn on the chart.
// Unset means yes.
func (d DisplayConfig) Thresholds() bool {
	return d.ShowThresholds == nil || *d.ShowThresholds
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Profile: ProfileConfig{
			Sex:         "male",
			Age:         39,
			DeclineRate: 0.7,
		},
		Display: DisplayConfig{
			ChartHeight: 16,
			ChartWidth:  70,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the configuration from ~/.vo2max/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills zero values from DefaultConfig
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Profile.Sex == "" {
		c.Profile.Sex = defaults.Profile.Sex
	}
	if c.Profile.Age == 0 {
		c.Profile.Age = defaults.Profile.Age
	}
	if c.Profile.DeclineRate == 0 {
		c.Profile.DeclineRate = defaults.Profile.DeclineRate
	}
	if c.Display.ChartHeight == 0 {
		c.Display.ChartHeight = defaults.Display.ChartHeight
	}
	if c.Display.ChartWidth == 0 {
		c.Display.ChartWidth = defaults.Display.ChartWidth
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// Save writes the configuration to ~/.vo2max/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates an example config file if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	example.Profile.VO2Max = 45
	return Save(&example)
}

// Validate checks every field and reports all problems together
func (c *Config) Validate() error {
	var err error

	switch c.Profile.Sex {
	case "male", "female":
	default:
		err = multierr.Append(err, fmt.Errorf("profile.sex must be \"male\" or \"female\", got %q", c.Profile.Sex))
	}

	if c.Profile.Age < MinAge || c.Profile.Age > MaxAge {
		err = multierr.Append(err, fmt.Errorf("profile.age must be between %d and %d, got %d", MinAge, MaxAge, c.Profile.Age))
	}
	if c.Profile.VO2Max < 0 {
		err = multierr.Append(err, fmt.Errorf("profile.vo2_max must not be negative, got %v", c.Profile.VO2Max))
	}
	if c.Profile.DeclineRate < MinDeclineRate || c.Profile.DeclineRate > MaxDeclineRate {
		err = multierr.Append(err, fmt.Errorf("profile.decline_rate must be between %v and %v, got %v", MinDeclineRate, MaxDeclineRate, c.Profile.DeclineRate))
	}

	if c.Display.ChartHeight < 5 {
		err = multierr.Append(err, fmt.Errorf("display.chart_height must be at least 5, got %d", c.Display.ChartHeight))
	}
	if c.Display.ChartWidth < 20 {
		err = multierr.Append(err, fmt.Errorf("display.chart_width must be at least 20, got %d", c.Display.ChartWidth))
	}

	if _, levelErr := zerolog.ParseLevel(c.Log.Level); levelErr != nil {
		err = multierr.Append(err, fmt.Errorf("log.level: %w", levelErr))
	}

	return err
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vo2max"), nil
}

package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"vo2max/internal/analysis"
	"vo2max/internal/config"
	"vo2max/internal/service"
	"vo2max/internal/tui"
)

func main() {
	if err := run(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
		logger.Fatal().Err(err).Msg("vo2max exited")
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		defaults := config.DefaultConfig()
		cfg = &defaults
	} else if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Validate config
	if err := cfg.Validate(); err != nil {
		configDir, _ := config.GetConfigDir()
		return fmt.Errorf("invalid config at %s/config.json: %w", configDir, err)
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}
	defer closeLog()

	logger.Info().
		Str("sex", cfg.Profile.Sex).
		Int("age", cfg.Profile.Age).
		Float64("decline_rate", cfg.Profile.DeclineRate).
		Msg("starting vo2max")

	// Create services
	svc := service.NewAssessmentService(analysis.DefaultEstimator(), logger)

	// Launch TUI
	app := tui.NewApp(svc, cfg, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// newLogger writes to the configured log file. The TUI owns the terminal,
// so without a file nothing is logged.
func newLogger(cfg config.LogConfig) (zerolog.Logger, func(), error) {
	if cfg.File == "" {
		return zerolog.Nop(), func() {}, nil
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	f, err := tea.LogToFile(cfg.File, "")
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

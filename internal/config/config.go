// Package config loads clockout's file and command-line configuration
package config

import (
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings. The working-hours policy is
	// not part of it: that lives in the data store with the session.
	Config struct {
		Store         StoreConfig        `mapstructure:"store"`
		Hooks         HooksConfig        `mapstructure:"hooks"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		CLI           CLIConfig          `mapstructure:"-"`
		Notifications NotificationConfig `mapstructure:"notifications"`
	}

	// StoreConfig selects the data store backend.
	StoreConfig struct {
		Driver string `mapstructure:"driver"`
		Path   string `mapstructure:"path"`
	}

	// SettingsConfig holds general settings.
	SettingsConfig struct {
		WeekendDays    []string `mapstructure:"weekend_days"`
		TwentyFourHour bool     `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// HooksConfig holds the commands run after each session transition.
	HooksConfig struct {
		Login      string `mapstructure:"login"`
		BreakStart string `mapstructure:"break_start"`
		BreakStop  string `mapstructure:"break_stop"`
	}

	// CLIConfig holds values that only come from command-line flags.
	CLIConfig struct {
		At      time.Time
		Debug   bool
		NoColor bool
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config, applies options in order, and validates the
// result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

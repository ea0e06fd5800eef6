// Package config loads chime's settings from the config file and the command
// line.
package config

import (
	"fmt"
	"io"
	"os"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Alarm         AlarmConfig        `mapstructure:"alarm"`
		Record        RecordConfig       `mapstructure:"record"`
		Storage       StorageConfig      `mapstructure:"storage"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Log           LogConfig          `mapstructure:"log"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Sound         SoundConfig        `mapstructure:"sound"`
		Display       DisplayConfig      `mapstructure:"display"`
	}

	// AlarmConfig holds the defaults for new alarms.
	AlarmConfig struct {
		Sound    string `mapstructure:"sound"`
		Kind     string `mapstructure:"kind"`
		Interval int    `mapstructure:"interval"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// SoundConfig holds sound settings.
	SoundConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// RecordConfig holds the settings of the recording flow.
	RecordConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// StorageConfig selects the database backend.
	StorageConfig struct {
		Backend string `mapstructure:"backend"`
	}

	// SettingsConfig holds miscellaneous settings.
	SettingsConfig struct {
		Cmd         string `mapstructure:"cmd"`
		MetricsAddr string `mapstructure:"metrics_addr"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// LogConfig holds logging settings.
	LogConfig struct {
		Level string `mapstructure:"level"`
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

// New creates a new Config and applies opts in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}

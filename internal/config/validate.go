package config

import (
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/chime/internal/models"
)

const (
	minInterval = 1
	// a week
	maxInterval = 7 * 24 * 60
)

var (
	backends  = []string{"bolt", "badger"}
	logLevels = []string{"debug", "info", "warn", "error"}
)

// Validate performs validation checks on the Config struct and its fields.
// Built-in sound names are normalised to their canonical spelling.
func (c *Config) Validate() error {
	if err := c.validateAlarm(); err != nil {
		return err
	}

	if !slices.Contains(backends, strings.ToLower(c.Storage.Backend)) {
		return errUnknownBackend.Fmt(c.Storage.Backend)
	}

	c.Storage.Backend = strings.ToLower(c.Storage.Backend)

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	if _, err := shellquote.Split(c.Record.Cmd); err != nil {
		return errInvalidCmd.Fmt("record.cmd", err)
	}

	if _, err := shellquote.Split(c.Settings.Cmd); err != nil {
		return errInvalidCmd.Fmt("settings.cmd", err)
	}

	return nil
}

func (c *Config) validateAlarm() error {
	if c.Alarm.Interval < minInterval || c.Alarm.Interval > maxInterval {
		return errInvalidInterval.Fmt(minInterval, maxInterval, c.Alarm.Interval)
	}

	if strings.TrimSpace(c.Alarm.Kind) == "" {
		c.Alarm.Kind = models.DefaultKind
	}

	return c.validateSound()
}

// validateSound accepts a built-in sound name in any case.
func (c *Config) validateSound() error {
	s, ok := models.LookupSound(c.Alarm.Sound)
	if !ok {
		return errUnknownAlarmSound.Fmt(c.Alarm.Sound)
	}

	c.Alarm.Sound = s

	return nil
}

package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyAlarmSound           = "alarm.sound"
	keyAlarmKind            = "alarm.kind"
	keyAlarmInterval        = "alarm.interval"
	keyNotificationsEnabled = "notifications.enabled"
	keySoundEnabled         = "sound.enabled"
	keyRecordCmd            = "record.cmd"
	keyStorageBackend       = "storage.backend"
	keyAlarmCmd             = "settings.cmd"
	keyMetricsAddr          = "settings.metrics_addr"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
	keyLogLevel             = "log.level"
)

// DefaultRecordCmd records CD quality audio with ALSA.
const DefaultRecordCmd = "arecord -q -f cd {file}"

// WithViperConfig returns an Option that loads configuration from the file at
// configPath. The file is created with default values if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyAlarmSound, "Default")
	v.SetDefault(keyAlarmKind, "custom")
	v.SetDefault(keyAlarmInterval, 1)
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySoundEnabled, true)
	v.SetDefault(keyRecordCmd, DefaultRecordCmd)
	v.SetDefault(keyStorageBackend, "bolt")
	v.SetDefault(keyAlarmCmd, "")
	v.SetDefault(keyMetricsAddr, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyLogLevel, "info")
}

// writePromptOptions creates the config file with the prompted values and
// the defaults for everything else.
func writePromptOptions(configPath string, opts PromptOptions) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if opts.Sound != "" {
		v.Set(keyAlarmSound, opts.Sound)
	}

	if opts.Interval > 0 {
		v.Set(keyAlarmInterval, opts.Interval)
	}

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}

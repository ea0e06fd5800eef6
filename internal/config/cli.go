package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound         string
	AlarmCmd      string
	Backend       string
	MetricsAddr   string
	LogLevel      string
	DisableNotify bool
	Mute          bool
}

// WithCLIConfig returns an Option that applies the global command-line flags
// on top of the configuration file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Sound:         ctx.String("sound"),
			AlarmCmd:      ctx.String("alarm-cmd"),
			Backend:       ctx.String("backend"),
			MetricsAddr:   ctx.String("metrics-addr"),
			LogLevel:      ctx.String("log-level"),
			DisableNotify: ctx.Bool("disable-notification"),
			Mute:          ctx.Bool("mute"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.Sound != "" {
		c.Alarm.Sound = opts.Sound
	}

	if opts.AlarmCmd != "" {
		c.Settings.Cmd = opts.AlarmCmd
	}

	if opts.Backend != "" {
		c.Storage.Backend = opts.Backend
	}

	if opts.MetricsAddr != "" {
		c.Settings.MetricsAddr = opts.MetricsAddr
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.Mute {
		c.Sound.Enabled = false
	}
}

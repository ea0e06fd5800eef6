package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	configFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "Path to the configuration file (default: $XDG_CONFIG_HOME/chime/config.yml)",
	}

	dbFlag = &cli.StringFlag{
		Name:  "db",
		Usage: "Path to the alarm database. A file for bolt, a directory for badger",
	}

	backendFlag = &cli.StringFlag{
		Name:  "backend",
		Usage: "Storage backend: bolt or badger",
	}

	headlessFlag = &cli.BoolFlag{
		Name:  "headless",
		Usage: "Print a plain countdown instead of the full screen timer",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when an alarm goes off",
	}

	muteFlag = &cli.BoolFlag{
		Name:    "mute",
		Aliases: []string{"m"},
		Usage:   "Do not play the alarm sound",
	}

	alarmCmdFlag = &cli.StringFlag{
		Name:    "alarm-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command each time an alarm goes off",
	}

	metricsAddrFlag = &cli.StringFlag{
		Name:  "metrics-addr",
		Usage: "Serve Prometheus metrics on this address while a countdown runs (e.g. 127.0.0.1:9464)",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the alarms as JSON",
	}

	sortFlag = &cli.StringFlag{
		Name:  "sort",
		Usage: "Sort alarms by name or interval (default: creation order)",
	}

	nameFlag = &cli.StringFlag{
		Name:    "name",
		Aliases: []string{"n"},
		Usage:   "Name of the alarm",
	}

	intervalFlag = &cli.StringFlag{
		Name:    "interval",
		Aliases: []string{"i"},
		Usage:   "Minutes between alarms",
	}

	typeFlag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "Alarm type, e.g. custom, dinner, workout or shower",
	}

	soundFlag = &cli.StringFlag{
		Name:    "sound",
		Aliases: []string{"s"},
		Usage:   "Alarm sound: Default, Chime, Bell or Cosmic",
	}

	repeatFlag = &cli.StringSliceFlag{
		Name:    "repeat",
		Aliases: []string{"r"},
		Usage:   "Comma separated days the alarm repeats on (e.g. mon,wed,fri)",
	}

	hoursFlag = &cli.StringFlag{
		Name:  "hours",
		Usage: "Hours on the custom timer",
	}

	minutesFlag = &cli.StringFlag{
		Name:  "minutes",
		Usage: "Minutes on the custom timer",
	}

	inFlag = &cli.StringFlag{
		Name:  "in",
		Usage: "Countdown length in plain words, e.g. 'in 20 minutes'. Overrides --hours and --minutes",
	}

	totalFlag = &cli.StringFlag{
		Name:  "total",
		Usage: "Length of the event in minutes",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Export format: json, yaml, xlsx or pdf",
		Value:   "json",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write the export to this file instead of standard output",
	}
)

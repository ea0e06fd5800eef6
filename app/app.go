// Package app wires the chime command-line interface to the alarm store and
// the countdown screens.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the chime app instance.
func Get() *cli.App {
	return newApp(NewEnv())
}

func newApp(env *Env) *cli.App {
	alarmFlags := []cli.Flag{nameFlag, intervalFlag, typeFlag, soundFlag, repeatFlag}

	return &cli.App{
		Name: "chime",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Chime is an interval alarm for the command-line. Create named alarms
		that go off every few minutes with a sound and a desktop notification,
		or run one-off and event timers.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List saved alarms",
				Flags:   []cli.Flag{jsonFlag, sortFlag},
				Action:  env.listAction,
			},
			{
				Name:   "add",
				Usage:  "Create an alarm. Without --name a form is shown",
				Flags:  alarmFlags,
				Action: env.addAction,
			},
			{
				Name:      "show",
				Usage:     "Print the details of an alarm",
				ArgsUsage: "<id>",
				Flags:     []cli.Flag{jsonFlag},
				Action:    env.showAction,
			},
			{
				Name:      "delete",
				Aliases:   []string{"rm"},
				Usage:     "Delete one or more alarms",
				ArgsUsage: "<id>...",
				Action:    env.deleteAction,
			},
			{
				Name:      "start",
				Usage:     "Start the countdown of an alarm",
				ArgsUsage: "<id>",
				Action:    env.startAction,
			},
			{
				Name:   "timer",
				Usage:  "Run a one-off countdown",
				Flags:  []cli.Flag{hoursFlag, minutesFlag, inFlag, nameFlag, soundFlag},
				Action: env.timerAction,
			},
			{
				Name:   "event",
				Usage:  "Sound an alarm every --interval minutes until --total minutes have passed",
				Flags:  []cli.Flag{nameFlag, totalFlag, intervalFlag, soundFlag},
				Action: env.eventAction,
			},
			{
				Name:   "record",
				Usage:  "Record a clip and save it as an alarm that goes off every minute",
				Flags:  []cli.Flag{nameFlag},
				Action: env.recordAction,
			},
			{
				Name:      "play",
				Usage:     "Preview a built-in sound or the sound of an alarm",
				ArgsUsage: "<sound|id>",
				Action:    env.playAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the built-in sounds",
				Action: env.soundsAction,
			},
			{
				Name:   "export",
				Usage:  "Export saved alarms as json, yaml, xlsx or pdf",
				Flags:  []cli.Flag{formatFlag, outputFlag},
				Action: env.exportAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: env.editConfigAction,
			},
		},
		Flags: []cli.Flag{
			configFlag,
			dbFlag,
			backendFlag,
			headlessFlag,
			disableNotificationFlag,
			muteFlag,
			alarmCmdFlag,
			metricsAddrFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: env.listAction,
		Before: env.beforeAction,
		After:  env.afterAction,
	}
}

package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/alert"
	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/config"
	"github.com/ayoisaiah/chime/internal/logger"
	"github.com/ayoisaiah/chime/internal/metrics"
	"github.com/ayoisaiah/chime/internal/pathutil"
	"github.com/ayoisaiah/chime/internal/ui"
	"github.com/ayoisaiah/chime/media"
	"github.com/ayoisaiah/chime/notify"
	"github.com/ayoisaiah/chime/store"
	"github.com/ayoisaiah/chime/timer"
)

// Env is the application state shared by all commands. It is populated once
// by the Before hook and released by the After hook.
type Env struct {
	Config  *config.Config
	Paths   *pathutil.Paths
	Metrics *metrics.Metrics

	// Clock drives every countdown.
	Clock countdown.Clock
	// NewPlayer builds the audio player used for alarms and previews.
	NewPlayer func() media.Player
	// NewNotifier builds the desktop notifier.
	NewNotifier func(iconPath string) notify.Notifier
	// NewRecorder builds the recorder of the record command.
	NewRecorder func(cmd, dir string) media.Recorder
	// Interactive reports whether prompts and the full screen timer can be
	// shown.
	Interactive func() bool

	alarms    *store.Alarms
	logCloser io.Closer
	headless  bool
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

// NewEnv returns an Env wired to the real audio, notification and terminal.
func NewEnv() *Env {
	return &Env{
		Clock: countdown.SystemClock,
		NewPlayer: func() media.Player {
			return media.NewBeepPlayer()
		},
		NewNotifier: func(iconPath string) notify.Notifier {
			return notify.NewDesktop(iconPath)
		},
		NewRecorder: func(cmd, dir string) media.Recorder {
			return media.NewCommandRecorder(cmd, dir)
		},
		Interactive: isTerminal,
	}
}

// load resolves paths, reads the configuration, and sets up logging and
// metrics.
func (e *Env) load(ctx *cli.Context) error {
	paths, err := pathutil.Resolve()
	if err != nil {
		return err
	}

	if p := ctx.String("config"); p != "" {
		paths.ConfigFile = p
	}

	opts := []config.Option{}

	if e.Interactive() {
		opts = append(opts, config.WithPromptConfig(paths.ConfigFile))
	}

	opts = append(
		opts,
		config.WithViperConfig(paths.ConfigFile),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return err
	}

	closer, err := logger.Init(paths.LogFile, cfg.Log.Level)
	if err != nil {
		return err
	}

	e.Config = cfg
	e.Paths = paths
	e.Metrics = metrics.New()
	e.logCloser = closer
	e.headless = ctx.Bool("headless") || !e.Interactive()

	if p := ctx.String("db"); p != "" {
		switch cfg.Storage.Backend {
		case store.BackendBadger:
			paths.BadgerDir = p
		default:
			paths.BoltFile = p
		}
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	slog.Debug(
		"configuration loaded",
		"config", paths.ConfigFile,
		"backend", cfg.Storage.Backend,
	)

	return nil
}

// Store opens the alarm store on first use. Commands that never touch the
// store do not lock the database.
func (e *Env) Store() (*store.Alarms, error) {
	if e.alarms != nil {
		return e.alarms, nil
	}

	backend := e.Config.Storage.Backend

	kv, err := store.Open(backend, e.Paths.DBPath(backend))
	if err != nil {
		return nil, err
	}

	e.alarms = store.NewAlarms(kv)
	e.alarms.SetObserver(e.Metrics.ObserveStore)

	return e.alarms, nil
}

// Trigger builds the side effects of an alarm according to the
// configuration.
func (e *Env) Trigger() *alert.Trigger {
	opts := []alert.Option{alert.WithCommand(e.Config.Settings.Cmd)}

	if e.Config.Sound.Enabled {
		opts = append(opts, alert.WithPlayer(e.NewPlayer()))
	}

	if e.Config.Notifications.Enabled {
		opts = append(opts, alert.WithNotifier(e.NewNotifier(e.Paths.IconFile)))
	}

	return alert.New(opts...)
}

// RunCountdown shows a countdown for opts, serving metrics while it runs
// when an address is configured.
func (e *Env) RunCountdown(ctx context.Context, opts timer.Options) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if addr := e.Config.Settings.MetricsAddr; addr != "" {
		if _, err := e.Metrics.Serve(ctx, addr); err != nil {
			return errMetricsServer.Fmt(addr).Wrap(err)
		}
	}

	opts.Trigger = e.Trigger()
	opts.Clock = e.Clock
	opts.OnFire = e.Metrics.ObserveTrigger
	opts.TwentyFourHour = e.Config.Display.TwentyFourHour
	opts.DarkTheme = e.Config.Display.DarkTheme
	opts.Observers = append(
		opts.Observers,
		e.Metrics.CountdownObserver(opts.Alarm.Kind),
	)

	slog.Info(
		"countdown screen opened",
		"alarm", opts.Alarm.ID,
		"seconds", opts.TotalSeconds,
		"repeat", opts.Repeat,
		"headless", e.headless,
	)

	if e.headless {
		return timer.RunHeadless(ctx, config.Stdout, opts)
	}

	return timer.Run(ctx, opts)
}

// Close releases the store and the log file.
func (e *Env) Close() error {
	var errs []error

	if e.alarms != nil {
		errs = append(errs, e.alarms.Close())
		e.alarms = nil
	}

	if e.logCloser != nil {
		errs = append(errs, e.logCloser.Close())
		e.logCloser = nil
	}

	return errors.Join(errs...)
}

package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/chime/alarm"
	"github.com/ayoisaiah/chime/internal/config"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/ui"
	"github.com/ayoisaiah/chime/report"
)

// waitForEnter blocks until a line is read from standard input or ctx is
// cancelled.
func waitForEnter(ctx context.Context) error {
	fmt.Fprint(config.Stdout, pterm.Info.Sprint("Recording... press ENTER to stop"))

	line := make(chan error, 1)

	go func() {
		_, err := bufio.NewReader(config.Stdin).ReadString('\n')
		line <- err
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(config.Stdout)
		return ctx.Err()
	case <-line:
		// EOF also ends the recording
		return nil
	}
}

// recordAction records a clip and stores it as a new alarm.
func (e *Env) recordAction(ctx *cli.Context) error {
	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	rec := e.NewRecorder(e.Config.Record.Cmd, e.Paths.RecordingsDir)

	s, err := e.Store()
	if err != nil {
		return err
	}

	a, err := alarm.RecordAlarm(
		sigCtx,
		rec,
		s,
		ctx.String("name"),
		waitForEnter,
	)
	if err != nil {
		return err
	}

	report.AlarmAdded(a)

	return nil
}

// soundRef resolves the argument of the play command to a built-in sound or
// the sound of a stored alarm.
func (e *Env) soundRef(arg string) (string, error) {
	if s, ok := models.LookupSound(arg); ok {
		return s, nil
	}

	if arg == "" {
		return e.Config.Alarm.Sound, nil
	}

	a, err := e.findAlarm(arg)
	if err != nil {
		return "", err
	}

	return a.SoundRef(), nil
}

// playAction previews a sound until it ends or the user interrupts it.
func (e *Env) playAction(ctx *cli.Context) error {
	ref, err := e.soundRef(ctx.Args().First())
	if err != nil {
		return err
	}

	sigCtx, stop := signal.NotifyContext(
		ctx.Context,
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	p := e.NewPlayer()

	h, err := p.Play(ref)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("playing %s", ref)

	select {
	case <-h.Done():
	case <-sigCtx.Done():
	}

	return p.Release(h)
}

// soundsAction lists the built-in sounds.
func (e *Env) soundsAction(_ *cli.Context) error {
	data := [][]string{{"SOUND", "DEFAULT"}}

	for _, s := range models.Sounds {
		def := ""
		if s == e.Config.Alarm.Sound {
			def = ui.Green("✓")
		}

		data = append(data, []string{s, def})
	}

	ui.PrintTable(data, config.Stdout)

	return nil
}

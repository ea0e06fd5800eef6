package timer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/timeutil"
	"github.com/ayoisaiah/chime/internal/ui"
)

// printer renders engine events as a single rewritten line.
type printer struct {
	w    io.Writer
	opts *Options
	done chan struct{}
	mu   sync.Mutex
}

func (p *printer) countdown(s countdown.State) {
	fmt.Fprintf(
		p.w,
		"\r\033[K🕒%s",
		ui.Yellow(timeutil.FormatClock(s.Remaining)),
	)
}

func (p *printer) observe(ev countdown.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Type {
	case countdown.EventStarted:
		fmt.Fprintf(
			p.w,
			"%s: %s\n",
			ui.Green("["+p.opts.Alarm.Name+"]"),
			ui.Highlight(timeutil.FormatClock(ev.State.Total)),
		)

		p.countdown(ev.State)
	case countdown.EventTick, countdown.EventResumed, countdown.EventReset:
		p.countdown(ev.State)
	case countdown.EventCompleted:
		fmt.Fprintf(p.w, "\r\033[K%s\n", ui.Red(
			fmt.Sprintf("Alarm #%d went off", ev.State.Cycle),
		))
	case countdown.EventFinished, countdown.EventStopped:
		fmt.Fprintln(p.w)
		close(p.done)
	case countdown.EventPaused:
	}
}

// RunHeadless prints a plain countdown to w and blocks until a non repeating
// countdown finishes, ctx is cancelled or the process is interrupted.
func RunHeadless(ctx context.Context, w io.Writer, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := &printer{
		w:    w,
		opts: &opts,
		done: make(chan struct{}),
	}

	e := opts.engine(countdown.WithObserver(p.observe))

	defer func() {
		e.Stop()

		if err := opts.Trigger.Close(); err != nil {
			slog.Warn("unable to release alarm sound", "error", err)
		}
	}()

	if err := e.Start(ctx, opts.TotalSeconds); err != nil {
		return err
	}

	<-p.done

	return nil
}

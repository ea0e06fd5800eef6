// Package alert fires the side effects of an alarm going off: the alarm
// sound, a desktop notification and an optional user command.
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/apperr"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/media"
	"github.com/ayoisaiah/chime/notify"
)

var errAlarmCmd = &apperr.Error{
	Message: "unable to run alarm command %q",
}

// Option configures a Trigger.
type Option func(*Trigger)

// WithPlayer enables the alarm sound.
func WithPlayer(p media.Player) Option {
	return func(t *Trigger) {
		t.player = p
	}
}

// WithNotifier enables desktop notifications.
func WithNotifier(n notify.Notifier) Option {
	return func(t *Trigger) {
		t.notifier = n
	}
}

// WithCommand runs cmd every time an alarm fires. The alarm is described to
// the command through CHIME_ALARM_* environment variables.
func WithCommand(cmd string) Option {
	return func(t *Trigger) {
		t.cmd = cmd
	}
}

// Trigger plays sounds and sends notifications for one screen. It holds at
// most one playing sound, which is released when the next alarm fires or the
// trigger is closed.
type Trigger struct {
	player   media.Player
	notifier notify.Notifier
	held     media.Handle
	cmd      string
	mu       sync.Mutex
}

// New returns a Trigger. Without options it does nothing.
func New(opts ...Option) *Trigger {
	t := &Trigger{}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Message returns the notification title and body for a.
func Message(a *models.Alarm) (title, body string) {
	kind := a.Kind
	if kind == "" {
		kind = models.DefaultKind
	}

	return a.Name, fmt.Sprintf("Time for your %s alarm!", kind)
}

// Fire plays the alarm sound, notifies the user and runs the alarm command.
// Every step is attempted; the failures are joined and returned.
func (t *Trigger) Fire(ctx context.Context, a *models.Alarm) error {
	var errs []error

	if err := t.play(a.SoundRef()); err != nil {
		errs = append(errs, err)
	}

	if t.notifier != nil {
		title, body := Message(a)

		if err := t.notifier.ScheduleImmediate(title, body); err != nil {
			errs = append(errs, err)
		}
	}

	if err := t.runCmd(ctx, a); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Hook adapts Fire to a countdown completion hook for a.
func (t *Trigger) Hook(a *models.Alarm) countdown.CompletionFunc {
	return func(ctx context.Context, _ countdown.State) error {
		return t.Fire(ctx, a)
	}
}

func (t *Trigger) play(ref string) error {
	if t.player == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.release(); err != nil {
		slog.Warn("unable to release previous alarm sound", "error", err)
	}

	h, err := t.player.Play(ref)
	if err != nil {
		return err
	}

	t.held = h

	return nil
}

// release must be called with mu held.
func (t *Trigger) release() error {
	if t.held == nil {
		return nil
	}

	h := t.held
	t.held = nil

	return t.player.Release(h)
}

func (t *Trigger) runCmd(ctx context.Context, a *models.Alarm) error {
	if t.cmd == "" {
		return nil
	}

	args, err := shellquote.Split(t.cmd)
	if err != nil {
		return errAlarmCmd.Fmt(t.cmd).Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Env = append(
		os.Environ(),
		"CHIME_ALARM_ID="+a.ID,
		"CHIME_ALARM_NAME="+a.Name,
		"CHIME_ALARM_TYPE="+a.Kind,
		"CHIME_ALARM_INTERVAL="+strconv.Itoa(a.IntervalMinutes),
	)

	if err := cmd.Run(); err != nil {
		return errAlarmCmd.Fmt(t.cmd).Wrap(err)
	}

	return nil
}

// Close releases the sound that is still held, if any.
func (t *Trigger) Close() error {
	if t.player == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.release()
}

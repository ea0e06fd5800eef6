// Package timer runs the countdown screen of an alarm, the custom timer or
// an event timer, either as a full screen terminal UI or as a plain
// countdown when no terminal is attached.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/chime/alert"
	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/models"
)

// eventBuffer bounds the queue between the engine and the screen. Events that
// do not fit are dropped; the screen always renders a fresh engine snapshot.
const eventBuffer = 64

// Options describes one countdown screen.
type Options struct {
	// Alarm is what fires on completion. Event and custom timers pass a
	// transient alarm that is never stored.
	Alarm *models.Alarm
	// Trigger fires the alarm. A nil Trigger does nothing.
	Trigger *alert.Trigger
	// Clock replaces the wall clock, mainly in tests.
	Clock countdown.Clock
	// OnFire receives the result of every completion.
	OnFire func(error)
	// Observers receive every engine event.
	Observers []func(countdown.Event)
	// TotalSeconds is the length of one cycle.
	TotalSeconds int
	// MaxCycles stops a repeating countdown after that many completions.
	MaxCycles      int
	Repeat         bool
	TwentyFourHour bool
	DarkTheme      bool
}

type eventMsg countdown.Event

// Model is the bubbletea model of the countdown screen. It owns exactly one
// engine.
type Model struct {
	ctx      context.Context
	cancel   context.CancelFunc
	engine   *countdown.Engine
	trigger  *alert.Trigger
	events   chan countdown.Event
	now      func() time.Time
	err      error
	opts     Options
	style    Style
	help     help.Model
	progress progress.Model
	state    countdown.State
	finished bool
	quitting bool
}

func (o *Options) validate() error {
	if o.TotalSeconds <= 0 {
		return errNoDuration
	}

	if o.Alarm == nil {
		return errNoAlarm
	}

	if o.Trigger == nil {
		o.Trigger = alert.New()
	}

	if o.Clock == nil {
		o.Clock = countdown.SystemClock
	}

	return nil
}

// hook wraps the alarm trigger so that its outcome reaches OnFire.
func (o *Options) hook() countdown.CompletionFunc {
	fire := o.Trigger.Hook(o.Alarm)

	return func(ctx context.Context, s countdown.State) error {
		err := fire(ctx, s)
		if o.OnFire != nil {
			o.OnFire(err)
		}

		return err
	}
}

func (o *Options) engine(extra ...countdown.Option) *countdown.Engine {
	opts := []countdown.Option{
		countdown.WithRepeat(o.Repeat),
		countdown.WithMaxCycles(o.MaxCycles),
		countdown.WithClock(o.Clock),
		countdown.WithCompletion(o.hook()),
	}

	for _, fn := range o.Observers {
		opts = append(opts, countdown.WithObserver(fn))
	}

	return countdown.New(append(opts, extra...)...)
}

// NewModel builds the countdown screen. The countdown starts when the
// program calls Init.
func NewModel(ctx context.Context, opts Options) (*Model, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)

	m := &Model{
		ctx:      ctx,
		cancel:   cancel,
		opts:     opts,
		trigger:  opts.Trigger,
		events:   make(chan countdown.Event, eventBuffer),
		now:      time.Now,
		style:    NewStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
	}

	m.engine = opts.engine(countdown.WithObserver(m.forward))
	m.state = m.engine.State()

	return m, nil
}

// forward hands events to the UI goroutine without ever blocking the
// engine.
func (m *Model) forward(ev countdown.Event) {
	select {
	case m.events <- ev:
	default:
		slog.Debug("dropped countdown event", "event", ev.Type.String())
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
			return nil
		case ev := <-m.events:
			return eventMsg(ev)
		}
	}
}

func (m *Model) start() {
	m.finished = false

	if err := m.engine.Start(m.ctx, m.opts.TotalSeconds); err != nil {
		m.err = err
	}

	m.state = m.engine.State()
}

// Init starts the countdown.
func (m *Model) Init() tea.Cmd {
	m.start()

	return m.waitForEvent()
}

// State returns the last engine snapshot rendered by the screen.
func (m *Model) State() countdown.State {
	return m.state
}

// Err returns the last error reported by the engine.
func (m *Model) Err() error {
	return m.err
}

// Close stops the countdown, ends any pending event wait and releases the
// alarm sound.
func (m *Model) Close() {
	m.engine.Stop()
	m.cancel()

	if err := m.trigger.Close(); err != nil {
		slog.Warn("unable to release alarm sound", "error", err)
	}
}

// Run shows the countdown screen until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m, err := NewModel(ctx, opts)
	if err != nil {
		return err
	}

	defer m.Close()

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() == nil {
		return errTimerUI.Wrap(err)
	}

	return nil
}

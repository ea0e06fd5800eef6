// Package countdown implements the single active timer that drives the alarm
// and timer screens. An Engine owns exactly one ticker; ticks are processed one
// at a time and the completion hook runs once each time the counter reaches
// zero.
package countdown

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TickInterval is the period between ticks.
const TickInterval = time.Second

// CompletionFunc is called each time the countdown reaches zero. A returned
// error is logged and does not affect the state transition.
type CompletionFunc func(ctx context.Context, s State) error

// Option configures an Engine.
type Option func(*Engine)

// WithRepeat makes the countdown reload its duration after each completion
// instead of returning to Idle.
func WithRepeat(repeat bool) Option {
	return func(e *Engine) {
		e.repeat = repeat
	}
}

// WithMaxCycles ends a repeating countdown after n completions. Zero means no
// limit.
func WithMaxCycles(n int) Option {
	return func(e *Engine) {
		e.maxCycles = n
	}
}

// WithClock replaces the wall clock tick source.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		e.clock = c
	}
}

// WithCompletion sets the hook that runs when the counter reaches zero.
func WithCompletion(fn CompletionFunc) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// WithObserver registers fn to receive every state change. fn is called
// without any engine lock held.
func WithObserver(fn func(Event)) Option {
	return func(e *Engine) {
		e.observers = append(e.observers, fn)
	}
}

// Engine is a countdown state machine.
type Engine struct {
	clock      Clock
	onComplete CompletionFunc
	ticker     Ticker
	stopLoop   context.CancelFunc
	// releaseCtx detaches the cancellation watcher of the current run.
	releaseCtx func() bool
	ctx        context.Context
	observers  []func(Event)
	state      State
	maxCycles  int
	// gen changes whenever the ticker is replaced or the run ends so that
	// ticks and completions belonging to an older ticker are discarded.
	gen uint64
	// run identifies the current Start call.
	run    uint64
	repeat bool

	mu sync.Mutex
	// tickMu keeps ticks, including their completion hook, strictly
	// sequential.
	tickMu sync.Mutex
}

// New returns an idle engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		clock: SystemClock,
		ctx:   context.Background(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// State returns a snapshot of the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state
}

func (e *Engine) emit(events []Event) {
	for _, ev := range events {
		for _, fn := range e.observers {
			fn(ev)
		}
	}
}

// startTicker must be called with mu held.
func (e *Engine) startTicker() {
	e.gen++

	t := e.clock.NewTicker(TickInterval)
	loopCtx, cancel := context.WithCancel(context.Background())

	e.ticker = t
	e.stopLoop = cancel

	go e.loop(loopCtx, t, e.gen)
}

// stopTicker must be called with mu held.
func (e *Engine) stopTicker() {
	e.gen++

	if e.ticker != nil {
		e.ticker.Stop()
		e.ticker = nil
	}

	if e.stopLoop != nil {
		e.stopLoop()
		e.stopLoop = nil
	}
}

// endRun must be called with mu held.
func (e *Engine) endRun() {
	e.stopTicker()

	if e.releaseCtx != nil {
		e.releaseCtx()
		e.releaseCtx = nil
	}
}

func (e *Engine) loop(ctx context.Context, t Ticker, gen uint64) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.Chan():
			e.tick(gen)
		}
	}
}

// Start begins counting down from totalSeconds. Cancelling ctx has the same
// effect as calling Stop.
func (e *Engine) Start(ctx context.Context, totalSeconds int) error {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if totalSeconds <= 0 {
		return ErrInvalidDuration.Fmt(totalSeconds)
	}

	if e.state.Phase == Running || e.state.Phase == Paused {
		return ErrAlreadyStarted
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if e.releaseCtx != nil {
		e.releaseCtx()
	}

	e.state = State{
		Total:     totalSeconds,
		Remaining: totalSeconds,
		Phase:     Running,
	}
	e.ctx = ctx

	e.run++
	e.startTicker()

	run := e.run

	e.releaseCtx = context.AfterFunc(ctx, func() {
		e.cancelRun(run)
	})

	slog.Debug("countdown started", "total", totalSeconds, "repeat", e.repeat)

	events = append(events, Event{Type: EventStarted, State: e.state})

	return nil
}

// Pause stops the ticker and keeps the remaining time.
func (e *Engine) Pause() error {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase != Running {
		return ErrNotRunning
	}

	e.stopTicker()
	e.state.Phase = Paused

	events = append(events, Event{Type: EventPaused, State: e.state})

	return nil
}

// Resume restarts the ticker from the retained remaining time.
func (e *Engine) Resume() error {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Phase != Paused {
		return ErrNotPaused
	}

	e.state.Phase = Running
	e.startTicker()

	events = append(events, Event{Type: EventResumed, State: e.state})

	return nil
}

// Stop returns the engine to Idle from any phase and resets the remaining
// time to the full duration. No tick is processed after Stop returns and a
// completion that has not been dispatched yet is dropped.
func (e *Engine) Stop() {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stop() {
		events = append(events, Event{Type: EventStopped, State: e.state})
	}
}

// stop must be called with mu held. It reports whether a run was active.
func (e *Engine) stop() bool {
	wasIdle := e.state.Phase == Idle

	e.endRun()

	e.state.Phase = Idle
	e.state.Remaining = e.state.Total

	return !wasIdle
}

// cancelRun stops the run started by Start call number run if it is still
// current.
func (e *Engine) cancelRun(run uint64) {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	if run != e.run || e.state.Phase == Idle {
		return
	}

	if e.stop() {
		slog.Debug("countdown cancelled by context")

		events = append(events, Event{Type: EventStopped, State: e.state})
	}
}

// Tick processes a single tick. It is a no-op unless the countdown is
// running.
func (e *Engine) Tick() {
	e.mu.Lock()
	gen := e.gen
	e.mu.Unlock()

	e.tick(gen)
}

func (e *Engine) tick(gen uint64) {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	e.mu.Lock()

	if e.state.Phase != Running || gen != e.gen {
		e.mu.Unlock()
		return
	}

	if e.state.Remaining > 0 {
		e.state.Remaining--
	}

	events := []Event{{Type: EventTick, State: e.state}}

	if e.state.Remaining > 0 {
		e.mu.Unlock()
		e.emit(events)

		return
	}

	e.state.Phase = Completed
	e.state.Cycle++

	snapshot := e.state
	hook := e.onComplete
	ctx := e.ctx

	events = append(events, Event{Type: EventCompleted, State: snapshot})

	e.mu.Unlock()
	e.emit(events)

	if hook != nil && e.stillCompleted(gen) {
		if err := hook(ctx, snapshot); err != nil {
			slog.Error(
				"countdown completion hook failed",
				"cycle", snapshot.Cycle,
				"error", err,
			)
		}
	}

	e.afterCompletion(gen)
}

func (e *Engine) stillCompleted(gen uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.state.Phase == Completed && gen == e.gen
}

// afterCompletion moves a completed countdown back to Running in repeat mode
// or to Idle otherwise.
func (e *Engine) afterCompletion(gen uint64) {
	var events []Event

	defer func() { e.emit(events) }()

	e.mu.Lock()
	defer e.mu.Unlock()

	// stopped while the hook was running
	if e.state.Phase != Completed || gen != e.gen {
		return
	}

	if e.repeat && (e.maxCycles == 0 || e.state.Cycle < e.maxCycles) {
		e.state.Remaining = e.state.Total
		e.state.Phase = Running

		events = append(events, Event{Type: EventReset, State: e.state})

		return
	}

	e.endRun()

	e.state.Phase = Idle

	events = append(events, Event{Type: EventFinished, State: e.state})
}

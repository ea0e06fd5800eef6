package countdown_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/chime/countdown"
)

// manualClock hands out tickers that only fire when the test says so.
type manualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

type manualTicker struct {
	ch      chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func (c *manualClock) NewTicker(time.Duration) countdown.Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := &manualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}

	c.tickers = append(c.tickers, t)

	return t
}

func (c *manualClock) last() *manualTicker {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tickers[len(c.tickers)-1]
}

func (c *manualClock) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.tickers)
}

func (t *manualTicker) Chan() <-chan time.Time {
	return t.ch
}

func (t *manualTicker) Stop() {
	t.once.Do(func() { close(t.stopped) })
}

// fire delivers a tick and reports whether the engine received it.
func (t *manualTicker) fire() bool {
	select {
	case t.ch <- time.Now():
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func (t *manualTicker) isStopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

// recorder collects observed events.
type recorder struct {
	mu     sync.Mutex
	events []countdown.Event
}

func (r *recorder) observe(ev countdown.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
}

func (r *recorder) count(typ countdown.EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int

	for _, ev := range r.events {
		if ev.Type == typ {
			n++
		}
	}

	return n
}

func (r *recorder) remaining() []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []int

	for _, ev := range r.events {
		if ev.Type == countdown.EventTick {
			out = append(out, ev.State.Remaining)
		}
	}

	return out
}

func newEngine(
	t *testing.T,
	opts ...countdown.Option,
) (*countdown.Engine, *manualClock, *recorder) {
	t.Helper()

	clock := &manualClock{}
	rec := &recorder{}

	opts = append(
		[]countdown.Option{
			countdown.WithClock(clock),
			countdown.WithObserver(rec.observe),
		},
		opts...,
	)

	e := countdown.New(opts...)
	t.Cleanup(e.Stop)

	return e, clock, rec
}

func descending(from int) []int {
	out := make([]int, 0, from)

	for i := from - 1; i >= 0; i-- {
		out = append(out, i)
	}

	return out
}

func TestStartInvalidDuration(t *testing.T) {
	testCases := []struct {
		Name  string
		Total int
	}{
		{Name: "zero", Total: 0},
		{Name: "negative", Total: -5},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e, clock, rec := newEngine(t)

			err := e.Start(context.Background(), tc.Total)
			require.ErrorIs(t, err, countdown.ErrInvalidDuration)

			assert.Equal(t, countdown.State{}, e.State())
			assert.Equal(t, 0, clock.count())
			assert.Equal(t, 0, rec.count(countdown.EventStarted))
		})
	}
}

func TestStartTwice(t *testing.T) {
	e, _, _ := newEngine(t)

	require.NoError(t, e.Start(context.Background(), 10))
	assert.ErrorIs(t, e.Start(context.Background(), 20), countdown.ErrAlreadyStarted)

	require.NoError(t, e.Pause())
	assert.ErrorIs(t, e.Start(context.Background(), 20), countdown.ErrAlreadyStarted)

	assert.Equal(t, 10, e.State().Total)
}

func TestTicksCountDownToCompletion(t *testing.T) {
	for _, d := range []int{1, 2, 7, 60} {
		var completions int

		e, _, rec := newEngine(t, countdown.WithCompletion(
			func(_ context.Context, s countdown.State) error {
				completions++

				assert.Equal(t, countdown.Completed, s.Phase)
				assert.Equal(t, 0, s.Remaining)

				return nil
			},
		))

		require.NoError(t, e.Start(context.Background(), d))

		for n := 0; n < d; n++ {
			e.Tick()
		}

		assert.Equal(t, descending(d), rec.remaining())
		assert.Equal(t, 1, completions)
		assert.Equal(t, 1, rec.count(countdown.EventCompleted))

		s := e.State()
		assert.Equal(t, countdown.Idle, s.Phase)
		assert.Equal(t, 0, s.Remaining)

		// further ticks are ignored
		e.Tick()
		assert.Len(t, rec.remaining(), d)
	}
}

func TestRepeatMode(t *testing.T) {
	var completions int

	e, _, rec := newEngine(
		t,
		countdown.WithRepeat(true),
		countdown.WithCompletion(func(context.Context, countdown.State) error {
			completions++
			return nil
		}),
	)

	require.NoError(t, e.Start(context.Background(), 3))

	for n := 0; n < 3; n++ {
		e.Tick()
	}

	s := e.State()
	assert.Equal(t, countdown.Running, s.Phase)
	assert.Equal(t, 3, s.Remaining)
	assert.Equal(t, 1, s.Cycle)
	assert.Equal(t, 1, completions)
	assert.Equal(t, 1, rec.count(countdown.EventReset))

	for n := 0; n < 6; n++ {
		e.Tick()
	}

	assert.Equal(t, 3, completions)
	assert.Equal(t, countdown.Running, e.State().Phase)
	assert.Equal(t, []int{2, 1, 0, 2, 1, 0, 2, 1, 0}, rec.remaining())
}

func TestMaxCycles(t *testing.T) {
	var completions int

	e, clock, rec := newEngine(
		t,
		countdown.WithRepeat(true),
		countdown.WithMaxCycles(2),
		countdown.WithCompletion(func(context.Context, countdown.State) error {
			completions++
			return nil
		}),
	)

	require.NoError(t, e.Start(context.Background(), 2))

	for n := 0; n < 10; n++ {
		e.Tick()
	}

	assert.Equal(t, 2, completions)
	assert.Equal(t, countdown.Idle, e.State().Phase)
	assert.Equal(t, 1, rec.count(countdown.EventFinished))
	assert.True(t, clock.last().isStopped())
}

func TestPauseResume(t *testing.T) {
	e, clock, rec := newEngine(t)

	require.NoError(t, e.Start(context.Background(), 5))

	e.Tick()
	e.Tick()

	first := clock.last()

	require.NoError(t, e.Pause())
	assert.True(t, first.isStopped())
	assert.Equal(t, countdown.Paused, e.State().Phase)

	// ticks while paused are ignored
	e.Tick()
	assert.Equal(t, 3, e.State().Remaining)

	require.NoError(t, e.Resume())
	assert.Equal(t, 3, e.State().Remaining)
	assert.Equal(t, 2, clock.count(), "resume must create a new ticker")

	e.Tick()
	e.Tick()
	e.Tick()

	assert.Equal(t, []int{4, 3, 2, 1, 0}, rec.remaining())
	assert.Equal(t, countdown.Idle, e.State().Phase)
}

func TestPauseResumeInvalid(t *testing.T) {
	e, _, _ := newEngine(t)

	assert.ErrorIs(t, e.Pause(), countdown.ErrNotRunning)
	assert.ErrorIs(t, e.Resume(), countdown.ErrNotPaused)

	require.NoError(t, e.Start(context.Background(), 5))
	assert.ErrorIs(t, e.Resume(), countdown.ErrNotPaused)
}

func TestStopFromEveryPhase(t *testing.T) {
	testCases := []struct {
		Name string
		Prep func(e *countdown.Engine)
	}{
		{
			Name: "idle",
			Prep: func(*countdown.Engine) {},
		},
		{
			Name: "running",
			Prep: func(e *countdown.Engine) {
				_ = e.Start(context.Background(), 10)
				e.Tick()
			},
		},
		{
			Name: "paused",
			Prep: func(e *countdown.Engine) {
				_ = e.Start(context.Background(), 10)
				e.Tick()
				_ = e.Pause()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			e, _, rec := newEngine(t)

			tc.Prep(e)

			e.Stop()

			s := e.State()
			assert.Equal(t, countdown.Idle, s.Phase)
			assert.Equal(t, s.Total, s.Remaining)

			ticks := len(rec.remaining())

			e.Tick()
			assert.Len(t, rec.remaining(), ticks)
		})
	}
}

func TestStopDuringCompletionDiscardsRepeat(t *testing.T) {
	var e *countdown.Engine

	e, _, rec := newEngine(
		t,
		countdown.WithRepeat(true),
		countdown.WithCompletion(func(context.Context, countdown.State) error {
			e.Stop()
			return nil
		}),
	)

	require.NoError(t, e.Start(context.Background(), 1))

	e.Tick()

	s := e.State()
	assert.Equal(t, countdown.Idle, s.Phase)
	assert.Equal(t, 1, s.Remaining)
	assert.Equal(t, 0, rec.count(countdown.EventReset))
	assert.Equal(t, 1, rec.count(countdown.EventStopped))
}

func TestCompletionHookFailure(t *testing.T) {
	e, _, rec := newEngine(
		t,
		countdown.WithCompletion(func(context.Context, countdown.State) error {
			return errors.New("sound asset missing")
		}),
	)

	require.NoError(t, e.Start(context.Background(), 2))

	e.Tick()
	e.Tick()

	assert.Equal(t, countdown.Idle, e.State().Phase)
	assert.Equal(t, 1, rec.count(countdown.EventCompleted))
	assert.Equal(t, 1, rec.count(countdown.EventFinished))
}

func TestTickerDrivesEngine(t *testing.T) {
	done := make(chan struct{})

	e, clock, rec := newEngine(
		t,
		countdown.WithCompletion(func(context.Context, countdown.State) error {
			close(done)
			return nil
		}),
	)

	require.NoError(t, e.Start(context.Background(), 3))

	ticker := clock.last()

	for n := 0; n < 3; n++ {
		require.True(t, ticker.fire())
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("completion hook did not run")
	}

	require.Eventually(t, func() bool {
		return e.State().Phase == countdown.Idle
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []int{2, 1, 0}, rec.remaining())
	assert.True(t, ticker.isStopped())

	_ = ticker.fire()
	assert.Equal(t, []int{2, 1, 0}, rec.remaining(), "no tick may be processed after the run ends")
}

func TestNoTickAfterStop(t *testing.T) {
	e, clock, rec := newEngine(t)

	require.NoError(t, e.Start(context.Background(), 10))

	ticker := clock.last()
	require.True(t, ticker.fire())

	require.Eventually(t, func() bool {
		return len(rec.remaining()) == 1
	}, time.Second, 5*time.Millisecond)

	e.Stop()

	assert.True(t, ticker.isStopped())

	_ = ticker.fire()
	assert.Len(t, rec.remaining(), 1)
}

func TestContextCancellationStops(t *testing.T) {
	e, clock, rec := newEngine(t)

	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, e.Start(ctx, 10))

	ticker := clock.last()

	cancel()

	require.Eventually(t, func() bool {
		return e.State().Phase == countdown.Idle
	}, time.Second, 5*time.Millisecond)

	assert.True(t, ticker.isStopped())
	assert.Equal(t, 1, rec.count(countdown.EventStopped))

	// an engine can be reused after its context is cancelled
	require.NoError(t, e.Start(context.Background(), 4))
	assert.Equal(t, countdown.Running, e.State().Phase)
}

func TestDinnerScenario(t *testing.T) {
	var completions int

	e, _, rec := newEngine(t, countdown.WithCompletion(
		func(context.Context, countdown.State) error {
			completions++
			return nil
		},
	))

	require.NoError(t, e.Start(context.Background(), 300))

	for n := 0; n < 300; n++ {
		e.Tick()
	}

	assert.Equal(t, 1, completions)
	assert.Equal(t, descending(300), rec.remaining())

	var phases []countdown.EventType

	for _, ev := range rec.events {
		if ev.Type != countdown.EventTick {
			phases = append(phases, ev.Type)
		}
	}

	assert.Equal(t, []countdown.EventType{
		countdown.EventStarted,
		countdown.EventCompleted,
		countdown.EventFinished,
	}, phases)
	assert.Equal(t, countdown.Idle, e.State().Phase)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "running", countdown.Running.String())
	assert.Equal(t, "Phase(42)", countdown.Phase(42).String())
	assert.Equal(t, "finished", countdown.EventFinished.String())
}

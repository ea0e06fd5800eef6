package timer

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/chime/alert"
	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/models"
)

type stillTicker struct{ ch chan time.Time }

func (t stillTicker) Chan() <-chan time.Time { return t.ch }

func (stillTicker) Stop() {}

// stillClock never ticks; tests drive the engine with Tick.
type stillClock struct{}

func (stillClock) NewTicker(time.Duration) countdown.Ticker {
	return stillTicker{ch: make(chan time.Time)}
}

type fastTicker struct{ *time.Ticker }

func (t fastTicker) Chan() <-chan time.Time { return t.C }

// fastClock ticks every millisecond whatever the requested period.
type fastClock struct{}

func (fastClock) NewTicker(time.Duration) countdown.Ticker {
	return fastTicker{time.NewTicker(time.Millisecond)}
}

type fakeNotifier struct {
	titles []string
	err    error
	mu     sync.Mutex
}

func (n *fakeNotifier) ScheduleImmediate(title, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.titles = append(n.titles, title)

	return n.err
}

func (n *fakeNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return len(n.titles)
}

var dinner = &models.Alarm{
	ID:              "a1",
	Name:            "Dinner",
	Kind:            "dinner",
	IntervalMinutes: 5,
	Sound:           models.DefaultSound,
}

func space() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// drain feeds queued engine events to the model.
func drain(m *Model) {
	for {
		select {
		case ev := <-m.events:
			m.Update(eventMsg(ev))
		default:
			return
		}
	}
}

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()

	if opts.Alarm == nil {
		opts.Alarm = dinner
	}

	opts.Clock = stillClock{}

	m, err := NewModel(context.Background(), opts)
	require.NoError(t, err)

	t.Cleanup(m.Close)

	return m
}

func TestNewModelValidation(t *testing.T) {
	_, err := NewModel(context.Background(), Options{Alarm: dinner})
	assert.ErrorIs(t, err, errNoDuration)

	_, err = NewModel(context.Background(), Options{TotalSeconds: 3})
	assert.ErrorIs(t, err, errNoAlarm)
}

func TestModelKeys(t *testing.T) {
	m := newTestModel(t, Options{TotalSeconds: 300})

	require.NotNil(t, m.Init())
	assert.Equal(t, countdown.Running, m.State().Phase)

	m.engine.Tick()
	drain(m)

	assert.Equal(t, 299, m.State().Remaining)
	assert.Contains(t, m.View(), "4:59")

	m.Update(space())
	assert.Equal(t, countdown.Paused, m.State().Phase)
	assert.Contains(t, m.View(), "[Paused]")

	m.Update(space())
	assert.Equal(t, countdown.Running, m.State().Phase)

	m.Update(runeKey('s'))
	assert.Equal(t, countdown.Idle, m.State().Phase)
	assert.Equal(t, 300, m.State().Remaining)

	m.Update(space())
	assert.Equal(t, countdown.Running, m.State().Phase)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, countdown.Idle, m.engine.State().Phase)
	assert.Empty(t, m.View())
}

func TestModelFinishes(t *testing.T) {
	n := &fakeNotifier{}

	var fired []error

	m := newTestModel(t, Options{
		TotalSeconds: 2,
		Trigger:      alert.New(alert.WithNotifier(n)),
		OnFire: func(err error) {
			fired = append(fired, err)
		},
	})

	m.Init()

	m.engine.Tick()
	m.engine.Tick()
	drain(m)

	assert.Equal(t, 1, n.count())
	assert.Equal(t, []error{nil}, fired)
	assert.True(t, m.finished)
	assert.Equal(t, countdown.Idle, m.State().Phase)
	assert.Contains(t, m.View(), "Time's up!")

	m.Update(space())

	assert.False(t, m.finished)
	assert.Equal(t, countdown.Running, m.State().Phase)
	assert.Equal(t, 2, m.State().Remaining)
}

func TestModelEventCycles(t *testing.T) {
	n := &fakeNotifier{err: errors.New("no notification daemon")}

	var fired []error

	m := newTestModel(t, Options{
		TotalSeconds: 1,
		Repeat:       true,
		MaxCycles:    3,
		Trigger:      alert.New(alert.WithNotifier(n)),
		OnFire: func(err error) {
			fired = append(fired, err)
		},
	})

	m.Init()
	assert.Contains(t, m.View(), "(1/3)")

	for n := 0; n < 5; n++ {
		m.engine.Tick()
	}

	drain(m)

	assert.Equal(t, 3, n.count())
	assert.Len(t, fired, 3)
	require.Error(t, fired[0])
	assert.True(t, m.finished)
	assert.Equal(t, 3, m.State().Cycle)
}

func TestCloseEndsPendingEventWait(t *testing.T) {
	m := newTestModel(t, Options{TotalSeconds: 300})

	wait := m.waitForEvent()
	got := make(chan tea.Msg, 1)

	go func() { got <- wait() }()

	m.Close()

	select {
	case msg := <-got:
		assert.Nil(t, msg)
	case <-time.After(time.Second):
		t.Fatal("event wait still blocked after Close")
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(t, Options{TotalSeconds: 10})

	m.Update(tea.WindowSizeMsg{Width: 40})
	assert.Equal(t, 40-padding*2-4, m.progress.Width)

	m.Update(tea.WindowSizeMsg{Width: 400})
	assert.Equal(t, maxWidth, m.progress.Width)
}

func TestRunHeadless(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	n := &fakeNotifier{}

	var buf bytes.Buffer

	err := RunHeadless(context.Background(), &buf, Options{
		Alarm:        dinner,
		TotalSeconds: 3,
		Clock:        fastClock{},
		Trigger:      alert.New(alert.WithNotifier(n)),
	})
	require.NoError(t, err)

	out := buf.String()

	assert.Contains(t, out, "[Dinner]")
	assert.Contains(t, out, "0:03")
	assert.Contains(t, out, "Alarm #1 went off")
	assert.Equal(t, 1, n.count())
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	var buf bytes.Buffer

	go func() {
		done <- RunHeadless(ctx, &buf, Options{
			Alarm:        dinner,
			TotalSeconds: 60,
			Repeat:       true,
			Clock:        stillClock{},
		})
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("headless countdown ignored cancellation")
	}
}

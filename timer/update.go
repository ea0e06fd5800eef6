package timer

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/chime/countdown"
)

func (m *Model) handleEvent(msg eventMsg) (tea.Model, tea.Cmd) {
	m.state = m.engine.State()

	if msg.Type == countdown.EventFinished {
		m.finished = true
	}

	return m, m.waitForEvent()
}

func (m *Model) togglePlay() {
	var err error

	switch m.engine.State().Phase {
	case countdown.Idle:
		m.start()
		return
	case countdown.Running:
		err = m.engine.Pause()
	case countdown.Paused:
		err = m.engine.Resume()
	case countdown.Completed:
	}

	m.err = err
	m.state = m.engine.State()
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.togglePlay):
		m.togglePlay()

	case key.Matches(msg, defaultKeymap.stop):
		m.engine.Stop()
		m.finished = false
		m.state = m.engine.State()

	case key.Matches(msg, defaultKeymap.quit):
		m.quitting = true
		m.Close()

		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case eventMsg:
		return m.handleEvent(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - padding*2 - 4
		if m.progress.Width > maxWidth {
			m.progress.Width = maxWidth
		}

		return m, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = m.progress.Update(msg)
		m.progress, _ = progressModel.(progress.Model)

		return m, cmd
	}

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		slog.Debug("unhandled timer message", "msg", spew.Sdump(msg))
	}

	return m, nil
}

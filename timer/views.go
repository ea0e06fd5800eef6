package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/internal/timeutil"
)

func (m *Model) titleView() string {
	a := m.opts.Alarm

	kind := a.Kind
	if kind == "" {
		kind = models.DefaultKind
	}

	return m.style.Title.Render(a.Name) +
		m.style.Hint.Render(fmt.Sprintf(" [%s]", kind))
}

func (m *Model) statusView() string {
	s := m.state

	var status string

	switch s.Phase {
	case countdown.Paused:
		status = m.style.Secondary.Render("[Paused]")
	case countdown.Idle:
		status = m.style.Secondary.Render("[Stopped]")
	default:
		status = m.style.Hint.Render(
			"until " + timeutil.EndTime(m.now(), s.Remaining, m.opts.TwentyFourHour),
		)
	}

	if m.opts.Repeat {
		cycle := s.Cycle + 1

		if m.opts.MaxCycles > 0 {
			status += m.style.Hint.Render(
				fmt.Sprintf(" (%d/%d)", min(cycle, m.opts.MaxCycles), m.opts.MaxCycles),
			)
		} else {
			status += m.style.Hint.Render(fmt.Sprintf(" (#%d)", cycle))
		}
	}

	return status
}

func (m *Model) progressPercent() float64 {
	if m.state.Total == 0 {
		return 0
	}

	return 1 - float64(m.state.Remaining)/float64(m.state.Total)
}

func (m *Model) helpView() string {
	return "\n\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.stop,
		defaultKeymap.quit,
	})
}

func (m *Model) finishedView() string {
	var s strings.Builder

	s.WriteString(m.titleView())
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render("Time's up!"))
	s.WriteString("\n\n")
	s.WriteString(m.style.Hint.Render("Press space to go again"))
	s.WriteString(m.helpView())

	return s.String()
}

func (m *Model) timerView() string {
	var s strings.Builder

	s.WriteString(m.titleView())
	s.WriteString(" ")
	s.WriteString(m.statusView())
	s.WriteString("\n\n")
	s.WriteString(m.style.Main.Render(timeutil.FormatClock(m.state.Remaining)))
	s.WriteString("\n\n")
	s.WriteString(m.progress.ViewAs(m.progressPercent()))

	if m.err != nil {
		s.WriteString("\n\n" + m.style.Secondary.Render(m.err.Error()))
	}

	s.WriteString(m.helpView())

	return s.String()
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.finished {
		return m.style.Base.Render(m.finishedView())
	}

	return m.style.Base.Render(m.timerView())
}

package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

// Style holds the lipgloss styles of the countdown screen.
type Style struct {
	Base      lipgloss.Style
	Title     lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
}

// NewStyle returns the screen styles for a dark or light terminal.
func NewStyle(dark bool) Style {
	primary := lipgloss.Color("#7C3AED")
	muted := lipgloss.Color("#6B7280")
	accent := lipgloss.Color("#F59E0B")

	if !dark {
		primary = lipgloss.Color("#5B21B6")
		muted = lipgloss.Color("#4B5563")
		accent = lipgloss.Color("#B45309")
	}

	return Style{
		Base: lipgloss.NewStyle().Padding(1, padding),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),
		Main: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		Secondary: lipgloss.NewStyle().
			Italic(true).
			Foreground(accent),
		Hint: lipgloss.NewStyle().
			Foreground(muted),
	}
}

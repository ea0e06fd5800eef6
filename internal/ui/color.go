package ui

import (
	"github.com/pterm/pterm"
)

// DarkTheme selects the light colour variants that stay readable on a dark
// terminal background.
var DarkTheme bool

type paint func(a ...any) string

func themed(onLight, onDark paint, a any) string {
	if DarkTheme {
		return onDark(a)
	}

	return onLight(a)
}

// Green marks durations and names of running alarms.
func Green(a any) string {
	return themed(pterm.Green, pterm.LightGreen, a)
}

// Yellow marks the remaining time of a countdown.
func Yellow(a any) string {
	return themed(pterm.Yellow, pterm.LightYellow, a)
}

// Cyan marks alarm types.
func Cyan(a any) string {
	return themed(pterm.Cyan, pterm.LightCyan, a)
}

func Magenta(a any) string {
	return themed(pterm.Magenta, pterm.LightMagenta, a)
}

// Red marks alarms that went off.
func Red(a any) string {
	return themed(pterm.Red, pterm.LightRed, a)
}

func Highlight(a any) string {
	return themed(pterm.Black, pterm.LightWhite, a)
}

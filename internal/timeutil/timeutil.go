// Package timeutil formats countdown durations and wall clock times for
// display.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	secondsInAMinute = 60
	minutesInAnHour  = 60
	secondsInAnHour  = secondsInAMinute * minutesInAnHour
)

// MinsToHoursAndMins expresses a minutes value in hours and mins.
func MinsToHoursAndMins(val int) (hrs, mins int) {
	hrs = int(math.Floor(float64(val) / float64(minutesInAnHour)))
	mins = val % minutesInAnHour

	return
}

// FormatClock renders a number of seconds as M:SS, or H:MM:SS once it
// reaches an hour. Negative values are treated as zero.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}

	h := seconds / secondsInAnHour
	m := (seconds % secondsInAnHour) / secondsInAMinute
	s := seconds % secondsInAMinute

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// HumanizeMinutes renders an interval such as 90 as "1h 30m".
func HumanizeMinutes(mins int) string {
	hrs, m := MinsToHoursAndMins(mins)

	switch {
	case hrs == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", hrs)
	default:
		return fmt.Sprintf("%dh %dm", hrs, m)
	}
}

// EndTime returns the kitchen or 24 hour clock time at which a countdown
// with the given seconds left will reach zero.
func EndTime(now time.Time, remaining int, twentyFourHour bool) string {
	end := now.Add(time.Duration(remaining) * time.Second)

	if twentyFourHour {
		return end.Format("15:04:05")
	}

	return end.Format("03:04:05 PM")
}

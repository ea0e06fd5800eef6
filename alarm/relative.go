package alarm

import (
	"math"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/chime/countdown"
)

// ParseRelative converts a natural language offset such as "in 20 minutes"
// or "in 1 hour" to a number of seconds after now.
func ParseRelative(raw string, now time.Time) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrInvalidRelative.Fmt(raw)
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, raw)
	if err != nil {
		return 0, ErrInvalidRelative.Fmt(raw).Wrap(err)
	}

	secs := int(math.Round(result.Time.Sub(now).Seconds()))
	if secs <= 0 {
		return 0, countdown.ErrInvalidDuration.Fmt(secs)
	}

	return secs, nil
}

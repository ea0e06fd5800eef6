package alarm

import (
	"fmt"

	"github.com/ayoisaiah/chime/internal/models"
)

// EventKind is the kind reported for event timer alarms.
const EventKind = "event"

// EventInput is the raw content of the event timer form. Durations are in
// minutes.
type EventInput struct {
	Name        string
	TotalRaw    string
	IntervalRaw string
	Sound       string
}

// Event is an event timer: an alarm every Interval minutes until Total
// minutes have passed.
type Event struct {
	Name            string
	Sound           string
	TotalMinutes    int
	IntervalMinutes int
}

// Cycles returns how many times the event alarm goes off.
func (e *Event) Cycles() int {
	return e.TotalMinutes / e.IntervalMinutes
}

// Alarm returns the transient alarm that represents the event while it runs.
// It is never stored.
func (e *Event) Alarm() *models.Alarm {
	return &models.Alarm{
		ID:              fmt.Sprintf("event-%s", NewID()),
		Name:            e.Name,
		Kind:            EventKind,
		IntervalMinutes: e.IntervalMinutes,
		Sound:           e.Sound,
		RepeatDays:      []models.Weekday{},
	}
}

// ValidateEvent checks the event timer form.
func ValidateEvent(in EventInput) (*Event, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}

	interval, ok := parsePositive(in.IntervalRaw)
	if !ok {
		return nil, ErrInvalidInterval.Fmt(in.IntervalRaw)
	}

	total, ok := parsePositive(in.TotalRaw)
	if !ok || total < interval {
		return nil, ErrInvalidEventDuration.Fmt(in.TotalRaw, in.IntervalRaw)
	}

	sound, err := validateSound(in.Sound)
	if err != nil {
		return nil, err
	}

	return &Event{
		Name:            name,
		Sound:           sound,
		TotalMinutes:    total,
		IntervalMinutes: interval,
	}, nil
}

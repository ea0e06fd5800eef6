// Package alarm validates user input and turns it into alarm records.
package alarm

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ayoisaiah/chime/countdown"
	"github.com/ayoisaiah/chime/internal/models"
)

// Input is the raw content of the alarm creation form.
type Input struct {
	Name        string
	IntervalRaw string
	Kind        string
	Sound       string
	RepeatDays  []string
}

// NewID returns a fresh, time ordered alarm id.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

func parsePositive(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}

	return n, true
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}

	return name, nil
}

func validateSound(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return models.DefaultSound, nil
	}

	s, ok := models.LookupSound(raw)
	if !ok {
		return "", ErrUnknownSound.Fmt(raw)
	}

	return s, nil
}

func validateRepeatDays(raw []string) ([]models.Weekday, error) {
	days := make([]models.Weekday, 0, len(raw))

	for _, v := range raw {
		if strings.TrimSpace(v) == "" {
			continue
		}

		d, ok := models.ParseWeekday(v)
		if !ok {
			return nil, ErrInvalidRepeatDay.Fmt(v)
		}

		days = append(days, d)
	}

	return models.SortWeekdays(days), nil
}

// Validate checks the form input and builds a new alarm from it. The first
// failing check determines the error.
func Validate(in Input) (*models.Alarm, error) {
	name, err := validateName(in.Name)
	if err != nil {
		return nil, err
	}

	interval, ok := parsePositive(in.IntervalRaw)
	if !ok {
		return nil, ErrInvalidInterval.Fmt(in.IntervalRaw)
	}

	sound, err := validateSound(in.Sound)
	if err != nil {
		return nil, err
	}

	days, err := validateRepeatDays(in.RepeatDays)
	if err != nil {
		return nil, err
	}

	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	if kind == "" {
		kind = models.DefaultKind
	}

	return &models.Alarm{
		ID:              NewID(),
		Name:            name,
		Kind:            kind,
		IntervalMinutes: interval,
		Sound:           sound,
		RepeatDays:      days,
	}, nil
}

// ValidateCustom converts the hours and minutes of the custom timer screen to
// a duration in seconds. Blank fields count as zero.
func ValidateCustom(hoursRaw, minutesRaw string) (int, error) {
	parse := func(field, raw string) (int, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return 0, nil
		}

		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return 0, ErrInvalidDuration.Fmt(field, raw)
		}

		return n, nil
	}

	hours, err := parse("hours", hoursRaw)
	if err != nil {
		return 0, err
	}

	minutes, err := parse("minutes", minutesRaw)
	if err != nil {
		return 0, err
	}

	total := hours*3600 + minutes*60
	if total <= 0 {
		return 0, countdown.ErrInvalidDuration.Fmt(total)
	}

	return total, nil
}

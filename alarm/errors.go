package alarm

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	ErrEmptyName = &apperr.Error{
		Message: "alarm name cannot be empty",
	}

	ErrInvalidInterval = &apperr.Error{
		Message: "interval must be a positive whole number of minutes, got %q",
	}

	ErrInvalidEventDuration = &apperr.Error{
		Message: "total duration (%q) and interval (%q) must be positive and the total cannot be shorter than the interval",
	}

	ErrInvalidDuration = &apperr.Error{
		Message: "%s must be a whole number that is zero or more, got %q",
	}

	ErrInvalidRelative = &apperr.Error{
		Message: "cannot understand %q as a time from now (try \"in 20 minutes\")",
	}

	ErrUnknownSound = &apperr.Error{
		Message: "unknown sound: %s (must be Default, Chime, Bell, or Cosmic)",
	}

	ErrInvalidRepeatDay = &apperr.Error{
		Message: "unknown repeat day: %q",
	}
)

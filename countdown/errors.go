package countdown

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	// ErrInvalidDuration is returned when a countdown is started with a
	// non-positive duration.
	ErrInvalidDuration = &apperr.Error{
		Message: "duration must be greater than zero seconds, got %d",
	}

	// ErrAlreadyStarted is returned by Start while a countdown is running or
	// paused.
	ErrAlreadyStarted = &apperr.Error{
		Message: "a countdown is already in progress",
	}

	// ErrNotRunning is returned when pausing a countdown that is not running.
	ErrNotRunning = &apperr.Error{
		Message: "the countdown is not running",
	}

	// ErrNotPaused is returned when resuming a countdown that is not paused.
	ErrNotPaused = &apperr.Error{
		Message: "the countdown is not paused",
	}
)

package app

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	errAlarmNotFound = &apperr.Error{
		Message: "no alarm with id %q",
	}

	errMissingID = &apperr.Error{
		Message: "an alarm id is required",
	}

	errUnknownSort = &apperr.Error{
		Message: "unknown sort key %q: expected name or interval",
	}

	errMetricsServer = &apperr.Error{
		Message: "unable to serve metrics on %s",
	}

	errBinaryToTerminal = &apperr.Error{
		Message: "refusing to write %s to a terminal: use --output",
	}
)

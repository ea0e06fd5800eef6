package timer

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	errNoDuration = &apperr.Error{
		Message: "timer needs a positive duration",
	}

	errNoAlarm = &apperr.Error{
		Message: "timer has no alarm to fire",
	}

	errTimerUI = &apperr.Error{
		Message: "timer screen exited with an error",
	}
)

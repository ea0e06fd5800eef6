package config

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errUnknownAlarmSound = &apperr.Error{
		Message: "unknown alarm sound: %s (must be Default, Chime, Bell, or Cosmic)",
	}

	errInvalidInterval = &apperr.Error{
		Message: "alarm interval must be between %d and %d minutes, got %d",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s (must be bolt or badger)",
	}

	errUnknownLogLevel = &apperr.Error{
		Message: "unknown log level: %s (must be debug, info, warn, or error)",
	}

	errInvalidCmd = &apperr.Error{
		Message: "unable to parse %s: %v",
	}
)

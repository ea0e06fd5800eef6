package store

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	// ErrStorageUnavailable is returned when the persisted collection cannot
	// be read or written.
	ErrStorageUnavailable = &apperr.Error{
		Message: "alarm storage is unavailable",
	}

	// ErrDuplicateID is returned when appending an alarm whose id is already
	// stored.
	ErrDuplicateID = &apperr.Error{
		Message: "an alarm with id %s already exists",
	}

	// ErrDatabaseLocked is returned when another process holds the bolt file.
	ErrDatabaseLocked = &apperr.Error{
		Message: "is chime already running? Only one instance can write to the database at a time",
	}

	errUnknownBackend = &apperr.Error{
		Message: "unknown storage backend: %s (must be bolt or badger)",
	}
)

package media

import "github.com/ayoisaiah/chime/internal/apperr"

var (
	// ErrMediaUnavailable is returned when a sound cannot be played or a
	// recording cannot be made.
	ErrMediaUnavailable = &apperr.Error{
		Message: "audio is unavailable",
	}

	errUnsupportedFormat = &apperr.Error{
		Message: "unsupported sound format %q (must be mp3, ogg, flac, or wav)",
	}

	errEmptyRecordCmd = &apperr.Error{
		Message: "no recording command is configured (set record.cmd)",
	}

	errEmptyRecording = &apperr.Error{
		Message: "the recording at %s is empty",
	}

	errRecorderHung = &apperr.Error{
		Message: "the recording command did not exit after being interrupted",
	}
)

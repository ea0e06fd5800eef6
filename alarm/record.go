package alarm

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/ayoisaiah/chime/internal/models"
	"github.com/ayoisaiah/chime/media"
)

// Appender persists a new alarm.
type Appender interface {
	Append(a models.Alarm) error
}

// WaitFunc blocks until the user ends the recording.
type WaitFunc func(ctx context.Context) error

func mediaErr(err error) error {
	if errors.Is(err, media.ErrMediaUnavailable) {
		return err
	}

	return media.ErrMediaUnavailable.Wrap(err)
}

// RecordAlarm records a clip and stores it as a new custom alarm that repeats
// every minute. No alarm is created when the recording fails.
func RecordAlarm(
	ctx context.Context,
	rec media.Recorder,
	store Appender,
	name string,
	wait WaitFunc,
) (*models.Alarm, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	r, err := rec.StartRecording(ctx)
	if err != nil {
		return nil, mediaErr(err)
	}

	waitErr := wait(ctx)

	path, err := rec.StopRecording(r)
	if err != nil {
		return nil, mediaErr(err)
	}

	if waitErr != nil {
		_ = os.Remove(path)
		return nil, waitErr
	}

	a := &models.Alarm{
		ID:              NewID(),
		Name:            name,
		Kind:            models.DefaultKind,
		IntervalMinutes: 1,
		Sound:           models.DefaultSound,
		RepeatDays:      []models.Weekday{},
		AudioURI:        path,
	}

	err = store.Append(*a)
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			slog.Warn("unable to remove orphaned recording", "path", path, "error", rmErr)
		}

		return nil, err
	}

	slog.Info("recorded alarm created", "id", a.ID, "path", path)

	return a, nil
}

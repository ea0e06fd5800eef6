// Package notify raises desktop notifications.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/ayoisaiah/chime/internal/apperr"
)

// ErrNotificationFailed is returned when the desktop refuses a notification.
var ErrNotificationFailed = &apperr.Error{
	Message: "unable to display notification",
}

// Notifier delivers a notification right away.
type Notifier interface {
	ScheduleImmediate(title, body string) error
}

// Desktop sends notifications through the platform notification service.
type Desktop struct {
	// IconPath is shown alongside the message when non-empty.
	IconPath string

	send func(title, message, appIcon string) error
}

// NewDesktop returns a Notifier backed by beeep.
func NewDesktop(iconPath string) *Desktop {
	return &Desktop{
		IconPath: iconPath,
		send:     beeep.Notify,
	}
}

func (d *Desktop) ScheduleImmediate(title, body string) error {
	err := d.send(title, body, d.IconPath)
	if err != nil {
		return ErrNotificationFailed.Wrap(err)
	}

	return nil
}

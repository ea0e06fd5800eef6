// Package models defines the records that chime persists.
package models

import "strings"

const (
	// DefaultSound is the sound used when an alarm does not name one.
	DefaultSound = "Default"
	// DefaultKind is the category assigned to alarms without one.
	DefaultKind = "custom"
)

// Sounds lists the built-in alarm sounds in display order.
var Sounds = []string{DefaultSound, "Chime", "Bell", "Cosmic"}

// Kinds lists the category tags offered by the creation form. Any short
// string is accepted as a kind.
var Kinds = []string{DefaultKind, "dinner", "workout", "shower"}

// Alarm is a user defined interval alarm. Alarms are never edited in place:
// a change is a delete followed by a create.
type Alarm struct {
	ID              string    `json:"id"            yaml:"id"`
	Name            string    `json:"name"          yaml:"name"`
	Kind            string    `json:"type"          yaml:"type"`
	IntervalMinutes int       `json:"interval"      yaml:"interval"`
	Sound           string    `json:"sound"         yaml:"sound"`
	RepeatDays      []Weekday `json:"repeatDays"    yaml:"repeatDays"`
	AudioURI        string    `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// IntervalSeconds returns the alarm interval expressed in seconds.
func (a *Alarm) IntervalSeconds() int {
	return a.IntervalMinutes * 60
}

// SoundRef returns the asset to play when the alarm goes off. A recorded
// clip takes precedence over the named sound.
func (a *Alarm) SoundRef() string {
	if a.AudioURI != "" {
		return a.AudioURI
	}

	if a.Sound == "" {
		return DefaultSound
	}

	return a.Sound
}

// LookupSound returns the canonical spelling of a built-in sound name,
// matched case-insensitively.
func LookupSound(name string) (string, bool) {
	for _, s := range Sounds {
		if strings.EqualFold(s, strings.TrimSpace(name)) {
			return s, true
		}
	}

	return "", false
}

// IsKnownSound reports whether name is one of the built-in sounds.
func IsKnownSound(name string) bool {
	_, ok := LookupSound(name)
	return ok
}

package countdown

import "fmt"

// Phase is the lifecycle phase of a countdown.
type Phase int

const (
	Idle Phase = iota
	Running
	Paused
	Completed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is a snapshot of a countdown. Remaining never leaves [0, Total].
type State struct {
	Total     int
	Remaining int
	Phase     Phase
	// Cycle counts completions since the last Start.
	Cycle int
}

// EventType identifies a state change reported to observers.
type EventType int

const (
	EventStarted EventType = iota
	EventTick
	EventPaused
	EventResumed
	EventCompleted
	// EventReset is emitted when a repeating countdown reloads its duration.
	EventReset
	// EventFinished is emitted when a countdown returns to Idle on its own.
	EventFinished
	// EventStopped is emitted when Stop or context cancellation ends a
	// countdown.
	EventStopped
)

var eventNames = map[EventType]string{
	EventStarted:   "started",
	EventTick:      "tick",
	EventPaused:    "paused",
	EventResumed:   "resumed",
	EventCompleted: "completed",
	EventReset:     "reset",
	EventFinished:  "finished",
	EventStopped:   "stopped",
}

func (e EventType) String() string {
	if s, ok := eventNames[e]; ok {
		return s
	}

	return fmt.Sprintf("EventType(%d)", int(e))
}

// Event describes a state change along with the state after it.
type Event struct {
	Type  EventType
	State State
}

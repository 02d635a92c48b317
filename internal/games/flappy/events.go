package flappy

import (
	"fmt"

	"github.com/vovakirdan/duoflap/internal/core"
)

// EventKind classifies something notable that happened during a step.
type EventKind int

const (
	EventRoundStarted EventKind = iota
	EventScored
	EventCollided
	EventRoundOver
)

// String returns the event name used in log lines.
func (k EventKind) String() string {
	switch k {
	case EventRoundStarted:
		return "round started"
	case EventScored:
		return "scored"
	case EventCollided:
		return "collided"
	case EventRoundOver:
		return "round over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// Event is reported by Step so front-ends can log or react without the
// simulation depending on them.
type Event struct {
	Kind    EventKind
	Player  core.PlayerID // scorer or collider; PlayerNone otherwise
	Score   int           // the player's score after EventScored
	PipeID  int           // pipe involved, 0 for ground hits and round events
	Outcome Outcome       // set on EventRoundOver
}

// StepResult contains the outcome of a single simulation step.
type StepResult struct {
	State  RoundState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

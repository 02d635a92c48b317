package flappy

import "github.com/vovakirdan/duoflap/internal/core"

// RoundState is the session's position in the round state machine.
type RoundState int

const (
	AwaitingStart RoundState = iota // birds parked, waiting for Confirm
	Running                         // physics, spawning and collisions live
	RoundOver                       // a bird collided, waiting for Restart
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case AwaitingStart:
		return "awaiting start"
	case Running:
		return "running"
	case RoundOver:
		return "round over"
	default:
		return "unknown"
	}
}

// Outcome is the result of a finished round. The zero value means undecided.
type Outcome struct {
	Winner core.PlayerID
	Draw   bool
}

// Decided reports whether the round has a result.
func (o Outcome) Decided() bool {
	return o.Draw || o.Winner != core.PlayerNone
}

// String returns the banner text for the outcome.
func (o Outcome) String() string {
	switch {
	case o.Draw:
		return "Draw"
	case o.Winner != core.PlayerNone:
		return o.Winner.String() + " Wins"
	default:
		return ""
	}
}

// resolveOutcome decides a round from the players that collided in the
// frame that ended it.
func resolveOutcome(collided [2]bool) Outcome {
	if collided[0] && collided[1] {
		return Outcome{Draw: true}
	}
	for i, p := range core.Players {
		if collided[i] {
			return Outcome{Winner: p.Other()}
		}
	}
	return Outcome{}
}

// Package flappy implements the two-player Flappy Bird duel.
// Two birds share one stream of pipes; a bird that touches a pipe or the
// ground ends the round, and the other player wins.
package flappy

import (
	"math"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
)

// Session owns both birds, the pipes in play, scores and round state.
// It is driven by one goroutine; nothing in it is safe for concurrent use.
type Session struct {
	cfg        config.DuelConfig
	birds      [2]*Bird
	alive      [2]bool
	scores     [2]int
	monitoring [2]bool // bird is inside the front pipe's horizontal span
	pipes      *PipeManager
	state      RoundState
	outcome    Outcome
	groundOff  float64
	frames     int // running frames this round
	events     []Event
}

// NewSession creates a session waiting for the start action.
func NewSession(cfg config.DuelConfig, src GapSource) *Session {
	s := &Session{cfg: cfg}
	threshold := s.cfg.World.GroundThreshold
	s.birds[0] = NewBird(core.Vec{X: cfg.Bird.StartX, Y: cfg.Bird.Player1StartY}, &s.cfg.Bird, threshold)
	s.birds[1] = NewBird(core.Vec{X: cfg.Bird.StartX, Y: cfg.Bird.Player2StartY}, &s.cfg.Bird, threshold)
	s.pipes = NewPipeManager(src, cfg.World.Width, &s.cfg.Pipes)
	s.reset()
	return s
}

// reset clears round state. Flight is left as is.
func (s *Session) reset() {
	for i, b := range s.birds {
		b.ResetPosition()
		s.alive[i] = true
		s.scores[i] = 0
		s.monitoring[i] = false
	}
	s.pipes.Reset()
	s.outcome = Outcome{}
	s.groundOff = 0
	s.frames = 0
}

// Step routes one frame of input and advances the simulation by dt seconds.
func (s *Session) Step(dt float64, in core.MultiInputFrame) StepResult {
	s.events = s.events[:0]

	if in.Any(core.ActionConfirm) {
		s.Start()
	}
	if in.Any(core.ActionRestart) {
		s.Restart()
	}
	for _, p := range core.Players {
		if in.Player(p).Has(core.ActionFlap) {
			s.Flap(p, dt)
		}
	}

	s.Update(dt)

	events := make([]Event, len(s.events))
	copy(events, s.events)
	return StepResult{State: s.state, Events: events}
}

// Start begins the first round. Ignored unless awaiting start.
func (s *Session) Start() bool {
	if s.state != AwaitingStart {
		return false
	}
	s.begin()
	return true
}

// Restart resets a finished round and starts the next one immediately.
// Ignored unless the round is over.
func (s *Session) Restart() bool {
	if s.state != RoundOver {
		return false
	}
	s.reset()
	s.begin()
	return true
}

func (s *Session) begin() {
	for _, b := range s.birds {
		b.SetFlying(true)
	}
	s.state = Running
	s.emit(Event{Kind: EventRoundStarted})
}

// Flap gives player p an upward impulse. Only live birds in a running round flap.
func (s *Session) Flap(p core.PlayerID, dt float64) bool {
	i := p.Index()
	if i < 0 || s.state != Running || !s.alive[i] {
		return false
	}
	s.birds[i].Flap(dt)
	return true
}

// Update advances the world by dt seconds without input.
func (s *Session) Update(dt float64) {
	if s.state == Running {
		s.frames++
		s.scrollGround(dt)
		s.pipes.Update(dt)

		collided := s.checkCollisions()
		// A surviving bird still scores on the frame its opponent crashes.
		s.checkScoring()
		if collided[0] || collided[1] {
			s.state = RoundOver
			s.outcome = resolveOutcome(collided)
			s.emit(Event{Kind: EventRoundOver, Outcome: s.outcome})
		}
	}

	// Birds keep moving after the round ends until they reach the ground.
	for _, b := range s.birds {
		b.Update(dt)
	}
}

func (s *Session) scrollGround(dt float64) {
	tile := s.cfg.Ground.TileWidth
	s.groundOff = math.Mod(s.groundOff+s.cfg.Pipes.Speed*dt, tile)
}

// checkCollisions tests each live bird against the nearest pipe and the
// ground line. The ground is checked whether or not a pipe exists.
func (s *Session) checkCollisions() [2]bool {
	var collided [2]bool
	front, hasPipe := s.pipes.Front()

	for i, b := range s.birds {
		if !s.alive[i] {
			continue
		}
		hit := b.Top() >= s.cfg.World.GroundThreshold
		pipeID := 0
		if !hit && hasPipe && front.Hits(b.Rect()) {
			hit = true
			pipeID = front.ID
		}
		if hit {
			collided[i] = true
			s.alive[i] = false
			s.emit(Event{Kind: EventCollided, Player: core.Players[i], PipeID: pipeID})
		}
	}
	return collided
}

// checkScoring tracks each bird through the nearest pipe independently.
// A bird scores once it has entered the pipe's span and then cleared its
// right edge.
func (s *Session) checkScoring() {
	front, ok := s.pipes.Front()
	if !ok {
		return
	}
	for i, b := range s.birds {
		if !s.alive[i] {
			continue
		}
		switch {
		case !s.monitoring[i] && b.Left() > front.X && b.RightEdge() < front.RightEdge():
			s.monitoring[i] = true
		case s.monitoring[i] && b.Left() > front.RightEdge():
			s.monitoring[i] = false
			s.scores[i]++
			s.emit(Event{Kind: EventScored, Player: core.Players[i], Score: s.scores[i], PipeID: front.ID})
		}
	}
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// State returns the current round state.
func (s *Session) State() RoundState {
	return s.state
}

// Outcome returns the result of the last finished round.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Bird returns player p's bird, or nil for an unknown player.
func (s *Session) Bird(p core.PlayerID) *Bird {
	i := p.Index()
	if i < 0 {
		return nil
	}
	return s.birds[i]
}

// Score returns player p's score this round.
func (s *Session) Score(p core.PlayerID) int {
	i := p.Index()
	if i < 0 {
		return 0
	}
	return s.scores[i]
}

// Alive reports whether player p has not collided this round.
func (s *Session) Alive(p core.PlayerID) bool {
	i := p.Index()
	if i < 0 {
		return false
	}
	return s.alive[i]
}

// Pipes returns the active pipes, oldest first. The slice must not be modified.
func (s *Session) Pipes() []Pipe {
	return s.pipes.Pipes()
}

// GroundOffset returns the cosmetic ground scroll in [0, tile width).
func (s *Session) GroundOffset() float64 {
	return s.groundOff
}

// Frames returns the number of running frames in the current round.
func (s *Session) Frames() int {
	return s.frames
}

// Config returns the tuning this session was created with.
func (s *Session) Config() config.DuelConfig {
	return s.cfg
}

package flappy

import (
	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
)

// Bird is one player's falling/rising entity.
// Position is the top-left corner of its bounding box in world units.
type Bird struct {
	pos       core.Vec
	start     core.Vec
	velocity  float64
	flying    bool
	frame     int // updates since the last wing flip
	phase     int // wing frame, 0 or 1
	cfg       *config.BirdConfig
	threshold float64 // freeze line for the bird's top edge
}

// NewBird creates a bird parked at its start position with flight disabled.
func NewBird(start core.Vec, cfg *config.BirdConfig, threshold float64) *Bird {
	b := &Bird{
		start:     start,
		cfg:       cfg,
		threshold: threshold,
	}
	b.ResetPosition()
	return b
}

// SetFlying enables or disables gravity and animation. Position is untouched.
func (b *Bird) SetFlying(enabled bool) {
	b.flying = enabled
}

// Flying reports whether physics is enabled.
func (b *Bird) Flying() bool {
	return b.flying
}

// Flap replaces the current velocity with an upward impulse.
func (b *Bird) Flap(dt float64) {
	b.velocity = -b.cfg.FlapImpulse * dt
}

// Update integrates one frame of physics.
// A bird whose top has reached the freeze line no longer moves.
func (b *Bird) Update(dt float64) {
	if !b.flying || b.pos.Y >= b.threshold {
		return
	}

	b.velocity += b.cfg.Gravity * dt
	// Snap to the top of the screen and rest on the freeze line; velocity is kept.
	b.pos.Y = core.ClampF(b.pos.Y+b.velocity, 0, b.threshold)

	b.frame++
	if b.frame >= b.cfg.AnimationPeriod {
		b.frame = 0
		b.phase ^= 1
	}
}

// ResetPosition moves the bird back to its start point and stops it.
func (b *Bird) ResetPosition() {
	b.pos = b.start
	b.velocity = 0
	b.frame = 0
	b.phase = 0
}

// Rect returns the bird's bounding box.
func (b *Bird) Rect() core.Rect {
	return core.NewRect(b.pos.X, b.pos.Y, b.cfg.Width, b.cfg.Height)
}

// Left returns the left edge X.
func (b *Bird) Left() float64 {
	return b.pos.X
}

// Top returns the top edge Y.
func (b *Bird) Top() float64 {
	return b.pos.Y
}

// RightEdge returns the right edge X, used for pass-through scoring.
func (b *Bird) RightEdge() float64 {
	return b.pos.X + b.cfg.Width
}

// Position returns the top-left corner.
func (b *Bird) Position() core.Vec {
	return b.pos
}

// Velocity returns the current vertical velocity (positive is down).
func (b *Bird) Velocity() float64 {
	return b.velocity
}

// Phase returns the current wing frame (0 or 1).
func (b *Bird) Phase() int {
	return b.phase
}

// Frozen reports whether the bird has reached the freeze line.
func (b *Bird) Frozen() bool {
	return b.pos.Y >= b.threshold
}

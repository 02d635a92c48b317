package config

import (
	"errors"
	"fmt"
)

// Tick rates the front-ends accept. Pipe speed is validated against the
// slowest one so a bird can never skip over a pipe in a single step.
const (
	MinTickRate = 30
	MaxTickRate = 240
)

// Validate checks that the configuration describes a playable world.
// All problems are reported at once; each wraps ErrInvalidConfig.
func (c DuelConfig) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		bad("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.GroundThreshold <= 0 || c.World.GroundThreshold > c.World.Height {
		bad("world.ground_threshold %v must be within (0, %v]", c.World.GroundThreshold, c.World.Height)
	}

	if c.Bird.Width <= 0 || c.Bird.Height <= 0 {
		bad("bird size must be positive, got %vx%v", c.Bird.Width, c.Bird.Height)
	}
	if c.Bird.Gravity < 0 {
		bad("bird.gravity must not be negative, got %v", c.Bird.Gravity)
	}
	if c.Bird.FlapImpulse <= 0 {
		bad("bird.flap_impulse must be positive, got %v", c.Bird.FlapImpulse)
	}
	if c.Bird.AnimationPeriod <= 0 {
		bad("bird.animation_period must be positive, got %d", c.Bird.AnimationPeriod)
	}
	for _, start := range []struct {
		name string
		y    float64
	}{
		{"player1_start_y", c.Bird.Player1StartY},
		{"player2_start_y", c.Bird.Player2StartY},
	} {
		if start.y < 0 || start.y >= c.World.GroundThreshold {
			bad("bird.%s %v must be within [0, %v)", start.name, start.y, c.World.GroundThreshold)
		}
	}

	if c.Pipes.Speed <= 0 {
		bad("pipes.speed must be positive, got %v", c.Pipes.Speed)
	}
	if c.Pipes.Width <= 0 || c.Pipes.Height <= 0 {
		bad("pipe size must be positive, got %vx%v", c.Pipes.Width, c.Pipes.Height)
	}
	if c.Pipes.Gap <= c.Bird.Height {
		bad("pipes.gap %v must be larger than the bird height %v", c.Pipes.Gap, c.Bird.Height)
	}
	if c.Bird.Width >= c.Pipes.Width {
		bad("bird.width %v must be narrower than pipes.width %v", c.Bird.Width, c.Pipes.Width)
	} else if step := c.Pipes.Speed / MinTickRate; step >= c.Pipes.Width-c.Bird.Width {
		bad("pipes.speed %v moves %v per tick at %d ticks/s, must stay below pipes.width - bird.width (%v)",
			c.Pipes.Speed, step, MinTickRate, c.Pipes.Width-c.Bird.Width)
	}
	if c.Pipes.SpawnInterval < 0 {
		bad("pipes.spawn_interval must not be negative, got %d", c.Pipes.SpawnInterval)
	}
	if c.Pipes.MinGapY >= c.Pipes.MaxGapY {
		bad("pipes.min_gap_y %d must be below pipes.max_gap_y %d", c.Pipes.MinGapY, c.Pipes.MaxGapY)
	}
	if float64(c.Pipes.MinGapY)-c.Pipes.Gap < 0 {
		bad("pipes.min_gap_y %d leaves no room for a gap of %v", c.Pipes.MinGapY, c.Pipes.Gap)
	}

	if c.Ground.TileWidth <= 0 {
		bad("ground.tile_width must be positive, got %v", c.Ground.TileWidth)
	}

	return errors.Join(errs...)
}

package flappy

import (
	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
)

// Pipe is one obstacle pair: a segment hanging from above and one standing
// below, separated by a gap of cfg.Gap units.
type Pipe struct {
	ID   int     // spawn serial, increases monotonically
	X    float64 // left edge shared by both segments
	GapY float64 // top edge of the standing segment
	cfg  *config.PipesConfig
}

// NewPipe creates a pipe whose standing segment starts at gapY.
func NewPipe(id int, x, gapY float64, cfg *config.PipesConfig) Pipe {
	return Pipe{ID: id, X: x, GapY: gapY, cfg: cfg}
}

// TopRect returns the hanging segment. Its bottom edge is GapY - Gap.
func (p Pipe) TopRect() core.Rect {
	return core.NewRect(p.X, p.GapY-p.cfg.Gap-p.cfg.Height, p.cfg.Width, p.cfg.Height)
}

// BottomRect returns the standing segment.
func (p Pipe) BottomRect() core.Rect {
	return core.NewRect(p.X, p.GapY, p.cfg.Width, p.cfg.Height)
}

// RightEdge returns the right X of the pipe.
func (p Pipe) RightEdge() float64 {
	return p.X + p.cfg.Width
}

// Update moves both segments left at the shared speed.
func (p *Pipe) Update(dt float64) {
	p.X -= p.cfg.Speed * dt
}

// Hits reports whether r overlaps either segment.
func (p Pipe) Hits(r core.Rect) bool {
	return r.Intersects(p.TopRect()) || r.Intersects(p.BottomRect())
}

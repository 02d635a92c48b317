package flappy

import (
	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
)

// BirdView is a read-only copy of one player's bird and standing.
type BirdView struct {
	Player core.PlayerID
	Rect   core.Rect
	Phase  int
	Alive  bool
	Score  int
}

// PipeView is a read-only copy of one pipe's segments.
type PipeView struct {
	ID     int
	Top    core.Rect
	Bottom core.Rect
}

// Snapshot holds everything a renderer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	State        RoundState
	Outcome      Outcome
	Birds        [2]BirdView
	Pipes        []PipeView
	GroundOffset float64
	World        config.WorldConfig
	GroundTile   float64
}

// Snapshot captures the current frame.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.state,
		Outcome:      s.outcome,
		GroundOffset: s.groundOff,
		World:        s.cfg.World,
		GroundTile:   s.cfg.Ground.TileWidth,
	}
	for i, b := range s.birds {
		snap.Birds[i] = BirdView{
			Player: core.Players[i],
			Rect:   b.Rect(),
			Phase:  b.Phase(),
			Alive:  s.alive[i],
			Score:  s.scores[i],
		}
	}
	pipes := s.pipes.Pipes()
	snap.Pipes = make([]PipeView, len(pipes))
	for i, p := range pipes {
		snap.Pipes[i] = PipeView{ID: p.ID, Top: p.TopRect(), Bottom: p.BottomRect()}
	}
	return snap
}

// Bird returns the view for player p.
func (snap Snapshot) Bird(p core.PlayerID) BirdView {
	i := p.Index()
	if i < 0 {
		return BirdView{}
	}
	return snap.Birds[i]
}

package flappy

import (
	"github.com/vovakirdan/duoflap/internal/config"
)

// GapSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type GapSource interface {
	Intn(n int) int
}

// PipeManager handles spawning, movement, and removal of pipes.
// Pipes are kept in spawn order, which is also left-to-right order.
type PipeManager struct {
	pipes   []Pipe
	src     GapSource
	counter int // frames since the last spawn
	nextID  int
	spawnX  float64
	cfg     *config.PipesConfig
}

// NewPipeManager creates a manager spawning pipes at spawnX.
func NewPipeManager(src GapSource, spawnX float64, cfg *config.PipesConfig) *PipeManager {
	pm := &PipeManager{
		pipes:  make([]Pipe, 0, 4),
		src:    src,
		spawnX: spawnX,
		cfg:    cfg,
	}
	pm.Reset()
	return pm
}

// Reset clears all pipes and rewinds the spawn counter so the next Update
// spawns immediately. Pipe IDs keep counting up.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.counter = pm.cfg.SpawnInterval + 1
}

// Update spawns a pipe when the counter has run out, moves every pipe left
// and drops the ones that have left the screen.
func (pm *PipeManager) Update(dt float64) {
	if pm.counter > pm.cfg.SpawnInterval {
		pm.spawnPipe()
		pm.counter = 0
	}
	pm.counter++

	for i := range pm.pipes {
		pm.pipes[i].Update(dt)
	}

	// Compact in place; every element is visited exactly once.
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.RightEdge() >= 0 {
			kept = append(kept, p)
		}
	}
	pm.pipes = kept
}

func (pm *PipeManager) spawnPipe() {
	gapY := pm.cfg.MinGapY + pm.src.Intn(pm.cfg.MaxGapY-pm.cfg.MinGapY)
	pm.nextID++
	pm.pipes = append(pm.pipes, NewPipe(pm.nextID, pm.spawnX, float64(gapY), pm.cfg))
}

// Front returns the nearest (oldest) pipe.
func (pm *PipeManager) Front() (Pipe, bool) {
	if len(pm.pipes) == 0 {
		return Pipe{}, false
	}
	return pm.pipes[0], true
}

// Pipes returns the current list of pipes, oldest first.
func (pm *PipeManager) Pipes() []Pipe {
	return pm.pipes
}

// Spawned returns how many pipes have been created over the manager's life.
func (pm *PipeManager) Spawned() int {
	return pm.nextID
}

package flappy

import (
	"testing"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
)

// fixedSource always returns the same draw, clamped to the range.
type fixedSource struct{ v int }

func (s fixedSource) Intn(n int) int {
	return min(s.v, n-1)
}

// seqSource returns its values in turn, then repeats the last.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[min(s.i, len(s.vals)-1)]
	s.i++
	return v % n
}

func TestPipeGapIsKept(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	p := NewPipe(1, 600, 400, &cfg)

	for i := range 100 {
		gap := p.BottomRect().Y - p.TopRect().Bottom()
		if gap != cfg.Gap {
			t.Fatalf("update %d: gap = %v, expected %v", i, gap, cfg.Gap)
		}
		if p.TopRect().X != p.BottomRect().X {
			t.Fatalf("update %d: segments out of line", i)
		}
		p.Update(testDT)
	}
}

func TestPipeSharedConfig(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	a := NewPipe(1, 600, 300, &cfg)
	b := NewPipe(2, 400, 500, &cfg)

	cfg.Speed = 60
	a.Update(1)
	b.Update(1)

	if a.X != 540 || b.X != 340 {
		t.Errorf("pipes moved to %v and %v, expected 540 and 340", a.X, b.X)
	}
}

func TestPipeHits(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	p := NewPipe(1, 100, 450, &cfg)

	tests := []struct {
		name string
		r    core.Rect
		hit  bool
	}{
		{"inside gap", core.NewRect(110, 300, 51, 36), false},
		{"touching top segment edge", core.NewRect(110, 280, 51, 36), false},
		{"into top segment", core.NewRect(110, 270, 51, 36), true},
		{"into bottom segment", core.NewRect(110, 430, 51, 36), true},
		{"left of pipe", core.NewRect(0, 500, 51, 36), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Hits(tc.r); got != tc.hit {
				t.Errorf("Hits() = %v, expected %v", got, tc.hit)
			}
		})
	}
}

func TestPipeManagerSpawnsOnFirstFrame(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	pm := NewPipeManager(fixedSource{v: 100}, 600, &cfg)

	pm.Update(testDT)
	front, ok := pm.Front()
	if !ok {
		t.Fatal("expected a pipe after the first update")
	}
	if front.GapY != 350 {
		t.Errorf("GapY = %v, expected 350", front.GapY)
	}

	for range cfg.SpawnInterval {
		pm.Update(testDT)
	}
	if len(pm.Pipes()) != 1 {
		t.Errorf("pipes = %d after %d frames, expected 1", len(pm.Pipes()), cfg.SpawnInterval+1)
	}
	pm.Update(testDT)
	if len(pm.Pipes()) != 2 {
		t.Errorf("pipes = %d after %d frames, expected 2", len(pm.Pipes()), cfg.SpawnInterval+2)
	}
}

func TestPipeManagerGapRange(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	src := &seqSource{vals: []int{0, 299, 1000}}
	pm := NewPipeManager(src, 600, &cfg)

	for range 3 * (cfg.SpawnInterval + 1) {
		pm.Update(0)
	}
	pipes := pm.Pipes()
	if len(pipes) != 3 {
		t.Fatalf("pipes = %d, expected 3", len(pipes))
	}
	for _, p := range pipes {
		if p.GapY < float64(cfg.MinGapY) || p.GapY >= float64(cfg.MaxGapY) {
			t.Errorf("pipe %d GapY = %v outside [%d, %d)", p.ID, p.GapY, cfg.MinGapY, cfg.MaxGapY)
		}
	}
}

func TestPipeManagerRemovesInSpawnOrder(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	cfg.SpawnInterval = 5
	pm := NewPipeManager(fixedSource{v: 0}, 600, &cfg)

	var removed []int
	seen := map[int]bool{}
	prev := map[int]bool{}
	for range 400 {
		pm.Update(testDT)
		now := map[int]bool{}
		for _, p := range pm.Pipes() {
			now[p.ID] = true
			seen[p.ID] = true
		}
		for id := range prev {
			if !now[id] {
				removed = append(removed, id)
			}
		}
		prev = now

		for i := 1; i < len(pm.Pipes()); i++ {
			if pm.Pipes()[i-1].X >= pm.Pipes()[i].X {
				t.Fatal("pipes are not ordered left to right")
			}
		}
	}

	if len(removed) < 10 {
		t.Fatalf("only %d pipes removed", len(removed))
	}
	for i, id := range removed {
		if id != i+1 {
			t.Fatalf("removal %d was pipe %d, expected %d (order %v)", i, id, i+1, removed)
		}
	}
	for _, p := range pm.Pipes() {
		if p.RightEdge() < 0 {
			t.Errorf("pipe %d left the screen but was kept", p.ID)
		}
	}
}

func TestPipeManagerReset(t *testing.T) {
	cfg := config.DefaultDuelConfig().Pipes
	pm := NewPipeManager(fixedSource{v: 0}, 600, &cfg)
	pm.Update(testDT)
	pm.Reset()

	if _, ok := pm.Front(); ok {
		t.Error("Front() should be empty after Reset")
	}
	pm.Update(testDT)
	front, _ := pm.Front()
	if front.ID != 2 {
		t.Errorf("pipe ID after reset = %d, expected 2", front.ID)
	}
}

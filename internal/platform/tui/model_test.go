package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
	"github.com/vovakirdan/duoflap/internal/games/flappy"
)

func newTestModel() Model {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return NewModel(cfg, config.DefaultDuelConfig(), nil)
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(m Model) Model {
	return send(m, TickMsg(time.Now()))
}

func enterDuel(m Model) Model {
	m = send(m, runeKey('x'))
	return send(m, runeKey('x'))
}

func TestModelPhases(t *testing.T) {
	m := newTestModel()
	if m.Phase() != PhaseTitle {
		t.Fatalf("Phase() = %v, expected title", m.Phase())
	}

	m = send(m, runeKey('a'))
	if m.Phase() != PhaseControls {
		t.Fatalf("Phase() = %v, expected controls", m.Phase())
	}
	if !strings.Contains(m.View(), "player 2 flap") {
		t.Error("controls screen should list the key bindings")
	}

	m = send(m, runeKey('a'))
	if m.Phase() != PhaseDuel {
		t.Fatalf("Phase() = %v, expected duel", m.Phase())
	}
}

func TestModelTicksOnlyDuringDuel(t *testing.T) {
	m := newTestModel()
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter}) // leaves the title, does not start
	m = tick(m)
	if m.Session().State() != flappy.AwaitingStart {
		t.Errorf("State() = %v, expected awaiting start", m.Session().State())
	}

	m = send(m, runeKey('a'))
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)
	if m.Session().State() != flappy.Running {
		t.Errorf("State() = %v, expected running", m.Session().State())
	}
}

func TestModelInputIsClearedAfterTick(t *testing.T) {
	m := enterDuel(newTestModel())
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)

	m = send(m, tea.KeyMsg{Type: tea.KeySpace})
	m = tick(m)
	if v := m.Session().Bird(core.Player1).Velocity(); v >= 0 {
		t.Fatalf("player 1 should be rising after a flap, velocity %v", v)
	}

	m = tick(m)
	m = tick(m)
	before := m.Session().Bird(core.Player1).Velocity()
	m = tick(m)
	if after := m.Session().Bird(core.Player1).Velocity(); after <= before {
		t.Errorf("flap repeated on later ticks: velocity %v -> %v", before, after)
	}
}

func TestModelRecordsRounds(t *testing.T) {
	m := enterDuel(newTestModel())
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})

	for range 600 {
		m = tick(m)
		if m.Session().State() == flappy.RoundOver {
			break
		}
	}

	history := m.History()
	if len(history) != 1 {
		t.Fatalf("History() has %d rounds, expected 1", len(history))
	}
	if history[0].Outcome != (flappy.Outcome{Winner: core.Player1}) {
		t.Errorf("Outcome = %+v, expected player 1 to win", history[0].Outcome)
	}
	if history[0].Duration <= 0 {
		t.Errorf("Duration = %v, expected positive", history[0].Duration)
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("duel view should show the game over banner")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Phase() != PhaseResults {
		t.Fatalf("Phase() = %v, expected results", m.Phase())
	}
	if !strings.Contains(m.View(), "Player 1 Wins") {
		t.Error("results should list the finished round")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.Phase() != PhaseDuel {
		t.Errorf("Phase() = %v, expected duel after back", m.Phase())
	}

	m = send(m, runeKey('r'))
	m = tick(m)
	if m.Session().State() != flappy.Running {
		t.Errorf("State() = %v after restart, expected running", m.Session().State())
	}
}

func TestModelResultsBlockedWhileRunning(t *testing.T) {
	m := enterDuel(newTestModel())
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Phase() != PhaseDuel {
		t.Errorf("Phase() = %v, results must not open mid-round", m.Phase())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelResize(t *testing.T) {
	m := enterDuel(newTestModel())
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 30})

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("view has %d lines, expected 30", len(lines))
	}
}

func TestResultRowsNewestFirst(t *testing.T) {
	history := []RoundRecord{
		{Round: 1, Outcome: flappy.Outcome{Winner: core.Player1}},
		{Round: 2, Outcome: flappy.Outcome{Draw: true}},
		{Round: 3, Outcome: flappy.Outcome{Winner: core.Player2}, Player2: 4},
	}
	rows := resultRows(history)
	if rows[0][0] != "#3" || rows[0][1] != "Player 2 Wins" || rows[0][3] != "4" {
		t.Errorf("first row = %v", rows[0])
	}

	p1, p2, draws := tally(history)
	if p1 != 1 || p2 != 1 || draws != 1 {
		t.Errorf("tally = %d/%d/%d, expected 1/1/1", p1, p2, draws)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 1)
	s.DrawText(0, 0, "Player", core.ColorPlayer1)
	s.DrawText(7, 0, "Two", core.ColorPlayer2)

	if out := RenderScreen(s); !strings.Contains(out, "Player") || !strings.Contains(out, "Two") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
}

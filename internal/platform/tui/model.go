package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
	"github.com/vovakirdan/duoflap/internal/games/flappy"
)

// Phase is the screen the model is showing.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseControls
	PhaseDuel
	PhaseResults
)

// Model is the Bubble Tea model for the duel.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	results  table.Model
	history  []RoundRecord
	input    core.MultiInputFrame
	logger   *log.Logger
	phase    Phase
	width    int
	height   int
	quitting bool
}

// NewModel creates a model showing the title screen.
// A nil logger discards everything.
func NewModel(cfg core.RuntimeConfig, duel config.DuelConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: flappy.NewSession(duel, rand.New(rand.NewSource(cfg.Seed))),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		results: newResultsTable(cfg.ScreenW, cfg.ScreenH),
		input:   core.NewMultiInputFrame(),
		logger:  logger,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("starting", "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case PhaseTitle:
		m.phase = PhaseControls

	case PhaseControls:
		m.phase = PhaseDuel

	case PhaseDuel:
		if key.Matches(msg, m.keys.Results) && m.session.State() != flappy.Running {
			m.phase = PhaseResults
			return m, nil
		}
		m.keys.MapKeyToFrame(msg, &m.input)

	case PhaseResults:
		if key.Matches(msg, m.keys.Back, m.keys.Results) {
			m.phase = PhaseDuel
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleResize processes window resize events. The duel keeps running;
// rendering scales the world to whatever size the terminal has.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	m.results = newResultsTable(msg.Width, msg.Height)
	m.results.SetRows(resultRows(m.history))
	return m, nil
}

// handleTick advances the session by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.phase == PhaseDuel || m.phase == PhaseResults {
		res := m.session.Step(m.config.TickDelta(), m.input)
		m.input.Clear()
		m.observe(res)
	}
	return m, tickCmd(m.config.TickRate)
}

// observe logs step events and records finished rounds.
func (m *Model) observe(res flappy.StepResult) {
	for _, e := range res.Events {
		switch e.Kind {
		case flappy.EventRoundStarted:
			m.logger.Info("round started", "round", len(m.history)+1)

		case flappy.EventScored:
			m.logger.Debug("scored", "player", e.Player, "score", e.Score, "pipe", e.PipeID)

		case flappy.EventCollided:
			if e.PipeID == 0 {
				m.logger.Info("collided", "player", e.Player, "with", "ground")
			} else {
				m.logger.Info("collided", "player", e.Player, "with", "pipe", "pipe", e.PipeID)
			}

		case flappy.EventRoundOver:
			rec := RoundRecord{
				Round:    len(m.history) + 1,
				Outcome:  e.Outcome,
				Player1:  m.session.Score(core.Player1),
				Player2:  m.session.Score(core.Player2),
				Duration: time.Duration(float64(m.session.Frames()) * m.config.TickDelta() * float64(time.Second)),
			}
			m.history = append(m.history, rec)
			m.results.SetRows(resultRows(m.history))
			m.logger.Info("round over",
				"outcome", rec.Outcome,
				"player1", rec.Player1,
				"player2", rec.Player2,
				"duration", rec.Duration.Round(time.Millisecond),
			)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case PhaseTitle:
		return m.titleView()
	case PhaseControls:
		return m.controlsView()
	case PhaseResults:
		return m.resultsView()
	}

	flappy.Render(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// Phase returns the screen currently shown.
func (m Model) Phase() Phase {
	return m.phase
}

// Session returns the running duel.
func (m Model) Session() *flappy.Session {
	return m.session
}

// History returns the rounds finished so far.
func (m Model) History() []RoundRecord {
	return m.history
}

// Run starts the Bubble Tea program for the duel.
func Run(cfg core.RuntimeConfig, duel config.DuelConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, duel, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

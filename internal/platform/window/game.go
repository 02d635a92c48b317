// Package window runs the duel in a desktop window with ebiten.
// The world is drawn at its native resolution; ebiten scales the window.
package window

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/duoflap/internal/config"
	"github.com/vovakirdan/duoflap/internal/core"
	"github.com/vovakirdan/duoflap/internal/games/flappy"
)

// Screen is the screen the window is showing.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenControls
	ScreenDuel
)

// debugGlyph is the size of one ebitenutil debug font cell.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// Game implements ebiten.Game for the duel.
type Game struct {
	session *flappy.Session
	world   config.WorldConfig
	dt      float64
	screen  Screen
	logger  *log.Logger
	pressed []ebiten.Key
	rounds  int
}

// NewGame creates a window game showing the title screen.
// A nil logger discards everything.
func NewGame(cfg core.RuntimeConfig, duel config.DuelConfig, logger *log.Logger) *Game {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		session: flappy.NewSession(duel, rand.New(rand.NewSource(cfg.Seed))),
		world:   duel.World,
		dt:      cfg.TickDelta(),
		logger:  logger,
	}
}

// Update reads this frame's key presses and advances the game.
func (g *Game) Update() error {
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	return g.advance(g.pressed)
}

// advance runs one frame with the given freshly pressed keys.
// Returns ebiten.Termination when a quit key was pressed.
func (g *Game) advance(pressed []ebiten.Key) error {
	frame, quit := mapKeys(pressed)
	if quit {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	switch g.screen {
	case ScreenTitle:
		if len(pressed) > 0 {
			g.screen = ScreenControls
		}
		return nil
	case ScreenControls:
		if len(pressed) > 0 {
			g.screen = ScreenDuel
		}
		return nil
	}

	res := g.session.Step(g.dt, frame)
	for _, e := range res.Events {
		g.logEvent(e)
	}
	return nil
}

func (g *Game) logEvent(e flappy.Event) {
	switch e.Kind {
	case flappy.EventRoundStarted:
		g.rounds++
		g.logger.Info("round started", "round", g.rounds)
	case flappy.EventScored:
		g.logger.Debug("scored", "player", e.Player, "score", e.Score, "pipe", e.PipeID)
	case flappy.EventCollided:
		g.logger.Info("collided", "player", e.Player, "pipe", e.PipeID)
	case flappy.EventRoundOver:
		g.logger.Info("round over",
			"outcome", e.Outcome,
			"player1", g.session.Score(core.Player1),
			"player2", g.session.Score(core.Player2),
		)
	}
}

// Draw renders the current screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	switch g.screen {
	case ScreenTitle:
		g.drawTitle(screen)
		return
	case ScreenControls:
		g.drawControls(screen)
		return
	}

	snap := g.session.Snapshot()
	for _, p := range snap.Pipes {
		drawRect(screen, p.Top, rgba(core.ColorPipe))
		drawRect(screen, p.Bottom, rgba(core.ColorPipe))
	}
	g.drawGround(screen, snap)
	for _, b := range snap.Birds {
		drawBird(screen, b)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", core.Player1, snap.Birds[0].Score), 10, 10)
	p2 := fmt.Sprintf("%s: %d", core.Player2, snap.Birds[1].Score)
	ebitenutil.DebugPrintAt(screen, p2, int(g.world.Width)-10-len(p2)*debugGlyphW, 10)

	switch snap.State {
	case flappy.AwaitingStart:
		g.drawBanner(screen, "Press Enter to start")
	case flappy.RoundOver:
		g.drawBanner(screen, "GAME OVER", snap.Outcome.String(), "Press R to restart")
	}
}

// Layout fixes the logical screen to the world size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.world.Width), int(g.world.Height)
}

func drawRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func drawBird(dst *ebiten.Image, b flappy.BirdView) {
	drawRect(dst, b.Rect, rgba(core.PlayerColor(b.Player)))
	vector.StrokeRect(dst, float32(b.Rect.X), float32(b.Rect.Y), float32(b.Rect.W), float32(b.Rect.H), 2, rgba(core.ColorDefault), false)

	// Wing: up or down by phase, dropped when the bird has crashed.
	if !b.Alive {
		return
	}
	wingY := b.Rect.Y + b.Rect.H*0.25
	if b.Phase == 1 {
		wingY = b.Rect.Y + b.Rect.H*0.55
	}
	wing := core.NewRect(b.Rect.X+b.Rect.W*0.1, wingY, b.Rect.W*0.4, b.Rect.H*0.2)
	drawRect(dst, wing, rgba(core.ColorWhite))
}

func (g *Game) drawGround(dst *ebiten.Image, snap flappy.Snapshot) {
	top := g.world.GroundY
	ground := core.NewRect(0, top, g.world.Width, g.world.Height-top)
	drawRect(dst, ground, groundColor)

	// Stripes slide left with the scroll offset.
	stripe := snap.GroundTile / 8
	start := -math.Mod(snap.GroundOffset, 2*stripe)
	for x := start; x < g.world.Width; x += 2 * stripe {
		drawRect(dst, core.NewRect(x, top, stripe, 12), stripeColor)
	}
}

func (g *Game) drawBanner(dst *ebiten.Image, lines ...string) {
	longest := 0
	for _, l := range lines {
		longest = max(longest, len(l))
	}
	w := float64(longest*debugGlyphW + 40)
	h := float64(len(lines)*debugGlyphH*2 + 20)
	x := (g.world.Width - w) / 2
	y := (g.world.GroundY - h) / 2
	drawRect(dst, core.NewRect(x, y, w, h), shadeColor)

	for i, l := range lines {
		lx := int(g.world.Width)/2 - len(l)*debugGlyphW/2
		ly := int(y) + 14 + i*debugGlyphH*2
		ebitenutil.DebugPrintAt(dst, l, lx, ly)
	}
}

func (g *Game) drawTitle(dst *ebiten.Image) {
	g.drawBanner(dst, "F L A P P Y   D U E L", "", "Player 1  vs  Player 2", "", "press any key")
}

func (g *Game) drawControls(dst *ebiten.Image) {
	g.drawBanner(dst,
		"CONTROLS",
		"Enter   start round",
		"Space   player 1 flap",
		"Up      player 2 flap",
		"R       restart after game over",
		"Esc/Q   quit",
		"",
		"press any key",
	)
}

// Screen returns the screen currently shown.
func (g *Game) Screen() Screen {
	return g.screen
}

// Session returns the running duel.
func (g *Game) Session() *flappy.Session {
	return g.session
}

// Run opens the window and blocks until it is closed or a quit key is pressed.
func Run(cfg core.RuntimeConfig, duel config.DuelConfig, scale float64, logger *log.Logger) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(duel.World.Width*scale), int(duel.World.Height*scale))
	ebiten.SetWindowTitle("Flappy Duel")
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(NewGame(cfg, duel, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/duoflap/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	WingUpChar    = '^'
	WingDownChar  = 'v'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '═'
	GroundAltChar = '─'
)

// groundStripes is how many alternating stripes one ground tile holds.
const groundStripes = 8

// cellMapper converts world units to terminal cells. Row 0 is the HUD and
// the last row is ground, so the world above the ground line is squeezed
// into the rows between them.
type cellMapper struct {
	sx, sy float64
	top    int // first play row
	ground int // row of the ground strip
}

func newCellMapper(dst *core.Screen, snap Snapshot) cellMapper {
	ground := dst.Height() - 1
	playH := ground - 1
	if playH < 1 {
		playH = 1
	}
	return cellMapper{
		sx:     float64(dst.Width()) / snap.World.Width,
		sy:     float64(playH) / snap.World.GroundY,
		top:    1,
		ground: ground,
	}
}

// rect returns the cells covered by r, at least one cell in each direction.
func (m cellMapper) rect(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * m.sx))
	x1 := int(math.Ceil(r.Right() * m.sx))
	y0 := m.top + int(math.Floor(r.Y*m.sy))
	y1 := m.top + int(math.Ceil(r.Bottom()*m.sy))
	w = max(x1-x0, 1)
	h = max(y1-y0, 1)

	// Keep everything above the ground strip and below the HUD.
	if y0 < m.top {
		h -= m.top - y0
		y0 = m.top
	}
	if y0+h > m.ground {
		h = m.ground - y0
	}
	return x0, y0, w, h
}

// Render draws a snapshot to the terminal screen buffer.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	m := newCellMapper(dst, snap)

	for _, p := range snap.Pipes {
		drawPipe(dst, m, p)
	}
	drawGround(dst, m, snap)
	for _, b := range snap.Birds {
		drawBird(dst, m, b)
	}
	drawHUD(dst, snap)

	switch snap.State {
	case AwaitingStart:
		drawCenteredMessage(dst, "FLAPPY DUEL", "Press Enter to start")
	case RoundOver:
		drawCenteredMessage(dst, "GAME OVER", snap.Outcome.String(), "Press R to restart")
	}
}

func drawPipe(dst *core.Screen, m cellMapper, p PipeView) {
	x, y, w, h := m.rect(p.Top)
	if h > 0 {
		dst.FillRect(x, y, w, h, PipeChar, core.ColorPipe)
		dst.DrawHLine(x, y+h-1, w, PipeCapTop, core.ColorPipe)
	}

	x, y, w, h = m.rect(p.Bottom)
	if h > 0 {
		dst.FillRect(x, y, w, h, PipeChar, core.ColorPipe)
		dst.DrawHLine(x, y, w, PipeCapBottom, core.ColorPipe)
	}
}

// drawGround draws the strip with stripes that slide left as the ground scrolls.
func drawGround(dst *core.Screen, m cellMapper, snap Snapshot) {
	stripe := snap.GroundTile / groundStripes
	for col := 0; col < dst.Width(); col++ {
		worldX := float64(col)/m.sx + snap.GroundOffset
		r := GroundChar
		if int(worldX/stripe)%2 == 1 {
			r = GroundAltChar
		}
		dst.SetColored(col, m.ground, r, core.ColorGround)
	}
}

func drawBird(dst *core.Screen, m cellMapper, b BirdView) {
	x, y, w, h := m.rect(b.Rect)
	if h <= 0 {
		return
	}
	c := core.PlayerColor(b.Player)
	dst.FillRect(x, y, w, h, BirdChar, c)

	wing := WingUpChar
	if b.Phase == 1 {
		wing = WingDownChar
	}
	if !b.Alive {
		wing = 'x'
	}
	dst.SetColored(x, y, wing, c)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	p1 := snap.Bird(core.Player1)
	p2 := snap.Bird(core.Player2)

	left := fmt.Sprintf(" %s: %d ", core.Player1, p1.Score)
	right := fmt.Sprintf(" %s: %d ", core.Player2, p2.Score)

	dst.DrawText(1, 0, left, core.ColorPlayer1)
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right, core.ColorPlayer2)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title string, lines ...string) {
	boxW := len([]rune(title))
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBanner)

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBanner)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l, core.ColorBanner)
	}
}

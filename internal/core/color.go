package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal front-end.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorBrown
	ColorGray
)

// Colors of the duel's elements, shared by both front-ends.
const (
	ColorPlayer1 = ColorMagenta
	ColorPlayer2 = ColorBrown
	ColorPipe    = ColorBrightGreen
	ColorGround  = ColorYellow
	ColorBanner  = ColorWhite
)

// PlayerColor returns the HUD and bird color for a player.
func PlayerColor(p PlayerID) Color {
	switch p {
	case Player1:
		return ColorPlayer1
	case Player2:
		return ColorPlayer2
	default:
		return ColorDefault
	}
}

package window

import (
	"image/color"

	"github.com/vovakirdan/duoflap/internal/core"
)

var (
	skyColor    = color.RGBA{0x4e, 0xc0, 0xca, 0xff}
	groundColor = color.RGBA{0xde, 0xd8, 0x95, 0xff}
	stripeColor = color.RGBA{0x9c, 0xe6, 0x59, 0xff}
	shadeColor  = color.RGBA{0x00, 0x00, 0x00, 0x99}
)

// palette maps core colors to pixels.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xff, 0xff, 0xff, 0xff},
	core.ColorRed:          {0xd0, 0x30, 0x30, 0xff},
	core.ColorGreen:        {0x30, 0xa0, 0x30, 0xff},
	core.ColorYellow:       {0xe0, 0xc0, 0x40, 0xff},
	core.ColorBlue:         {0x30, 0x60, 0xd0, 0xff},
	core.ColorMagenta:      {0xd0, 0x40, 0xc0, 0xff},
	core.ColorCyan:         {0x40, 0xc0, 0xd0, 0xff},
	core.ColorWhite:        {0xf0, 0xf0, 0xf0, 0xff},
	core.ColorBrightGreen:  {0x73, 0xbf, 0x2e, 0xff},
	core.ColorBrightYellow: {0xf8, 0xe0, 0x58, 0xff},
	core.ColorOrange:       {0xf0, 0x90, 0x30, 0xff},
	core.ColorBrown:        {0x96, 0x5a, 0x2d, 0xff},
	core.ColorGray:         {0x80, 0x80, 0x80, 0xff},
}

// rgba returns the pixel color for c, white when unknown.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

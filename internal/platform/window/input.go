package window

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/duoflap/internal/core"
)

// Key bindings for the window. Both players share one keyboard.
var (
	keysStart   = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	keysFlapP1  = []ebiten.Key{ebiten.KeySpace}
	keysFlapP2  = []ebiten.Key{ebiten.KeyArrowUp}
	keysRestart = []ebiten.Key{ebiten.KeyR}
	keysQuit    = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}
)

func anyOf(pressed, bound []ebiten.Key) bool {
	for _, k := range bound {
		if slices.Contains(pressed, k) {
			return true
		}
	}
	return false
}

// mapKeys turns the keys pressed this frame into a duel input frame.
// Returns true if a quit key was pressed.
func mapKeys(pressed []ebiten.Key) (core.MultiInputFrame, bool) {
	frame := core.NewMultiInputFrame()
	if anyOf(pressed, keysQuit) {
		return frame, true
	}
	if anyOf(pressed, keysStart) {
		frame.Set(core.Player1, core.ActionConfirm)
	}
	if anyOf(pressed, keysFlapP1) {
		frame.Set(core.Player1, core.ActionFlap)
	}
	if anyOf(pressed, keysFlapP2) {
		frame.Set(core.Player2, core.ActionFlap)
	}
	if anyOf(pressed, keysRestart) {
		frame.Set(core.Player1, core.ActionRestart)
	}
	return frame, false
}

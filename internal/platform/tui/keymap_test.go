package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duoflap/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyToFrame(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		player core.PlayerID
		action core.Action
	}{
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.Player1, core.ActionConfirm},
		{"space flaps player 1", tea.KeyMsg{Type: tea.KeySpace}, core.Player1, core.ActionFlap},
		{"up flaps player 2", tea.KeyMsg{Type: tea.KeyUp}, core.Player2, core.ActionFlap},
		{"r restarts", runeKey('r'), core.Player1, core.ActionRestart},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewMultiInputFrame()
			if keys.MapKeyToFrame(tc.msg, &frame) {
				t.Fatal("key should not quit")
			}
			if !frame.Player(tc.player).Has(tc.action) {
				t.Errorf("%v should have %v", tc.player, tc.action)
			}
			if frame.Player(tc.player.Other()).Has(tc.action) {
				t.Errorf("%v should not have %v", tc.player.Other(), tc.action)
			}
		})
	}
}

func TestMapKeyToFrameQuit(t *testing.T) {
	keys := DefaultKeyMap()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		frame := core.NewMultiInputFrame()
		if !keys.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should quit", msg.String())
		}
	}
}

func TestMapKeyToFrameIgnoresOtherKeys(t *testing.T) {
	keys := DefaultKeyMap()
	frame := core.NewMultiInputFrame()
	for _, msg := range []tea.KeyMsg{runeKey('x'), {Type: tea.KeyDown}, runeKey('w')} {
		if keys.MapKeyToFrame(msg, &frame) {
			t.Errorf("%q should not quit", msg.String())
		}
	}
	for _, a := range []core.Action{core.ActionFlap, core.ActionConfirm, core.ActionRestart} {
		if frame.Any(a) {
			t.Errorf("unexpected %v", a)
		}
	}
}

func TestHelpListsBothPlayers(t *testing.T) {
	keys := DefaultKeyMap()
	found := map[string]bool{}
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			found[b.Help().Desc] = true
		}
	}
	for _, want := range []string{"player 1 flap", "player 2 flap", "start round", "restart after game over"} {
		if !found[want] {
			t.Errorf("full help missing %q", want)
		}
	}
}

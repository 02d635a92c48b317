package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duoflap/internal/core"
)

// KeyMap defines the key bindings for the duel.
// Both players share one keyboard.
type KeyMap struct {
	Start   key.Binding
	FlapP1  key.Binding
	FlapP2  key.Binding
	Restart key.Binding
	Results key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FlapP1, k.FlapP2, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FlapP1, k.FlapP2},
		{k.Start, k.Restart},
		{k.Results, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start round"),
		),
		FlapP1: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "player 1 flap"),
		),
		FlapP2: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "player 2 flap"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart after game over"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "round results"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKeyToFrame records the duel action for a key in frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		return true
	case key.Matches(msg, k.Start):
		frame.Set(core.Player1, core.ActionConfirm)
	case key.Matches(msg, k.FlapP1):
		frame.Set(core.Player1, core.ActionFlap)
	case key.Matches(msg, k.FlapP2):
		frame.Set(core.Player2, core.ActionFlap)
	case key.Matches(msg, k.Restart):
		frame.Set(core.Player1, core.ActionRestart)
	}
	return false
}

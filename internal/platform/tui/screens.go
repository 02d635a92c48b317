package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duoflap/internal/core"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(1, 4)
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// titleView renders the title screen.
func (m Model) titleView() string {
	players := lipgloss.JoinHorizontal(lipgloss.Center,
		styleFor(core.ColorPlayer1).Render("● Player 1"),
		"   vs   ",
		styleFor(core.ColorPlayer2).Render("● Player 2"),
	)
	body := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render("F L A P P Y   D U E L"),
		"",
		players,
		"",
		hintStyle.Render("press any key"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// controlsView renders the controls screen from the key bindings.
func (m Model) controlsView() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("CONTROLS"))
	b.WriteString("\n\n")

	h := m.help
	h.ShowAll = true
	b.WriteString(h.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString("Fly through the gaps. Touching a pipe or the ground ends the round;\n")
	b.WriteString("the other bird wins. Crash together and it's a draw.")

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render(b.String()),
		"",
		hintStyle.Render("press any key"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

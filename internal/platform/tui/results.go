package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duoflap/internal/games/flappy"
)

// RoundRecord summarises one finished round of this session.
// Records live in memory only and are gone when the program exits.
type RoundRecord struct {
	Round    int
	Outcome  flappy.Outcome
	Player1  int
	Player2  int
	Duration time.Duration
}

// newResultsTable creates the round history table sized for the terminal.
func newResultsTable(width, height int) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 6},
		{Title: "Result", Width: 14},
		{Title: "P1", Width: 4},
		{Title: "P2", Width: 4},
		{Title: "Time", Width: 8},
	}
	if width > 60 {
		columns[1].Width = 18
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows converts the history to table rows, most recent first.
func resultRows(history []RoundRecord) []table.Row {
	rows := make([]table.Row, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		r := history[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", r.Round),
			r.Outcome.String(),
			fmt.Sprintf("%d", r.Player1),
			fmt.Sprintf("%d", r.Player2),
			fmt.Sprintf("%.1fs", r.Duration.Seconds()),
		})
	}
	return rows
}

// tally counts wins per player and draws.
func tally(history []RoundRecord) (p1, p2, draws int) {
	for _, r := range history {
		switch {
		case r.Outcome.Draw:
			draws++
		case r.Outcome.Winner.Index() == 0:
			p1++
		case r.Outcome.Winner.Index() == 1:
			p2++
		}
	}
	return p1, p2, draws
}

// resultsView renders the round history screen.
func (m Model) resultsView() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("ROUND RESULTS", m.width)))
	b.WriteString("\n\n")

	p1, p2, draws := tally(m.history)
	summary := fmt.Sprintf("Player 1: %d   Player 2: %d   Draws: %d", p1, p2, draws)
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.history) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No rounds finished yet.")))
	} else {
		b.WriteString(tableStyle.Render(m.results.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit})))
	return b.String()
}

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Leaderboard layout constants
const (
	rankWidth  = 6
	winsWidth  = 6
	shotsWidth = 11
	nameMin    = 14
	nameMax    = 24
)

// newLeaderboardTable builds a table of winners sized for the terminal width.
func newLeaderboardTable(leaders []storage.Standing, width int) table.Model {
	nameWidth := width - rankWidth - winsWidth - shotsWidth - 12 // Borders and padding
	if nameWidth < nameMin {
		nameWidth = nameMin
	}
	if nameWidth > nameMax {
		nameWidth = nameMax
	}

	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Captain", Width: nameWidth},
		{Title: "Wins", Width: winsWidth},
		{Title: "Best shots", Width: shotsWidth},
	}

	rows := make([]table.Row, len(leaders))
	for i, l := range leaders {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			l.Name,
			fmt.Sprintf("%d", l.Wins),
			fmt.Sprintf("%d", l.BestShots),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// renderLeaderboard renders the winners table with a title.
func renderLeaderboard(leaders []storage.Standing, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	t := newLeaderboardTable(leaders, width)
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("HALL OF CAPTAINS"),
		tableStyle.Render(t.View()),
	)
}

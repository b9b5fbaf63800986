package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/ui/theme"
)

// Navigator renders a numbered grid of question slots so the user can see
// at a glance which questions are answered, bookmarked, or current.
type Navigator struct {
	Total      int
	Current    int
	Answered   map[int]bool
	Bookmarked map[int]bool
	Width      int
}

// NewNavigator creates a navigator over total question slots.
func NewNavigator(total, current int, answered, bookmarked map[int]bool, width int) Navigator {
	return Navigator{
		Total:      total,
		Current:    current,
		Answered:   answered,
		Bookmarked: bookmarked,
		Width:      width,
	}
}

// View renders the grid.
func (n Navigator) View() string {
	if n.Total == 0 {
		return ""
	}

	cellWidth := 5
	perRow := n.Width / cellWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	var row []string
	for i := 0; i < n.Total; i++ {
		label := fmt.Sprintf("%2d", i+1)
		if n.Bookmarked[i] {
			label = "⚑" + strings.TrimLeft(label, " ")
		}
		cell := fmt.Sprintf(" %s ", label)

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case i == n.Current:
			style = lipgloss.NewStyle().
				Foreground(theme.BgCard).
				Background(theme.Primary).
				Bold(true)
		case n.Answered[i]:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case n.Bookmarked[i]:
			style = lipgloss.NewStyle().Foreground(theme.Accent)
		}

		row = append(row, style.Render(cell))
		if len(row) == perRow {
			rows = append(rows, strings.Join(row, ""))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, ""))
	}

	return strings.Join(rows, "\n")
}

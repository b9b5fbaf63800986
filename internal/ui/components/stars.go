package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/ui/theme"
)

// StarRow renders a row of filled and empty stars out of max.
func StarRow(filled, max int) string {
	if filled < 0 {
		filled = 0
	}
	if filled > max {
		filled = max
	}

	lit := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(strings.Repeat("★", filled))
	dim := lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("☆", max-filled))

	return lit + dim
}

package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/ui/theme"
)

// optionLabels are the letter prefixes shown next to answer options.
var optionLabels = "ABCDEFGH"

// OptionList renders a question's answer options. Cursor is the highlighted
// row, Chosen the recorded answer (-1 for none). When Reveal is set the
// correct option and a wrong chosen option are color-coded instead.
type OptionList struct {
	Options      []string
	CorrectIndex int
	Cursor       int
	Chosen       int
	Reveal       bool
}

// NewOptionList creates an option list with nothing chosen.
func NewOptionList(options []string, correctIndex int) OptionList {
	return OptionList{
		Options:      options,
		CorrectIndex: correctIndex,
		Chosen:       -1,
	}
}

// CursorUp moves the highlight up one row.
func (o *OptionList) CursorUp() {
	if o.Cursor > 0 {
		o.Cursor--
	}
}

// CursorDown moves the highlight down one row.
func (o *OptionList) CursorDown() {
	if o.Cursor < len(o.Options)-1 {
		o.Cursor++
	}
}

// View renders the option rows.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = string(optionLabels[i])
		}

		prefix := "  "
		if i == o.Cursor && !o.Reveal {
			prefix = "▸ "
		}
		marker := " "
		if i == o.Chosen {
			marker = "●"
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case o.Reveal && i == o.CorrectIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case o.Reveal && i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case o.Reveal:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	switch q.phase {
	case phaseLoading:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading questions...")
	case phaseError:
		return q.renderError(width)
	case phaseConfirmSubmit:
		return q.renderConfirm(width)
	}
	return q.renderQuestion(width, height)
}

func (q *QuizScreen) renderError(width int) string {
	msg := lipgloss.NewStyle().
		Foreground(theme.Error).
		Bold(true).
		Render(q.errMsg)
	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Press any key to go back.")
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + msg + "\n\n" + hint)
}

func (q *QuizScreen) renderConfirm(width int) string {
	n := q.session.UnansweredCount()
	noun := "questions"
	if n == 1 {
		noun = "question"
	}
	msg := fmt.Sprintf("%d %s unanswered.", n, noun)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Accent).
		Padding(1, 3).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(msg) +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Submit anyway?  [y] submit  [n] keep going"))

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n\n" + box)
}

func (q *QuizScreen) renderQuestion(width, height int) string {
	cur := q.session.Current()
	if cur == nil {
		return ""
	}

	var b strings.Builder
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	// Status line.
	mins := int(q.elapsed.Minutes())
	secs := int(q.elapsed.Seconds()) % 60
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d/%d", q.session.CurrentIndex()+1, q.session.Len()))
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s  ⏱ %d:%02d", cur.Category, cur.Difficulty, mins, secs))

	pad := cw - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(left + strings.Repeat(" ", pad) + right + "\n")

	bar := components.NewProgressBar("", q.answeredFraction(), false, cw)
	b.WriteString(bar.View() + "\n\n")

	// Question card.
	prompt := cur.Prompt
	if q.session.Bookmarked(q.session.CurrentIndex()) {
		prompt = "⚑ " + prompt
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Width(cw).
		Foreground(theme.Text).
		Bold(true).
		Render(prompt)
	b.WriteString(card + "\n\n")

	b.WriteString(q.options.View())

	if q.hintShown && cur.Hint != "" {
		hint := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Italic(true).
			Width(cw).
			Render("Hint: " + cur.Hint)
		b.WriteString("\n" + hint + "\n")
	}

	if q.jump != nil {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Go to question: ") + q.jump.View() + "\n")
	}

	nav := components.NewNavigator(
		q.session.Len(),
		q.session.CurrentIndex(),
		q.answeredSet(),
		q.bookmarkedSet(),
		cw,
	)
	b.WriteString("\n" + nav.View())

	return lipgloss.NewStyle().
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

func (q *QuizScreen) answeredFraction() float64 {
	total := q.session.Len()
	if total == 0 {
		return 0
	}
	answered := total - q.session.UnansweredCount()
	return float64(answered) / float64(total)
}

func (q *QuizScreen) answeredSet() map[int]bool {
	set := make(map[int]bool)
	for i := 0; i < q.session.Len(); i++ {
		if _, ok := q.session.Answer(i); ok {
			set[i] = true
		}
	}
	return set
}

func (q *QuizScreen) bookmarkedSet() map[int]bool {
	set := make(map[int]bool)
	for i := 0; i < q.session.Len(); i++ {
		if q.session.Bookmarked(i) {
			set[i] = true
		}
	}
	return set
}

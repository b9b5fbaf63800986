package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	qz "github.com/omark/quizdeck/internal/quiz"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// reviewWindow is how many review rows are visible at once.
const reviewWindow = 5

// ResultsScreen shows the outcome of a submitted quiz with a per-question
// review.
type ResultsScreen struct {
	result    qz.Result
	questions []content.Question
	answers   []int
	unlocked  []string
	retry     func() screen.Screen
	cursor    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen. retry builds a fresh quiz screen for the
// same subject and lecture.
func New(result qz.Result, questions []content.Question, answers []int, unlocked []string, retry func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		result:    result,
		questions: questions,
		answers:   answers,
		unlocked:  unlocked,
		retry:     retry,
	}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.questions)-1 {
			r.cursor++
		}
	case "r":
		if r.retry != nil {
			next := r.retry()
			return r, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: next}
			}
		}
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder
	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	b.WriteString(r.renderScore(cw))
	b.WriteString("\n\n")

	for _, id := range r.unlocked {
		if a := progress.AchievementByID(id); a != nil {
			line := fmt.Sprintf("%s  %s unlocked — %s", a.Icon, a.Name, a.Description)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line) + "\n")
		}
	}
	if len(r.unlocked) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(r.renderReview(cw))

	return lipgloss.NewStyle().
		PaddingLeft(4).
		PaddingTop(1).
		Render(b.String())
}

func (r *ResultsScreen) renderScore(cw int) string {
	res := r.result
	stars := progress.Stars(res.Percentage)

	pctStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if res.Percentage < 50 {
		pctStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	mins := res.ElapsedSeconds / 60
	secs := res.ElapsedSeconds % 60

	lines := []string{
		pctStyle.Render(fmt.Sprintf("%d%%", res.Percentage)) + "   " + components.StarRow(stars, progress.MaxStars),
		lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("%d of %d correct in %d:%02d", res.CorrectCount, res.TotalCount, mins, secs)),
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 3).
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func (r *ResultsScreen) renderReview(cw int) string {
	if len(r.questions) == 0 {
		return ""
	}

	start := r.cursor - reviewWindow/2
	if start > len(r.questions)-reviewWindow {
		start = len(r.questions) - reviewWindow
	}
	if start < 0 {
		start = 0
	}
	end := start + reviewWindow
	if end > len(r.questions) {
		end = len(r.questions)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("Review (%d/%d)", r.cursor+1, len(r.questions))) + "\n")

	for i := start; i < end; i++ {
		q := r.questions[i]
		chosen := qz.Unanswered
		if i < len(r.answers) {
			chosen = r.answers[i]
		}

		mark := lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		if chosen == q.CorrectIndex {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		}

		prefix := "  "
		if i == r.cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %2d. %s", prefix, mark, i+1, truncate(q.Prompt, cw-10))
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == r.cursor {
			style = style.Bold(true)
		}
		b.WriteString(style.Render(line) + "\n")

		if i == r.cursor {
			b.WriteString(r.renderAnswerDetail(q, chosen))
		}
	}

	return b.String()
}

func (r *ResultsScreen) renderAnswerDetail(q content.Question, chosen int) string {
	indent := "      "
	var b strings.Builder

	correct := lipgloss.NewStyle().Foreground(theme.Success).Render(
		"Correct: " + option(q, q.CorrectIndex))
	b.WriteString(indent + correct + "\n")

	switch {
	case chosen == qz.Unanswered:
		b.WriteString(indent + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Not answered") + "\n")
	case chosen != q.CorrectIndex:
		wrong := lipgloss.NewStyle().Foreground(theme.Error).Render(
			"Yours:   " + option(q, chosen))
		b.WriteString(indent + wrong + "\n")
	}

	return b.String()
}

func option(q content.Question, i int) string {
	if i < 0 || i >= len(q.Options) {
		return "?"
	}
	return q.Options[i]
}

func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Review"},
		{Key: "R", Description: "Retry"},
		{Key: "Esc", Description: "Back"},
	}
}

package analytics

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// AnalyticsScreen shows lifetime totals, the achievement grid, and a
// per-subject rollup.
type AnalyticsScreen struct {
	prog *progress.Store
}

var _ screen.Screen = (*AnalyticsScreen)(nil)
var _ screen.KeyHintProvider = (*AnalyticsScreen)(nil)

// New creates the analytics screen.
func New(prog *progress.Store) *AnalyticsScreen {
	return &AnalyticsScreen{prog: prog}
}

func (a *AnalyticsScreen) Init() tea.Cmd {
	return nil
}

func (a *AnalyticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AnalyticsScreen) View(width, height int) string {
	p := a.prog.Profile()

	cw := width - 8
	if cw > 90 {
		cw = 90
	}

	sections := []string{
		renderTotals(p, cw),
		renderBadges(p),
		renderSubjects(p, cw),
	}

	return lipgloss.NewStyle().
		PaddingLeft(4).
		PaddingTop(1).
		Render(strings.Join(sections, "\n\n"))
}

func renderTotals(p *progress.Profile, cw int) string {
	rows := []string{
		fmt.Sprintf("Quizzes taken     %d", p.TotalQuizzes),
		fmt.Sprintf("Questions seen    %d", p.TotalQuestions),
		fmt.Sprintf("Correct answers   %d", p.TotalCorrect),
		fmt.Sprintf("Overall accuracy  %d%%", p.Accuracy()),
		fmt.Sprintf("Study streak      %d day", p.StudyStreak),
	}

	body := lipgloss.NewStyle().Foreground(theme.Text).Render(strings.Join(rows, "\n"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 3).
		Width(cw).
		Render(body)
}

func renderBadges(p *progress.Profile) string {
	var lines []string
	for _, a := range progress.Achievements() {
		if p.HasAchievement(a.ID) {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(
				fmt.Sprintf("%s  %s — %s", a.Icon, a.Name, a.Description)))
		} else {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("🔒  %s — %s", a.Name, a.Description)))
		}
	}

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Achievements")
	return title + "\n" + strings.Join(lines, "\n")
}

func renderSubjects(p *progress.Profile, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Subjects")

	var lines []string
	for _, subj := range content.Subjects() {
		stats, ok := p.SubjectStats[subj.ID]
		if !ok || stats.TotalQuizzes == 0 {
			lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
				fmt.Sprintf("%-24s not started", subj.Name)))
			continue
		}

		label := fmt.Sprintf("%-24s", subj.Name)
		bar := components.NewProgressBar("", float64(stats.AveragePercent())/100, false, cw/3)
		bar.Tint = scoreTint(stats.AveragePercent())
		detail := fmt.Sprintf("  %d quizzes · avg %d%% · best %d%%",
			stats.TotalQuizzes, stats.AveragePercent(), stats.BestScore)

		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Render(label)+
				bar.View()+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
	}

	return title + "\n" + strings.Join(lines, "\n")
}

// scoreTint maps an average score to a bar color.
func scoreTint(percent int) color.Color {
	switch {
	case percent >= 80:
		return theme.Success
	case percent >= 50:
		return theme.Secondary
	default:
		return theme.Error
	}
}

func (a *AnalyticsScreen) Title() string {
	return "Analytics"
}

func (a *AnalyticsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

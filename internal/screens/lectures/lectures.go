package lectures

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	quizscreen "github.com/omark/quizdeck/internal/screens/quiz"
	"github.com/omark/quizdeck/internal/store"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// LecturesScreen lists a subject's lectures with per-lecture progress.
type LecturesScreen struct {
	subject content.Subject
	menu    components.Menu
	prog    *progress.Store
}

var _ screen.Screen = (*LecturesScreen)(nil)
var _ screen.KeyHintProvider = (*LecturesScreen)(nil)

// New creates the lecture list for a subject.
func New(bank *content.Bank, prog *progress.Store, db *store.Store, subjectID string) *LecturesScreen {
	subj := content.SubjectByID(subjectID)
	if subj == nil {
		subj = &content.Subject{ID: subjectID, Name: subjectID}
	}

	l := &LecturesScreen{
		subject: *subj,
		prog:    prog,
	}

	items := []components.MenuItem{
		{
			Label:  "All lectures",
			Detail: "questions from the whole subject",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(bank, prog, db, subjectID, ""),
					}
				}
			},
		},
	}

	for _, lec := range subj.Lectures {
		lec := lec
		items = append(items, components.MenuItem{
			Label:  lec.Title,
			Detail: l.lectureDetail(lec),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(bank, prog, db, subjectID, lec.ID),
					}
				}
			},
		})
	}

	l.menu = components.NewMenu(items)
	return l
}

// lectureDetail summarizes the learner's standing on one lecture.
func (l *LecturesScreen) lectureDetail(lec content.Lecture) string {
	parts := []string{lec.Duration, fmt.Sprintf("%d questions", lec.QuestionCount)}

	if pct, ok := l.prog.Profile().LatestLecturePercent(l.subject.ID, lec.ID); ok {
		stars := progress.Stars(pct)
		parts = append(parts, fmt.Sprintf("%s %d%%",
			strings.Repeat("★", stars)+strings.Repeat("☆", progress.MaxStars-stars), pct))
	} else {
		parts = append(parts, "not attempted")
	}

	return strings.Join(parts, " · ")
}

func (l *LecturesScreen) Init() tea.Cmd {
	return nil
}

func (l *LecturesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LecturesScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(l.subject.Name)
	sections = append(sections, title)

	if l.subject.Description != "" {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(l.subject.Description))
	}

	if stats, ok := l.prog.Profile().SubjectStats[l.subject.ID]; ok && stats.TotalQuizzes > 0 {
		summary := fmt.Sprintf("%d quizzes · average %d%% · best %d%%",
			stats.TotalQuizzes, stats.AveragePercent(), stats.BestScore)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(summary))
	}

	sections = append(sections, l.menu.View())

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(strings.Join(sections, "\n\n"))
}

func (l *LecturesScreen) Title() string {
	return l.subject.Name
}

func (l *LecturesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/quiz"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/screens/analytics"
	"github.com/omark/quizdeck/internal/screens/history"
	"github.com/omark/quizdeck/internal/screens/lectures"
	quizscreen "github.com/omark/quizdeck/internal/screens/quiz"
	"github.com/omark/quizdeck/internal/store"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// HomeScreen is the subject picker and entry point of the application.
type HomeScreen struct {
	menu   components.Menu
	bank   *content.Bank
	prog   *progress.Store
	db     *store.Store
	resume *quiz.Snapshot
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. resume, when non-nil, is an in-progress quiz
// snapshot found at startup; it adds a "Resume quiz" entry to the menu.
func New(bank *content.Bank, prog *progress.Store, db *store.Store, resume *quiz.Snapshot) *HomeScreen {
	h := &HomeScreen{
		bank:   bank,
		prog:   prog,
		db:     db,
		resume: resume,
	}

	var items []components.MenuItem

	if resume != nil {
		snap := resume
		subjectName := snap.SubjectID
		if subj := content.SubjectByID(snap.SubjectID); subj != nil {
			subjectName = subj.Name
		}
		items = append(items, components.MenuItem{
			Label:  "Resume quiz",
			Detail: fmt.Sprintf("%s, question %d of %d", subjectName, snap.CurrentIndex+1, len(snap.Questions)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.Resume(bank, prog, db, *snap),
					}
				}
			},
		})
	}

	for _, subj := range content.Subjects() {
		subj := subj
		items = append(items, components.MenuItem{
			Label:  subj.Name,
			Detail: subj.Description,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lectures.New(bank, prog, db, subj.ID),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{
			Label: "Analytics",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: analytics.New(prog)}
				}
			},
		},
		components.MenuItem{
			Label: "History",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(prog)}
				}
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.prog.Profile()

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Pick a subject")
	sections = append(sections, title)

	sections = append(sections, h.renderStatsBar(p, width))
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingTop(1).
		Render(content)
}

func (h *HomeScreen) renderStatsBar(p *progress.Profile, width int) string {
	cells := []string{
		fmt.Sprintf("Quizzes %d", p.TotalQuizzes),
		fmt.Sprintf("Accuracy %d%%", p.Accuracy()),
		fmt.Sprintf("Streak %d day", p.StudyStreak),
		fmt.Sprintf("Badges %d/%d", len(p.Achievements), len(progress.Achievements())),
	}

	cellStyle := lipgloss.NewStyle().
		Foreground(theme.Text).
		Background(theme.BgCard).
		Padding(0, 2)

	var rendered []string
	for _, c := range cells {
		rendered = append(rendered, cellStyle.Render(c))
	}

	return strings.Join(rendered, " ")
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

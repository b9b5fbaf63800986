package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/ui/components"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// maxVisible caps how many past attempts the list shows.
const maxVisible = 50

// HistoryScreen lists past quiz attempts, newest first.
type HistoryScreen struct {
	attempts []progress.AttemptRecord
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen from the current profile.
func New(prog *progress.Store) *HistoryScreen {
	hist := prog.Profile().QuizHistory

	// Profile stores attempts oldest first.
	attempts := make([]progress.AttemptRecord, 0, len(hist))
	for i := len(hist) - 1; i >= 0 && len(attempts) < maxVisible; i-- {
		attempts = append(attempts, hist[i])
	}

	return &HistoryScreen{
		attempts: attempts,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Pick a subject and get started!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.attempts {
		dateStr := rec.Date.Format("Jan 02, 2006")
		durationStr := fmt.Sprintf("%d:%02d", rec.TimeSecs/60, rec.TimeSecs%60)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d/%d  %d%%",
			prefix, dateStr, subjectName(rec.SubjectID), durationStr,
			rec.Score, rec.Total, rec.Percentage)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("    %s  %s",
				lectureName(rec.SubjectID, rec.LectureID),
				components.StarRow(progress.Stars(rec.Percentage), 5))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func subjectName(id string) string {
	if subj := content.SubjectByID(id); subj != nil {
		return subj.Name
	}
	return id
}

func lectureName(subjectID, lectureID string) string {
	if lectureID == "" {
		return "All lectures"
	}
	if subj := content.SubjectByID(subjectID); subj != nil {
		if lec := subj.LectureByID(lectureID); lec != nil {
			return lec.Title
		}
	}
	return "Lecture " + lectureID
}

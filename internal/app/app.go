package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/content"
	"github.com/omark/quizdeck/internal/progress"
	"github.com/omark/quizdeck/internal/quiz"
	"github.com/omark/quizdeck/internal/router"
	"github.com/omark/quizdeck/internal/screen"
	"github.com/omark/quizdeck/internal/screens/home"
	"github.com/omark/quizdeck/internal/screens/welcome"
	"github.com/omark/quizdeck/internal/store"
	"github.com/omark/quizdeck/internal/ui/layout"
	"github.com/omark/quizdeck/internal/ui/theme"
)

// toastDuration is how long a footer toast stays visible.
const toastDuration = 3 * time.Second

// Options carries the dependencies the TUI runs on.
type Options struct {
	Bank     *content.Bank
	Progress *progress.Store
	Store    *store.Store

	// Resume is a resumable quiz snapshot found at startup, or nil.
	Resume *quiz.Snapshot
}

// clearToastMsg expires a toast. Gen guards against clearing a newer one.
type clearToastMsg struct {
	gen int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	width  int
	height int

	toast    string
	toastErr bool
	toastGen int
}

// newAppModel creates the root model. First launches get the welcome splash,
// returning users land straight on the home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Bank, opts.Progress, opts.Store, opts.Resume)
	}

	var initial screen.Screen
	if opts.Progress.Profile().TotalQuizzes == 0 && opts.Resume == nil {
		initial = welcome.New(homeFactory)
	} else {
		initial = homeFactory()
	}

	return AppModel{
		router: router.New(initial),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ToastMsg:
		m.toast = msg.Text
		m.toastErr = msg.IsError
		m.toastGen++
		gen := m.toastGen
		return m, tea.Tick(toastDuration, func(time.Time) tea.Msg {
			return clearToastMsg{gen: gen}
		})

	case clearToastMsg:
		if msg.gen == m.toastGen {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, m.toggleTheme()
		case "esc":
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				handled, cmd := h.HandleEsc()
				if handled {
					return m, cmd
				}
				if m.router.Depth() > 1 {
					return m, tea.Batch(cmd, func() tea.Msg { return router.PopScreenMsg{} })
				}
				return m, cmd
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// toggleTheme flips the palette and persists the choice.
func (m AppModel) toggleTheme() tea.Cmd {
	mode := theme.Toggle()

	next := progress.ThemeLight
	if mode == theme.ModeDark {
		next = progress.ThemeDark
	}
	m.opts.Progress.SetTheme(context.Background(), next)

	return screen.Toast(fmt.Sprintf("Theme: %s", next), false)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	p := m.opts.Progress.Profile()
	header := layout.RenderHeader(title, p.StudyStreak, p.TotalQuizzes, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.toast, m.toastErr, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Progress.Theme() == progress.ThemeLight {
		theme.Apply(theme.ModeLight)
	} else {
		theme.Apply(theme.ModeDark)
	}

	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/home"
	"github.com/mindfool/mindfool/internal/screens/services"
	sessionscreen "github.com/mindfool/mindfool/internal/screens/session"
	"github.com/mindfool/mindfool/internal/screens/welcome"
	"github.com/mindfool/mindfool/internal/ui/layout"
)

// Options configures the terminal app.
type Options struct {
	Services services.Services

	// StartMode, when set, opens that practice on top of the home screen.
	StartMode practice.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	svc    services.Services
	start  practice.Mode
	snap   services.Snapshot
	width  int
	height int
}

// newAppModel creates a new AppModel. The root is the home screen, or the
// introduction slides on first launch.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(rootScreen(opts)),
		svc:    opts.Services,
		start:  opts.StartMode,
	}
}

func rootScreen(opts Options) screen.Screen {
	svc := opts.Services
	homeFactory := func() screen.Screen { return home.New(svc) }
	if opts.StartMode != "" || svc.Settings == nil || svc.Settings.Get().OnboardingComplete {
		return homeFactory()
	}
	return welcome.New(homeFactory, func() {
		if err := svc.Settings.SetOnboardingComplete(context.Background(), true); err != nil && svc.Logger != nil {
			svc.Logger.Warn("failed to save onboarding state", "error", err)
		}
	})
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init()}
	if m.start != "" {
		cmds = append(cmds, router.Push(sessionscreen.New(m.svc, m.start)))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case home.LoadedMsg:
		m.snap = msg.Snapshot

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.abandon()
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// abandon discards an in-progress session so quitting never records one.
func (m AppModel) abandon() {
	if m.svc.Lifecycle != nil {
		m.svc.Lifecycle.Reset()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.snap.Info.CurrentStreak, m.snap.PracticedToday, m.width)

	var footerHints []layout.KeyHint
	if khp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(footerHints, khp.KeyHints()...)
		footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/history"
	"github.com/mindfool/mindfool/internal/screens/picker"
	"github.com/mindfool/mindfool/internal/screens/services"
	sessionscreen "github.com/mindfool/mindfool/internal/screens/session"
	settingsscreen "github.com/mindfool/mindfool/internal/screens/settings"
	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

// LoadedMsg carries fresh streak data. The app also uses it to update the
// header.
type LoadedMsg struct {
	Snapshot services.Snapshot
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	svc  services.Services
	menu components.Menu
	snap services.Snapshot
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(svc services.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

// Resume reloads streak data after a practice or settings change.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{Snapshot: h.svc.Load(context.Background())}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(LoadedMsg); ok {
		h.snap = msg.Snapshot
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.menuItems())
		h.menu.Selected = selected
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) defaultMode() practice.Mode {
	if h.svc.Settings != nil {
		return h.svc.Settings.Get().DefaultMode
	}
	return practice.DefaultMode
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	mode := h.defaultMode()
	return []components.MenuItem{
		{
			Label:  "Begin " + mode.DisplayName(),
			Detail: formatMinutes(practice.Lookup(mode).Duration.Minutes()),
			Action: func() tea.Cmd {
				return router.Push(sessionscreen.New(h.svc, mode))
			},
		},
		{Label: "Choose a practice", Action: func() tea.Cmd {
			return router.Push(picker.New(h.svc))
		}},
		{Label: "History", Action: func() tea.Cmd {
			return router.Push(history.New(h.svc))
		}},
		{Label: "Settings", Action: func() tea.Cmd {
			return router.Push(settingsscreen.New(h.svc))
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) View(width, height int) string {
	cw := min(width-4, 56)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Mindfool"))
	if !layout.IsCompactHeight(height + 6) {
		sections = append(sections, theme.Subtitle.Width(cw).Render("A few calm minutes a day"))
	}
	sections = append(sections, h.renderStreakCard(cw))
	if last := h.renderLastSession(cw); last != "" {
		sections = append(sections, last)
	}
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStreakCard(cw int) string {
	info := h.snap.Info
	big := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	today := "Not yet today"
	if h.snap.PracticedToday {
		today = "Practiced today"
	}

	body := big.Render(layout.StreakLabel(info.CurrentStreak)) + dim.Render(" current streak") + "\n" +
		dim.Render(fmt.Sprintf("Longest %s · %d sessions · %s",
			layout.StreakLabel(info.LongestStreak), info.TotalSessions, today))

	return theme.Card.Width(cw).Render(body)
}

func (h *HomeScreen) renderLastSession(cw int) string {
	rec := h.snap.Last
	if rec == nil {
		return ""
	}
	when := h.svc.Streaks.RelativeDay(rec.Timestamp)
	change := lipgloss.NewStyle().Foreground(theme.ToneColor(mood.ToneOf(rec.Delta))).
		Render(mood.ShortDelta(rec.Delta))

	body := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Last session  "+when) + "\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Render(rec.Mode.Icon()+"  "+rec.Mode.DisplayName()) +
		"  " + change
	return theme.Card.Width(cw).Render(body)
}

func formatMinutes(m float64) string {
	if m == float64(int(m)) {
		return fmt.Sprintf("%d min", int(m))
	}
	return fmt.Sprintf("%.1f min", m)
}

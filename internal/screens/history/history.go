package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/services"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

// maxRows caps how many sessions the screen lists.
const maxRows = 50

type historyLoadedMsg struct {
	Sessions []session.Record
	Err      error
}

// HistoryScreen displays past sessions, newest first.
type HistoryScreen struct {
	svc      services.Services
	sessions []session.Record
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc services.Services) *HistoryScreen {
	return &HistoryScreen{
		svc:      svc,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.svc.History == nil {
			return historyLoadedMsg{}
		}
		sessions, err := s.svc.History.Sessions(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		if len(sessions) > maxRows {
			sessions = sessions[:maxRows]
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Notes"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, router.Pop
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Take a calm minute!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.sessions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %s  %2d → %-2d ",
			prefix,
			rec.Timestamp.Format("Jan 02 15:04"),
			rec.Mode.DisplayName(),
			components.FormatClock(int(rec.Duration.Seconds())),
			rec.PreScore, rec.PostScore,
		)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		delta := lipgloss.NewStyle().Foreground(theme.ToneColor(mood.ToneOf(rec.Delta))).
			Render(mood.ShortDelta(rec.Delta))

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)+delta))
		b.WriteString("\n")

		if s.expanded[i] {
			notes := rec.Notes
			if notes == "" {
				notes = "No notes"
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("    "+notes)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

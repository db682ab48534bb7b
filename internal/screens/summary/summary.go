package summary

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
	"github.com/mindfool/mindfool/internal/share"
	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

type streakLoadedMsg struct {
	Snapshot services.Snapshot
}

// SummaryScreen shows the outcome of a finished practice.
type SummaryScreen struct {
	svc    services.Services
	record session.Record
	snap   *services.Snapshot
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for rec.
func New(svc services.Services, rec session.Record) *SummaryScreen {
	return &SummaryScreen{svc: svc, record: rec}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return streakLoadedMsg{Snapshot: s.svc.Load(context.Background())}
	}
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case streakLoadedMsg:
		s.snap = &msg.Snapshot
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, router.PopToRoot
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	rec := s.record
	tone := mood.ToneOf(rec.Delta)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(rec.Mode.Icon() + "  " + rec.Mode.DisplayName()))
	b.WriteString("\n\n")

	scores := fmt.Sprintf("%d  →  %d", rec.PreScore, rec.PostScore)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(scores))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.ToneColor(tone)).
		Render(mood.DescribeDelta(rec.Delta)))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Render("Duration " + components.FormatClock(int(rec.Duration.Seconds()))))
	b.WriteString("\n")

	if rec.Notes != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(56).
			Render("“" + rec.Notes + "”"))
		b.WriteString("\n")
	}

	if s.snap != nil && s.snap.Info.CurrentStreak > 0 {
		days := s.snap.Info.CurrentStreak
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
			Render(layout.StreakLabel(days) + " streak"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(share.StreakURL(days, rec.Mode)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String()))
}

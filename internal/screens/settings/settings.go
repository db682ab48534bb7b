package settings

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/services"
	"github.com/mindfool/mindfool/internal/settings"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

type row int

const (
	rowSkipPost row = iota
	rowHaptics
	rowSound
	rowDefaultMode
	rowCount
)

// SettingsScreen edits user preferences. Changes are saved immediately.
type SettingsScreen struct {
	svc      services.Services
	selected row
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(svc services.Services) *SettingsScreen {
	return &SettingsScreen{svc: svc}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter/←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) current() settings.Settings {
	if s.svc.Settings == nil {
		return settings.Defaults()
	}
	return s.svc.Settings.Get()
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.svc.Settings == nil {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "enter", " ", "space", "right", "l":
		s.change(1)
	case "left", "h":
		s.change(-1)
	}
	return s, nil
}

// change toggles the selected boolean or steps the default mode by dir.
func (s *SettingsScreen) change(dir int) {
	ctx := context.Background()
	cur := s.current()
	svc := s.svc.Settings

	var err error
	switch s.selected {
	case rowSkipPost:
		err = svc.SetSkipPostFeedback(ctx, !cur.SkipPostFeedback)
	case rowHaptics:
		err = svc.SetHapticFeedback(ctx, !cur.HapticFeedback)
	case rowSound:
		err = svc.SetSoundEffects(ctx, !cur.SoundEffects)
	case rowDefaultMode:
		err = svc.SetDefaultMode(ctx, stepMode(cur.DefaultMode, dir))
	}
	s.errMsg = ""
	if err != nil {
		s.errMsg = err.Error()
	}
}

func stepMode(m practice.Mode, dir int) practice.Mode {
	modes := practice.AllModes()
	idx := 0
	for i, candidate := range modes {
		if candidate == m {
			idx = i
			break
		}
	}
	n := len(modes)
	return modes[((idx+dir)%n+n)%n]
}

func (s *SettingsScreen) View(width, height int) string {
	cur := s.current()
	rows := []struct {
		label string
		value string
	}{
		{"Skip post-session check-in", onOff(cur.SkipPostFeedback)},
		{"Haptic feedback", onOff(cur.HapticFeedback)},
		{"Sound effects", onOff(cur.SoundEffects)},
		{"Default practice", "‹ " + cur.DefaultMode.DisplayName() + " ›"},
	}

	var b strings.Builder
	for i, r := range rows {
		style := theme.Unselected
		prefix := "    "
		if row(i) == s.selected {
			style = theme.Selected
			prefix = "  ▸ "
		}
		line := style.Render(prefix+padRight(r.label, 30)) +
			lipgloss.NewStyle().Foreground(theme.Accent).Render(r.value)
		b.WriteString(line)
		b.WriteString("\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}

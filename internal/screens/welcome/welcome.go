package welcome

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

// Slide is one page of the first-run introduction.
type Slide struct {
	Icon        string
	Title       string
	Description string
}

// Slides are shown in order on first launch.
var Slides = []Slide{
	{"🧘", "Welcome to Mindfool", "Your pocket mindfulness companion for daily calm and focus"},
	{"✨", "Simple & Quick", "Choose from 10 practices, each 2-5 minutes. Track your calm before and after."},
	{"🎯", "Build Your Streak", "Practice daily to build streaks and watch your wellbeing improve over time."},
}

// WelcomeScreen walks through the introduction slides, then replaces itself
// with the home screen.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	onDone       func()
	index        int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)
var _ screen.EscapeHandler = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by
// homeFactory. onDone runs once when the introduction is finished or skipped.
func New(homeFactory func() screen.Screen, onDone func()) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		onDone:      onDone,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) HandlesEscape() bool {
	return true
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	next := "Next"
	if w.isLast() {
		next = "Get started"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: next},
		{Key: "Esc", Description: "Skip"},
	}
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "enter", "right", "l", "space", " ":
		if w.isLast() {
			return w, w.transition()
		}
		w.index++
	case "left", "h":
		if w.index > 0 {
			w.index--
		}
	case "esc", "s":
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) isLast() bool {
	return w.index >= len(Slides)-1
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	if w.onDone != nil {
		w.onDone()
	}
	return router.Replace(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	slide := Slides[w.index]

	var sections []string
	if w.index == 0 {
		sections = append(sections, RenderBanner(width), "")
	}
	sections = append(sections,
		slide.Icon,
		"",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(slide.Title),
		"",
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(min(width-4, 48)).
			Align(lipgloss.Center).Render(slide.Description),
		"",
		renderDots(w.index),
	)

	content := lipgloss.NewStyle().Align(lipgloss.Center).Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderDots(active int) string {
	dots := make([]string, len(Slides))
	for i := range Slides {
		if i == active {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		} else {
			dots[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("○")
		}
	}
	return strings.Join(dots, " ") + theme.Hint.Render(fmt.Sprintf("  %d/%d", active+1, len(Slides)))
}

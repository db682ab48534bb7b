package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/mood"
)

// Color palette, soft and low-contrast for a calm screen.
var (
	Primary   = lipgloss.Color("#7C9CBF") // Dusk Blue
	Secondary = lipgloss.Color("#8FBCBB") // Sea Glass
	Accent    = lipgloss.Color("#E5C07B") // Candle
	Calm      = lipgloss.Color("#A3BE8C") // Sage
	Scattered = lipgloss.Color("#D08770") // Clay
	Error     = lipgloss.Color("#BF616A") // Rose
	Text      = lipgloss.Color("#ECEFF4") // Snow
	TextDim   = lipgloss.Color("#8A94A6") // Mist
	BgDark    = lipgloss.Color("#1B1F2A") // Night
	BgCard    = lipgloss.Color("#242A36") // Slate
	Border    = lipgloss.Color("#3B4252") // Stone
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// ToneColor maps a mood tone to its color.
func ToneColor(tone mood.Tone) color.Color {
	switch tone {
	case mood.ToneCalm:
		return Calm
	case mood.ToneScattered:
		return Scattered
	default:
		return Primary
	}
}

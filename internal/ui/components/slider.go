package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

// ScoreSlider selects a calm score on the mood scale.
type ScoreSlider struct {
	Prompt    string
	Value     int
	Submitted bool
}

// NewScoreSlider creates a slider starting at initial, clamped to the scale.
func NewScoreSlider(prompt string, initial int) ScoreSlider {
	return ScoreSlider{
		Prompt: prompt,
		Value:  clampScore(initial),
	}
}

// Update handles left/right adjustment, digit shortcuts and Enter to submit.
func (s ScoreSlider) Update(msg tea.Msg) (ScoreSlider, tea.Cmd) {
	if s.Submitted {
		return s, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key := kmsg.String(); key {
	case "left", "h", "down", "j":
		s.Value = clampScore(s.Value - 1)
	case "right", "l", "up", "k":
		s.Value = clampScore(s.Value + 1)
	case "home":
		s.Value = mood.MinScore
	case "end":
		s.Value = mood.MaxScore
	case "enter":
		s.Submitted = true
	default:
		if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
			s.Value = int(key[0] - '0')
		}
	}
	return s, nil
}

// View renders the prompt, the scale and the label for the current value.
func (s ScoreSlider) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(s.Prompt))
	b.WriteString("\n\n")

	cells := make([]string, 0, mood.MaxScore-mood.MinScore+1)
	for v := mood.MinScore; v <= mood.MaxScore; v++ {
		cell := fmt.Sprintf(" %d ", v)
		if v == 10 {
			cell = fmt.Sprintf("%d ", v)
		}
		if v == s.Value {
			cells = append(cells, lipgloss.NewStyle().
				Background(theme.Primary).
				Foreground(theme.BgDark).
				Bold(true).
				Render(cell))
		} else {
			cells = append(cells, lipgloss.NewStyle().Foreground(theme.TextDim).Render(cell))
		}
	}
	b.WriteString(strings.Join(cells, ""))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("scattered" + strings.Repeat(" ", 22) + "calm"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(mood.Label(s.Value)))
	return b.String()
}

func clampScore(v int) int {
	if v < mood.MinScore {
		return mood.MinScore
	}
	if v > mood.MaxScore {
		return mood.MaxScore
	}
	return v
}

package picker

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/services"
	sessionscreen "github.com/mindfool/mindfool/internal/screens/session"
	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/layout"
	"github.com/mindfool/mindfool/internal/ui/theme"
)

// PickerScreen lists every practice.
type PickerScreen struct {
	practices []practice.Practice
	menu      components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a new PickerScreen. Choosing a practice replaces the picker
// with the practice flow.
func New(svc services.Services) *PickerScreen {
	practices := practice.All()
	items := make([]components.MenuItem, 0, len(practices))
	for _, p := range practices {
		mode := p.Mode
		items = append(items, components.MenuItem{
			Label:  mode.Icon() + "  " + mode.DisplayName(),
			Detail: fmt.Sprintf("%d min", int(p.Duration.Minutes())),
			Action: func() tea.Cmd {
				return router.Replace(sessionscreen.New(svc, mode))
			},
		})
	}
	return &PickerScreen{practices: practices, menu: components.NewMenu(items)}
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Practices"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Begin"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

// Selected returns the highlighted practice.
func (p *PickerScreen) Selected() practice.Practice {
	return p.practices[p.menu.Selected]
}

func (p *PickerScreen) View(width, height int) string {
	desc := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(min(width-4, 56)).
		Render(p.Selected().Description)

	content := p.menu.View() + "\n" + desc
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

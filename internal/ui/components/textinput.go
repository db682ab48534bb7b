package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/mindfool/mindfool/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with a character counter.
type TextInput struct {
	Model textinput.Model
	Limit int
}

// NewTextInput creates a new focused text input limited to limit runes.
func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if limit > 0 {
		ti.CharLimit = limit
	}

	return TextInput{
		Model: ti,
		Limit: limit,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input with a used/limit counter.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.Limit > 0 {
		used := len([]rune(t.Model.Value()))
		view += "\n" + theme.Hint.Render(fmt.Sprintf("%d/%d", used, t.Limit))
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

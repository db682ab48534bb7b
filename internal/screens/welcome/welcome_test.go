package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int, *int) {
	factoryCalls, doneCalls := 0, 0
	w := New(func() screen.Screen {
		factoryCalls++
		return &stubScreen{}
	}, func() {
		doneCalls++
	})
	return w, &factoryCalls, &doneCalls
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSlidesAdvance(t *testing.T) {
	w, factory, _ := newTestWelcome()

	if !strings.Contains(w.View(80, 24), "Welcome to Mindfool") {
		t.Error("first slide should be the welcome")
	}

	w.Update(enter())
	if !strings.Contains(w.View(80, 24), "Simple & Quick") {
		t.Error("second slide should follow Enter")
	}

	w.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if w.index != 0 {
		t.Errorf("index after left = %d, want 0", w.index)
	}
	if *factory != 0 {
		t.Error("home should not be built before the last slide")
	}
}

func TestLastSlideTransitions(t *testing.T) {
	w, factory, done := newTestWelcome()

	var cmd tea.Cmd
	for i := 0; i < len(Slides); i++ {
		_, cmd = w.Update(enter())
	}
	if cmd == nil {
		t.Fatal("expected a transition command on the last slide")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen.Title() != "Home" {
		t.Errorf("replacement title = %q, want Home", replace.Screen.Title())
	}
	if *factory != 1 || *done != 1 {
		t.Errorf("factory=%d done=%d, want 1 and 1", *factory, *done)
	}
}

func TestSkipTransitionsOnce(t *testing.T) {
	w, factory, done := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected skip to transition")
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd != nil {
		t.Error("second transition should be a no-op")
	}
	if *factory != 1 || *done != 1 {
		t.Errorf("factory=%d done=%d, want 1 and 1", *factory, *done)
	}
}

func TestKeyHintsOnLastSlide(t *testing.T) {
	w, _, _ := newTestWelcome()
	w.index = len(Slides) - 1
	if got := w.KeyHints()[0].Description; got != "Get started" {
		t.Errorf("hint = %q, want Get started", got)
	}
}

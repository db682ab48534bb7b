package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mindfool/mindfool/internal/mood"
	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screen"
	"github.com/mindfool/mindfool/internal/screens/services"
	"github.com/mindfool/mindfool/internal/screens/summary"
	sess "github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/ui/components"
	"github.com/mindfool/mindfool/internal/ui/layout"
)

// SessionScreen drives one practice from pre-score to reflection.
type SessionScreen struct {
	svc      services.Services
	practice practice.Practice

	phase       phase
	pre         components.ScoreSlider
	post        components.ScoreSlider
	notes       components.TextInput
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)

// New creates a practice flow for mode. An empty mode uses the default
// mode from settings.
func New(svc services.Services, mode practice.Mode) *SessionScreen {
	if mode == "" && svc.Settings != nil {
		mode = svc.Settings.Get().DefaultMode
	}
	if mode == "" {
		mode = practice.DefaultMode
	}
	return &SessionScreen{
		svc:      svc,
		practice: practice.Lookup(mode),
		phase:    phasePre,
		pre:      components.NewScoreSlider("How calm do you feel right now?", mood.NeutralScore),
		notes:    components.NewTextInput("Anything you noticed? (optional)", sess.MaxNotesLength),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	return nil
}

func (s *SessionScreen) Title() string {
	return s.practice.Mode.DisplayName()
}

// HandlesEscape keeps Esc inside the flow so an active session is never
// abandoned by accident.
func (s *SessionScreen) HandlesEscape() bool {
	return s.phase != phasePre
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End without saving"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.phase {
	case phasePre, phasePost:
		return []layout.KeyHint{
			{Key: "←→", Description: "Adjust"},
			{Key: "0-9", Description: "Pick"},
			{Key: "Enter", Description: "Confirm"},
		}
	case phasePractice:
		hints := []layout.KeyHint{{Key: "Esc", Description: "Stop"}}
		if s.canFinish() {
			hints = append([]layout.KeyHint{{Key: "Enter", Description: "Finish"}}, hints...)
		}
		return hints
	case phaseReflect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Skip notes"},
		}
	}
	return nil
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseReflect {
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.svc.Lifecycle.Reset()
			return s, router.Pop
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch s.phase {
	case phasePre:
		s.pre, _ = s.pre.Update(msg)
		if s.pre.Submitted {
			return s.begin()
		}

	case phasePractice:
		switch key {
		case "esc":
			s.confirmQuit = true
		case "enter":
			if s.canFinish() {
				return s.finishPractice()
			}
		}

	case phasePost:
		if key == "esc" {
			s.confirmQuit = true
			return s, nil
		}
		s.post, _ = s.post.Update(msg)
		if s.post.Submitted {
			s.phase = phaseReflect
			return s, s.notes.Init()
		}

	case phaseReflect:
		switch key {
		case "enter":
			return s.complete(s.post.Value, s.notes.Value())
		case "esc":
			return s.complete(s.post.Value, "")
		}
		var cmd tea.Cmd
		s.notes, cmd = s.notes.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) begin() (screen.Screen, tea.Cmd) {
	if err := s.svc.Lifecycle.Start(s.pre.Value, s.practice.Mode); err != nil {
		s.errMsg = err.Error()
		s.pre.Submitted = false
		return s, nil
	}
	s.errMsg = ""
	s.phase = phasePractice
	return s, tick()
}

func (s *SessionScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.phase != phasePractice {
		return s, nil
	}
	if s.practice.Remaining(s.elapsed()) <= 0 {
		return s.finishPractice()
	}
	return s, tick()
}

// finishPractice moves to post-score, or ends immediately with the
// pre-score when post-session feedback is skipped.
func (s *SessionScreen) finishPractice() (screen.Screen, tea.Cmd) {
	if s.svc.Settings != nil && s.svc.Settings.Get().SkipPostFeedback {
		return s.complete(s.pre.Value, "")
	}
	s.phase = phasePost
	s.post = components.NewScoreSlider("How calm do you feel now?", s.pre.Value)
	return s, nil
}

func (s *SessionScreen) complete(postScore int, notes string) (screen.Screen, tea.Cmd) {
	rec, err := s.svc.Lifecycle.End(context.Background(), postScore, notes)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.svc.Lifecycle.Reset()
	return s, router.Replace(summary.New(s.svc, *rec))
}

func (s *SessionScreen) elapsed() time.Duration {
	return s.svc.Lifecycle.Elapsed()
}

func (s *SessionScreen) canFinish() bool {
	return s.phase == phasePractice && s.practice.CanFinish(s.elapsed())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mindfool/mindfool/internal/history"
	"github.com/mindfool/mindfool/internal/practice"
	"github.com/mindfool/mindfool/internal/router"
	"github.com/mindfool/mindfool/internal/screens/home"
	"github.com/mindfool/mindfool/internal/screens/services"
	"github.com/mindfool/mindfool/internal/session"
	"github.com/mindfool/mindfool/internal/settings"
	"github.com/mindfool/mindfool/internal/streak"
)

func testOptions(mode practice.Mode) Options {
	opts := firstRunOptions(mode)
	_ = opts.Services.Settings.SetOnboardingComplete(context.Background(), true)
	return opts
}

func firstRunOptions(mode practice.Mode) Options {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	clock := session.ClockFunc(func() time.Time { return now })
	hist := history.NewMemory()
	return Options{
		Services: services.Services{
			Lifecycle: session.NewLifecycle(session.Config{Clock: clock, Recorder: hist}),
			History:   hist,
			Streaks:   streak.NewEngine(streak.Config{Clock: clock, Location: time.UTC}),
			Settings:  settings.NewService(nil, nil),
		},
		StartMode: mode,
	}
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestStartModePushesPractice(t *testing.T) {
	m := newAppModel(testOptions(practice.ModeBodyScan))
	batch, ok := m.Init()().(tea.BatchMsg)
	if !ok {
		t.Fatal("expected batched init commands")
	}

	var pushed bool
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if push, ok := cmd().(router.PushScreenMsg); ok {
			m, _ = update(m, push)
			pushed = true
		}
	}
	if !pushed {
		t.Fatal("expected a push of the practice flow")
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
	if m.router.Active().Title() != "Body Scan" {
		t.Errorf("active = %q, want Body Scan", m.router.Active().Title())
	}
}

func TestEscPopsScreens(t *testing.T) {
	m := newAppModel(testOptions(""))
	m, _ = update(m, router.PushScreenMsg{Screen: home.New(m.svc)})

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscAtRootDoesNothing(t *testing.T) {
	m := newAppModel(testOptions(""))
	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command at root")
	}
}

func TestCtrlCAbandonsActiveSession(t *testing.T) {
	opts := testOptions("")
	m := newAppModel(opts)
	if err := opts.Services.Lifecycle.Start(4, practice.ModeBoxBreathing); err != nil {
		t.Fatalf("start: %v", err)
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit")
	}
	if opts.Services.Lifecycle.State() != session.StateIdle {
		t.Errorf("state = %v, want idle", opts.Services.Lifecycle.State())
	}
	recs, _ := opts.Services.History.Sessions(context.Background())
	if len(recs) != 0 {
		t.Errorf("recorded %d sessions, want 0", len(recs))
	}
}

func TestViewRendersHeaderAndFooter(t *testing.T) {
	m := newAppModel(testOptions(""))
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	m, _ = update(m, m.router.Active().Init()())

	content := m.render()
	for _, want := range []string{"Mindfool", "Home", "0 days", "Ctrl+C"} {
		if !strings.Contains(content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewTooSmall(t *testing.T) {
	m := newAppModel(testOptions(""))
	m, _ = update(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}

func TestFirstRunShowsIntroduction(t *testing.T) {
	opts := firstRunOptions("")
	m := newAppModel(opts)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if !strings.Contains(m.render(), "Welcome to Mindfool") {
		t.Fatal("expected the introduction on first run")
	}

	_, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected skip to replace the introduction")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	m, _ = update(m, replace)
	if m.router.Active().Title() != "Home" {
		t.Errorf("active = %q, want Home", m.router.Active().Title())
	}
	if !opts.Services.Settings.Get().OnboardingComplete {
		t.Error("onboarding should be marked complete")
	}
	if m.router.Depth() != 1 {
		t.Errorf("depth = %d, want 1", m.router.Depth())
	}
}

func TestStartModeSkipsIntroduction(t *testing.T) {
	m := newAppModel(firstRunOptions(practice.ModeBoxBreathing))
	if m.router.Active().Title() != "Home" {
		t.Errorf("root = %q, want Home", m.router.Active().Title())
	}
}

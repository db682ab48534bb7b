package practice

import (
	"testing"
	"time"
)

func TestAllModesHaveCatalogEntries(t *testing.T) {
	modes := AllModes()
	if len(modes) != 10 {
		t.Fatalf("AllModes() returned %d modes, want 10", len(modes))
	}
	for _, m := range modes {
		if _, ok := catalog[m]; !ok {
			t.Errorf("mode %q missing from catalog", m)
		}
		if m.DisplayName() == string(m) {
			t.Errorf("mode %q has no display name", m)
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", DefaultMode, false},
		{"box-breathing", ModeBoxBreathing, false},
		{"478-breathing", Mode478Breathing, false},
		{"mindful-eating", ModeMindfulEating, false},
		{"gratitude-journal", "", true},
		{"Box-Breathing", "", true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMode(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMode(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLookupDurations(t *testing.T) {
	tests := []struct {
		mode    Mode
		want    time.Duration
		wantMin time.Duration
	}{
		{ModeBalloonBreathing, 3 * time.Minute, 10 * time.Second},
		{ModeBodyScan, 5 * time.Minute, 30 * time.Second},
		{ModeLovingKindness, 5 * time.Minute, 30 * time.Second},
		{ModeMindfulEating, 20 * time.Minute, time.Minute},
		{Mode("unknown"), DefaultDuration, DefaultMinDuration},
	}

	for _, tt := range tests {
		p := Lookup(tt.mode)
		if p.Mode != tt.mode {
			t.Errorf("Lookup(%q).Mode = %q", tt.mode, p.Mode)
		}
		if p.Duration != tt.want {
			t.Errorf("Lookup(%q).Duration = %v, want %v", tt.mode, p.Duration, tt.want)
		}
		if p.MinDuration != tt.wantMin {
			t.Errorf("Lookup(%q).MinDuration = %v, want %v", tt.mode, p.MinDuration, tt.wantMin)
		}
	}
}

func TestCanFinishAndRemaining(t *testing.T) {
	p := Lookup(ModeBoxBreathing)

	if p.CanFinish(9 * time.Second) {
		t.Error("expected CanFinish false before MinDuration")
	}
	if !p.CanFinish(10 * time.Second) {
		t.Error("expected CanFinish true at MinDuration")
	}
	if got := p.Remaining(time.Minute); got != 2*time.Minute {
		t.Errorf("Remaining(1m) = %v, want 2m", got)
	}
	if got := p.Remaining(10 * time.Minute); got != 0 {
		t.Errorf("Remaining past duration = %v, want 0", got)
	}
}

func TestPatternPhaseAt_BoxBreathing(t *testing.T) {
	pat := Lookup(ModeBoxBreathing).Pattern
	if pat.CycleLength() != 16*time.Second {
		t.Fatalf("CycleLength = %v, want 16s", pat.CycleLength())
	}

	tests := []struct {
		elapsed  time.Duration
		wantCue  Cue
		wantLeft time.Duration
	}{
		{0, CueInhale, 4 * time.Second},
		{3 * time.Second, CueInhale, time.Second},
		{4 * time.Second, CueHold, 4 * time.Second},
		{9 * time.Second, CueExhale, 3 * time.Second},
		{15 * time.Second, CueHold, time.Second},
		{16 * time.Second, CueInhale, 4 * time.Second},
		{-time.Second, CueInhale, 4 * time.Second},
	}

	for _, tt := range tests {
		ph, left := pat.PhaseAt(tt.elapsed)
		if ph.Cue != tt.wantCue || left != tt.wantLeft {
			t.Errorf("PhaseAt(%v) = (%s, %v), want (%s, %v)",
				tt.elapsed, ph.Cue, left, tt.wantCue, tt.wantLeft)
		}
	}
}

func TestPattern478Cycles(t *testing.T) {
	pat := Lookup(Mode478Breathing).Pattern
	if got := pat.Cycles(3 * time.Minute); got != 9 {
		t.Errorf("Cycles(3m) = %d, want 9", got)
	}
	if got := pat.Cycles(0); got != 0 {
		t.Errorf("Cycles(0) = %d, want 0", got)
	}
}

func TestPromptAt(t *testing.T) {
	p := Lookup(ModeMindfulEating)
	if got := p.PromptAt(0); got != "Chew slowly and thoroughly" {
		t.Errorf("PromptAt(0) = %q", got)
	}
	if got := p.PromptAt(150 * time.Second); got != "Notice the flavors and textures" {
		t.Errorf("PromptAt(150s) = %q", got)
	}
	// Rotation wraps after the last prompt.
	if got := p.PromptAt(8 * 150 * time.Second); got != "Chew slowly and thoroughly" {
		t.Errorf("PromptAt(wrap) = %q", got)
	}
	if got := Lookup(ModeNumberBubbles).PromptAt(time.Minute); got != "" {
		t.Errorf("PromptAt for practice without prompts = %q, want empty", got)
	}
}

package practice

import "time"

// Default timings shared by most practices.
const (
	DefaultDuration    = 3 * time.Minute
	DefaultMinDuration = 10 * time.Second
)

// Practice describes how a mode is run: how long it lasts, how soon it may be
// finished early, and what cues are shown while it runs.
type Practice struct {
	Mode        Mode
	Description string

	// Duration is the planned length of the practice.
	Duration time.Duration

	// MinDuration is the elapsed time after which the practice may be
	// completed before Duration runs out.
	MinDuration time.Duration

	// Pattern is the repeating breath cue, nil for practices without one.
	Pattern *Pattern

	// Prompts rotate every PromptInterval while the practice runs.
	Prompts        []string
	PromptInterval time.Duration
}

var catalog = map[Mode]Practice{
	ModeBalloonBreathing: {
		Description: "Inflate and deflate an imaginary balloon with slow, even breaths.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Pattern: &Pattern{Phases: []Phase{
			{Cue: CueInhale, Length: 4 * time.Second},
			{Cue: CueExhale, Length: 4 * time.Second},
		}},
	},
	ModeWalkingMeditation: {
		Description: "Count your steps and notice each foot touching the ground.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Prompts: []string{
			"Feel your heel touch the ground",
			"Notice the roll through your foot",
			"Feel the lift of your toes",
			"Count each step up to ten, then start again",
		},
		PromptInterval: 30 * time.Second,
	},
	ModeNumberBubbles: {
		Description: "Pop the numbers in order and let stray thoughts float past.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
	},
	ModeGongListening: {
		Description: "Listen to the gong until the last trace of sound fades.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Prompts: []string{
			"Listen deeply to the silence",
			"Follow the sound until it disappears",
		},
		PromptInterval: 6 * time.Second,
	},
	ModeCountingLadder: {
		Description: "Climb a ladder of counted breaths, one rung per exhale.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Pattern: &Pattern{Phases: []Phase{
			{Cue: CueInhale, Length: 4 * time.Second},
			{Cue: CueExhale, Length: 6 * time.Second},
		}},
	},
	ModeBoxBreathing: {
		Description: "Four equal sides: in, hold, out, hold.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Pattern: &Pattern{Phases: []Phase{
			{Cue: CueInhale, Length: 4 * time.Second},
			{Cue: CueHold, Length: 4 * time.Second},
			{Cue: CueExhale, Length: 4 * time.Second},
			{Cue: CueHold, Length: 4 * time.Second},
		}},
	},
	Mode478Breathing: {
		Description: "Breathe in for 4, hold for 7, breathe out for 8.",
		Duration:    DefaultDuration,
		MinDuration: DefaultMinDuration,
		Pattern: &Pattern{Phases: []Phase{
			{Cue: CueInhale, Length: 4 * time.Second},
			{Cue: CueHold, Length: 7 * time.Second},
			{Cue: CueExhale, Length: 8 * time.Second},
		}},
	},
	ModeBodyScan: {
		Description: "Move your attention slowly from head to toe.",
		Duration:    5 * time.Minute,
		MinDuration: 30 * time.Second,
		Prompts: []string{
			"Top of your head",
			"Forehead, eyes and jaw",
			"Neck and shoulders",
			"Arms and hands",
			"Chest and belly",
			"Back",
			"Hips and legs",
			"Feet and toes",
		},
		PromptInterval: 30 * time.Second,
	},
	ModeLovingKindness: {
		Description: "Offer kind wishes to yourself and, in widening circles, to others.",
		Duration:    5 * time.Minute,
		MinDuration: 30 * time.Second,
		Prompts: []string{
			"Yourself",
			"Someone you love",
			"A neutral person",
			"Someone difficult",
			"All beings",
		},
		PromptInterval: time.Minute,
	},
	ModeMindfulEating: {
		Description: "Eat one meal slowly, noticing every bite.",
		Duration:    20 * time.Minute,
		MinDuration: time.Minute,
		Prompts: []string{
			"Chew slowly and thoroughly",
			"Notice the flavors and textures",
			"Put your utensils down between bites",
			"Are you still hungry?",
			"Appreciate where your food came from",
			"Notice the colors on your plate",
			"Feel gratitude for this meal",
			"Are you eating mindfully?",
		},
		PromptInterval: 150 * time.Second,
	},
}

// Lookup returns the practice definition for a mode. Unknown modes fall back
// to the default timings with no cues.
func Lookup(m Mode) Practice {
	p, ok := catalog[m]
	if !ok {
		return Practice{Mode: m, Duration: DefaultDuration, MinDuration: DefaultMinDuration}
	}
	p.Mode = m
	return p
}

// All returns every practice in menu order.
func All() []Practice {
	modes := AllModes()
	out := make([]Practice, 0, len(modes))
	for _, m := range modes {
		out = append(out, Lookup(m))
	}
	return out
}

// CanFinish reports whether a practice that has run for elapsed may be
// completed by the user.
func (p Practice) CanFinish(elapsed time.Duration) bool {
	return elapsed >= p.MinDuration
}

// Remaining returns the time left before the planned duration is reached,
// never negative.
func (p Practice) Remaining(elapsed time.Duration) time.Duration {
	if elapsed >= p.Duration {
		return 0
	}
	return p.Duration - elapsed
}

// PromptAt returns the rotating prompt shown at elapsed, or "" when the
// practice has none.
func (p Practice) PromptAt(elapsed time.Duration) string {
	if len(p.Prompts) == 0 {
		return ""
	}
	if p.PromptInterval <= 0 || elapsed < 0 {
		return p.Prompts[0]
	}
	idx := int(elapsed/p.PromptInterval) % len(p.Prompts)
	return p.Prompts[idx]
}

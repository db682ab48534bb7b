package practice

import "time"

// Cue is the instruction shown during one phase of a breath pattern.
type Cue string

const (
	CueInhale Cue = "inhale"
	CueHold   Cue = "hold"
	CueExhale Cue = "exhale"
)

// Label returns the on-screen wording for the cue.
func (c Cue) Label() string {
	switch c {
	case CueInhale:
		return "Breathe in"
	case CueHold:
		return "Hold"
	case CueExhale:
		return "Breathe out"
	default:
		return string(c)
	}
}

// Phase is one timed step of a breath pattern.
type Phase struct {
	Cue    Cue
	Length time.Duration
}

// Pattern is a cycle of phases repeated for the length of a practice.
type Pattern struct {
	Phases []Phase
}

// CycleLength returns the duration of one full cycle.
func (p *Pattern) CycleLength() time.Duration {
	var total time.Duration
	for _, ph := range p.Phases {
		total += ph.Length
	}
	return total
}

// PhaseAt returns the phase active at elapsed and the time left in it.
// Negative elapsed is treated as the start of the pattern.
func (p *Pattern) PhaseAt(elapsed time.Duration) (Phase, time.Duration) {
	cycle := p.CycleLength()
	if cycle <= 0 {
		return Phase{}, 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	offset := elapsed % cycle
	for _, ph := range p.Phases {
		if offset < ph.Length {
			return ph, ph.Length - offset
		}
		offset -= ph.Length
	}
	// Unreachable for positive lengths; fall back to the first phase.
	return p.Phases[0], p.Phases[0].Length
}

// Cycles returns the number of complete cycles that fit in elapsed.
func (p *Pattern) Cycles(elapsed time.Duration) int {
	cycle := p.CycleLength()
	if cycle <= 0 || elapsed <= 0 {
		return 0
	}
	return int(elapsed / cycle)
}

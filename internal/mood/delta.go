package mood

import "fmt"

// Tone classifies a delta for display.
type Tone int

const (
	ToneScattered Tone = iota // moved toward scattered
	ToneSteady                // unchanged or slightly calmer
	ToneCalm                  // two or more points calmer
)

func (t Tone) String() string {
	switch t {
	case ToneCalm:
		return "calm"
	case ToneSteady:
		return "steady"
	default:
		return "scattered"
	}
}

// Delta returns post - pre.
func Delta(pre, post int) int {
	return post - pre
}

// ToneOf returns the display tone for a delta.
func ToneOf(delta int) Tone {
	switch {
	case delta >= 2:
		return ToneCalm
	case delta >= 0:
		return ToneSteady
	default:
		return ToneScattered
	}
}

// DescribeDelta returns the message shown after a session.
func DescribeDelta(delta int) string {
	switch {
	case delta >= 4:
		return fmt.Sprintf("Wow! You feel %d points calmer!", delta)
	case delta >= 2:
		return fmt.Sprintf("You feel %d points calmer!", delta)
	case delta == 1:
		return "You feel a bit calmer"
	case delta == 0:
		return "Your calm stayed the same"
	case delta == -1:
		return "You feel a bit more scattered"
	default:
		return fmt.Sprintf("You feel %d points more scattered", -delta)
	}
}

// ShortDelta returns a compact form for lists, e.g. "+3 calmer".
func ShortDelta(delta int) string {
	switch {
	case delta > 0:
		return fmt.Sprintf("+%d calmer", delta)
	case delta == 0:
		return "No change"
	default:
		return fmt.Sprintf("%d more scattered", delta)
	}
}

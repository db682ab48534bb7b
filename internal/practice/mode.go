package practice

import "fmt"

// Mode identifies the kind of practice a session runs.
type Mode string

const (
	ModeBalloonBreathing  Mode = "balloon-breathing"
	ModeWalkingMeditation Mode = "walking-meditation"
	ModeNumberBubbles     Mode = "number-bubbles"
	ModeGongListening     Mode = "gong-listening"
	ModeCountingLadder    Mode = "counting-ladder"
	ModeBoxBreathing      Mode = "box-breathing"
	Mode478Breathing      Mode = "478-breathing"
	ModeBodyScan          Mode = "body-scan"
	ModeLovingKindness    Mode = "loving-kindness"
	ModeMindfulEating     Mode = "mindful-eating"
)

// DefaultMode is used when a session is started without an explicit mode.
const DefaultMode = ModeBalloonBreathing

// AllModes returns all modes in menu order.
func AllModes() []Mode {
	return []Mode{
		ModeBalloonBreathing,
		ModeBoxBreathing,
		Mode478Breathing,
		ModeCountingLadder,
		ModeWalkingMeditation,
		ModeNumberBubbles,
		ModeGongListening,
		ModeBodyScan,
		ModeLovingKindness,
		ModeMindfulEating,
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	for _, known := range AllModes() {
		if m == known {
			return true
		}
	}
	return false
}

// ParseMode converts a string into a Mode. The empty string yields DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown practice %q", s)
	}
	return m, nil
}

// DisplayName returns a human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeBalloonBreathing:
		return "Balloon Breathing"
	case ModeWalkingMeditation:
		return "Walking Meditation"
	case ModeNumberBubbles:
		return "Number Bubbles"
	case ModeGongListening:
		return "Gong Listening"
	case ModeCountingLadder:
		return "Counting Ladder"
	case ModeBoxBreathing:
		return "Box Breathing"
	case Mode478Breathing:
		return "4-7-8 Breathing"
	case ModeBodyScan:
		return "Body Scan"
	case ModeLovingKindness:
		return "Loving Kindness"
	case ModeMindfulEating:
		return "Mindful Eating"
	default:
		return string(m)
	}
}

// Icon returns the display icon for the mode.
func (m Mode) Icon() string {
	switch m {
	case ModeBalloonBreathing:
		return "🎈"
	case ModeWalkingMeditation:
		return "👣"
	case ModeNumberBubbles:
		return "🫧"
	case ModeGongListening:
		return "🔔"
	case ModeCountingLadder:
		return "🪜"
	case ModeBoxBreathing:
		return "⬜"
	case Mode478Breathing:
		return "🌙"
	case ModeBodyScan:
		return "🧘"
	case ModeLovingKindness:
		return "💗"
	case ModeMindfulEating:
		return "🍎"
	default:
		return "✦"
	}
}

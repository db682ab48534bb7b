// Package mood models the self-reported calm/scattered scale used before and
// after every practice.
//
// The scale runs from MinScore (extremely scattered) to MaxScore (very calm),
// so a positive delta between the post- and pre-session scores means the
// session moved the user toward calm.
package mood

import (
	"errors"
	"fmt"
)

const (
	MinScore = 0
	MaxScore = 10

	// NeutralScore is the midpoint used when no score has been chosen yet.
	NeutralScore = 5
)

// ErrScoreOutOfRange is returned for scores outside [MinScore, MaxScore].
var ErrScoreOutOfRange = errors.New("score out of range")

var labels = [MaxScore + 1]string{
	"Extremely scattered",
	"Very scattered",
	"Very scattered",
	"Scattered",
	"Scattered",
	"Somewhat scattered",
	"Somewhat scattered",
	"Calm",
	"Calm",
	"Very calm",
	"Very calm",
}

// Validate returns an error wrapping ErrScoreOutOfRange when score is not on
// the scale.
func Validate(score int) error {
	if score < MinScore || score > MaxScore {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrScoreOutOfRange, score, MinScore, MaxScore)
	}
	return nil
}

// Label returns the wording for a score, or "" if the score is off the scale.
func Label(score int) string {
	if Validate(score) != nil {
		return ""
	}
	return labels[score]
}

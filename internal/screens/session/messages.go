package session

import "time"

// tickMsg is sent every second while a practice is running.
type tickMsg time.Time

// phase is a step of the practice flow.
type phase int

const (
	phasePre phase = iota
	phasePractice
	phasePost
	phaseReflect
)

// Package streak derives practice streaks from session history.
//
// Sessions are bucketed by local calendar date: several sessions on one day
// count as a single day, and a streak is a run of consecutive days with at
// least one session. Calculate and PracticedToday always use the same
// location so the two never disagree around midnight.
package streak

import (
	"sort"
	"time"

	"cloud.google.com/go/civil"

	"github.com/mindfool/mindfool/internal/session"
)

// Info summarizes a session history. It is recomputed on demand and never
// stored.
type Info struct {
	CurrentStreak int
	LongestStreak int
	TotalSessions int

	// LastSessionDate is the timestamp of the newest record, nil when there
	// is no history.
	LastSessionDate *time.Time
}

// Config wires an Engine. Nil fields get defaults.
type Config struct {
	Clock session.Clock

	// Location decides which calendar day a timestamp belongs to. Defaults
	// to time.Local.
	Location *time.Location
}

// Engine evaluates streaks against an injected clock and location.
type Engine struct {
	clock session.Clock
	loc   *time.Location
}

// NewEngine creates an Engine.
func NewEngine(cfg Config) *Engine {
	if cfg.Clock == nil {
		cfg.Clock = session.SystemClock
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &Engine{clock: cfg.Clock, loc: cfg.Location}
}

// Calculate computes streak information for records in any order.
func (e *Engine) Calculate(records []session.Record) Info {
	return Calculate(records, e.clock.Now().In(e.loc))
}

// PracticedToday reports whether any record falls on today's date.
func (e *Engine) PracticedToday(records []session.Record) bool {
	return PracticedToday(records, e.clock.Now().In(e.loc))
}

// Today returns the engine's current calendar date.
func (e *Engine) Today() civil.Date {
	return civil.DateOf(e.clock.Now().In(e.loc))
}

// Calculate computes streak information as of now. Timestamps are bucketed
// into calendar days in now's location. The records slice is not modified.
func Calculate(records []session.Record, now time.Time) Info {
	if len(records) == 0 {
		return Info{}
	}

	loc := now.Location()
	info := Info{TotalSessions: len(records)}

	last := records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}
	info.LastSessionDate = &last

	days := daySet(records, loc)
	info.CurrentStreak = currentStreak(days, civil.DateOf(now))
	info.LongestStreak = longestStreak(days)
	return info
}

// PracticedToday reports whether any record falls on now's calendar date,
// using now's location.
func PracticedToday(records []session.Record, now time.Time) bool {
	today := civil.DateOf(now)
	loc := now.Location()
	for _, r := range records {
		if civil.DateOf(r.Timestamp.In(loc)) == today {
			return true
		}
	}
	return false
}

// DistinctDays returns the calendar days with at least one session, newest
// first.
func DistinctDays(records []session.Record, loc *time.Location) []civil.Date {
	return sortedDesc(daySet(records, loc))
}

func daySet(records []session.Record, loc *time.Location) map[civil.Date]bool {
	days := make(map[civil.Date]bool, len(records))
	for _, r := range records {
		days[civil.DateOf(r.Timestamp.In(loc))] = true
	}
	return days
}

func sortedDesc(days map[civil.Date]bool) []civil.Date {
	out := make([]civil.Date, 0, len(days))
	for d := range days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].After(out[j]) })
	return out
}

// currentStreak counts consecutive days ending today, or ending yesterday if
// today has no session yet.
func currentStreak(days map[civil.Date]bool, today civil.Date) int {
	anchor := today
	if !days[anchor] {
		anchor = today.AddDays(-1)
		if !days[anchor] {
			return 0
		}
	}

	n := 0
	for d := anchor; days[d]; d = d.AddDays(-1) {
		n++
	}
	return n
}

// longestStreak returns the longest run of consecutive days.
func longestStreak(days map[civil.Date]bool) int {
	sorted := sortedDesc(days)
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].DaysSince(sorted[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

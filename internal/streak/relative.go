package streak

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// DaysAgo returns how many calendar days ts lies before now, using now's
// location. Timestamps later today or in the future count as 0.
func DaysAgo(ts, now time.Time) int {
	today := civil.DateOf(now)
	day := civil.DateOf(ts.In(now.Location()))
	if n := today.DaysSince(day); n > 0 {
		return n
	}
	return 0
}

// RelativeDay renders DaysAgo as "Today", "Yesterday" or "N days ago".
func RelativeDay(ts, now time.Time) string {
	switch n := DaysAgo(ts, now); n {
	case 0:
		return "Today"
	case 1:
		return "Yesterday"
	default:
		return fmt.Sprintf("%d days ago", n)
	}
}

// RelativeDay is the Engine's clock and location applied to RelativeDay.
func (e *Engine) RelativeDay(ts time.Time) string {
	return RelativeDay(ts, e.clock.Now().In(e.loc))
}

package streak

import (
	"testing"
	"time"
)

func TestRelativeDay(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"earlier today", now.Add(-10 * time.Minute), "Today"},
		{"future", now.Add(2 * time.Hour), "Today"},
		{"an hour ago crosses midnight", now.Add(-time.Hour), "Yesterday"},
		{"two days", time.Date(2024, 3, 13, 23, 0, 0, 0, time.UTC), "2 days ago"},
		{"across month", time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC), "15 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeDay(tt.ts, now); got != tt.want {
				t.Errorf("RelativeDay = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRelativeDayUsesNowLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, est)
	// 03:00 UTC on the 15th is still the 14th in EST.
	ts := time.Date(2024, 3, 15, 3, 0, 0, 0, time.UTC)

	if got := DaysAgo(ts, now); got != 1 {
		t.Errorf("DaysAgo = %d, want 1", got)
	}
}

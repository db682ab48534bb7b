package share

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindfool/mindfool/internal/practice"
)

func TestDeepLink(t *testing.T) {
	assert.Equal(t, "mindfool://box-breathing", DeepLink(practice.ModeBoxBreathing, true))
	assert.Equal(t, "https://app.mindfool.games/box-breathing", DeepLink(practice.ModeBoxBreathing, false))
}

func TestStreakURL(t *testing.T) {
	tests := []struct {
		days int
		mode practice.Mode
		want string
	}{
		{7, "", "https://mindfool.games/share/streak?days=7"},
		{3, practice.Mode478Breathing, "https://mindfool.games/share/streak?days=3&practice=478-breathing"},
		{0, practice.ModeBodyScan, "https://mindfool.games/share/streak?days=0&practice=body-scan"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StreakURL(tt.days, tt.mode))
	}
}

func TestStreakContent(t *testing.T) {
	c := StreakContent(5, practice.Mode478Breathing)
	assert.Equal(t, "5 Day Mindfulness Streak!", c.Title)
	assert.Equal(t,
		"I've maintained a 5 day streak with 4-7-8 Breathing on MindFool.Games! Join me in building mental resilience through daily practice.",
		c.Message)
	assert.Equal(t, StreakURL(5, practice.Mode478Breathing), c.URL)
	assert.Equal(t, c.Message+"\n"+c.URL, c.Text())

	plain := StreakContent(1, "")
	assert.Equal(t,
		"I've maintained a 1 day streak on MindFool.Games! Join me in building mental resilience through daily practice.",
		plain.Message)
}

// Package share builds links and messages for sharing practices and streaks.
package share

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/mindfool/mindfool/internal/practice"
)

const (
	// MarketingSite serves share pages with social previews.
	MarketingSite = "https://mindfool.games"

	// AppBase is the production app origin for deep links.
	AppBase = "https://app.mindfool.games"

	// DevScheme is the custom URL scheme used by development builds.
	DevScheme = "mindfool"
)

// Content is a ready-to-share message.
type Content struct {
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
	URL     string `json:"url" yaml:"url"`
}

// Text joins the message and URL the way clipboard and text shares expect.
func (c Content) Text() string {
	return c.Message + "\n" + c.URL
}

// DeepLink returns the link that opens mode directly.
func DeepLink(mode practice.Mode, dev bool) string {
	if dev {
		return DevScheme + "://" + string(mode)
	}
	return AppBase + "/" + string(mode)
}

// StreakURL returns the share page for a streak of days. mode is optional.
func StreakURL(days int, mode practice.Mode) string {
	q := url.Values{}
	q.Set("days", strconv.Itoa(days))
	if mode != "" {
		q.Set("practice", string(mode))
	}
	return MarketingSite + "/share/streak?" + q.Encode()
}

// StreakContent builds the share message for a streak of days. mode is
// optional and adds the practice name to the message.
func StreakContent(days int, mode practice.Mode) Content {
	var with string
	if mode != "" {
		with = " with " + mode.DisplayName()
	}
	return Content{
		Title: fmt.Sprintf("%d Day Mindfulness Streak!", days),
		Message: fmt.Sprintf(
			"I've maintained a %d day streak%s on MindFool.Games! Join me in building mental resilience through daily practice.",
			days, with,
		),
		URL: StreakURL(days, mode),
	}
}

package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/mindfool/mindfool/internal/ui/theme"
)

const bannerArt = `
   ·  ˚   ✦   ˚  ·
 m i n d f o o l
   ·  ˚   ✦   ˚  ·`

const bannerCompact = "mindfool"

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback for narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 24 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

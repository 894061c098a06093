package start

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/agequiz/internal/ui/theme"
)

const bannerArt = `
 ╭─────╮ ╭─────╮ ╭─────╮ ╭─────╮ ╭─────╮
 │  ?  │ │  ?  │ │  ?  │ │  ?  │ │  ?  │
 ╰─────╯ ╰─────╯ ╰─────╯ ╰─────╯ ╰─────╯`

const bannerCompact = "? ? ? ? ?"

// RenderBanner returns the five-card banner in the primary color.
// Uses a compact fallback for narrow or short terminals.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 44 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

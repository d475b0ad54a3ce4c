package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗  ██╗██╗   ██╗███████╗██╗      █████╗ ██████╗
 ██╔══██╗██║  ██║╚██╗ ██╔╝██╔════╝██║     ██╔══██╗██╔══██╗
 ██████╔╝███████║ ╚████╔╝ ███████╗██║     ███████║██████╔╝
 ██╔═══╝ ██╔══██║  ╚██╔╝  ╚════██║██║     ██╔══██║██╔══██╗
 ██║     ██║  ██║   ██║   ███████║███████╗██║  ██║██████╔╝
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═╝╚═════╝`

const bannerCompact = "P H Y S L A B"

// RenderBanner returns the PHYSLAB banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 62 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 62 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

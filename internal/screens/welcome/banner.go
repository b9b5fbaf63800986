package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/omark/quizdeck/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗██╗  ██╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
██║   ██║██║   ██║██║  ███╔╝ ██║  ██║█████╗  ██║     █████╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗
╚██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗╚██████╗██║  ██╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "Q U I Z D E C K"

// RenderBanner returns the QUIZDECK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Mode selects the active palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Color palette. Screens build styles from these; Apply swaps the palette
// in place, so styles must be constructed at render time, not cached.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color
)

var active Mode

// Apply switches the palette to the given mode.
func Apply(mode Mode) {
	active = mode
	switch mode {
	case ModeLight:
		Primary = lipgloss.Color("#1E3A8A")   // Navy
		Secondary = lipgloss.Color("#0D9488") // Teal
		Accent = lipgloss.Color("#7C3AED")    // Violet
		Success = lipgloss.Color("#059669")   // Emerald
		Error = lipgloss.Color("#DC2626")     // Red
		Text = lipgloss.Color("#0F172A")      // Near black
		TextDim = lipgloss.Color("#64748B")   // Slate
		BgCard = lipgloss.Color("#E2E8F0")    // Light slate
		Border = lipgloss.Color("#94A3B8")    // Slate
	default:
		Primary = lipgloss.Color("#7C3AED")   // Violet
		Secondary = lipgloss.Color("#14B8A6") // Teal
		Accent = lipgloss.Color("#F59E0B")    // Amber
		Success = lipgloss.Color("#22C55E")   // Green
		Error = lipgloss.Color("#F43F5E")     // Rose
		Text = lipgloss.Color("#F8FAFC")      // White
		TextDim = lipgloss.Color("#94A3B8")   // Slate
		BgCard = lipgloss.Color("#1E293B")    // Dark slate
		Border = lipgloss.Color("#334155")    // Slate
	}
}

// Active returns the current palette mode.
func Active() Mode {
	return active
}

// Toggle switches between light and dark and returns the new mode.
func Toggle() Mode {
	if active == ModeDark {
		Apply(ModeLight)
	} else {
		Apply(ModeDark)
	}
	return active
}

func init() {
	Apply(ModeDark)
}

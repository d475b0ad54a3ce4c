package components

import (
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// BenchFrame wraps content in a double-border frame, centering it within the
// given dimensions. Used for the welcome banner and the mastery card.
func BenchFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded-border card at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Left).
		Padding(1, 2).
		Render(content)
}

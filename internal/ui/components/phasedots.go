package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// PhaseDots renders the ten-phase progress strip shown at the top of a lab:
// a filled dot per visited phase, a ring for the current one, and the current
// phase's label underneath.
type PhaseDots struct {
	Labels  []string
	Current int
	Visited []bool
}

// NewPhaseDots creates a strip for the given phase labels.
func NewPhaseDots(labels []string) PhaseDots {
	return PhaseDots{
		Labels:  labels,
		Visited: make([]bool, len(labels)),
	}
}

// View renders the dot strip with the current label centered below it.
func (p PhaseDots) View() string {
	var dots []string
	for i := range p.Labels {
		switch {
		case i == p.Current:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("◉"))
		case i < len(p.Visited) && p.Visited[i]:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Secondary).Render("●"))
		default:
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}

	strip := strings.Join(dots, "─")

	label := ""
	if p.Current >= 0 && p.Current < len(p.Labels) {
		label = lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(lipgloss.Width(strip)).
			Align(lipgloss.Center).
			Render(p.Labels[p.Current])
	}

	return strip + "\n" + label
}

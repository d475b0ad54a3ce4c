package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const benchTitleFull = ` ██████╗ ██╗  ██╗██╗   ██╗███████╗██╗      █████╗ ██████╗
 ██╔══██╗██║  ██║╚██╗ ██╔╝██╔════╝██║     ██╔══██╗██╔══██╗
 ██████╔╝███████║ ╚████╔╝ ███████╗██║     ███████║██████╔╝
 ██╔═══╝ ██╔══██║  ╚██╔╝  ╚════██║██║     ██╔══██║██╔══██╗
 ██║     ██║  ██║   ██║   ███████║███████╗██║  ██║██████╔╝
 ╚═╝     ╚═╝  ╚═╝   ╚═╝   ╚══════╝╚══════╝╚═╝  ╚═╝╚═════╝`

const benchTitleCompact = "P · H · Y · S · L · A · B"

// benchItem is one entry in the bench menu: a label plus an optional
// progress status shown on the right edge of the button.
type benchItem struct {
	Label  string
	Status string
}

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for bench border (2) + inner padding (4)
	w := frameWidth - 6
	// Cap so it doesn't stretch absurdly wide
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(benchTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(benchTitleFull))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(mastered, total, runs int, coachReady bool, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	runStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	coachStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			masteredStyle.Render(fmt.Sprintf("⚗%d/%d", mastered, total)),
			runStyle.Render(fmt.Sprintf("▶%d", runs)),
			coachText(coachReady, true, coachStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			masteredStyle.Render(fmt.Sprintf("⚗ %d/%d MASTERED", mastered, total)),
			runStyle.Render(fmt.Sprintf("▶ %d RUNS", runs)),
			coachText(coachReady, false, coachStyle, dimStyle),
		)
	}

	// Wrap in a double-border box at the same content width
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func coachText(ready, compact bool, active, dim lipgloss.Style) string {
	if !ready {
		if compact {
			return dim.Render("✎–")
		}
		return dim.Render("✎ COACH OFF")
	}
	if compact {
		return active.Render("✎+")
	}
	return active.Render("✎ COACH READY")
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 34

// renderBenchMenu renders each menu item as a fixed-width button with the
// progress status right-aligned inside it.
func renderBenchMenu(items []benchItem, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, item := range items {
		label := item.Label
		if i == selected {
			label = "▸ " + label
		}
		text := benchButtonText(label, item.Status, buttonWidth-2)
		if i == selected {
			buttons = append(buttons, selectedBtn.Render(text))
		} else {
			buttons = append(buttons, normalBtn.Render(text))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// benchButtonText lays out label left, status right within the given width.
func benchButtonText(label, status string, width int) string {
	if status == "" {
		return label
	}
	gap := width - lipgloss.Width(label) - lipgloss.Width(status)
	if gap < 1 {
		gap = 1
	}
	return label + strings.Repeat(" ", gap) + status
}

// renderBenchMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderBenchMenuCompact(items []benchItem, selected int, cw int) string {
	var lines []string
	for i, item := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + item.Label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderCoachBanner renders a warning banner when no LLM API key is configured.
func renderCoachBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to enable the coach (see physlab --help)")
}

// renderApparatusBox renders the bench apparatus centered in a box matching content width.
func renderApparatusBox(variant ApparatusVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderApparatus(variant))
}

// renderBenchFrame wraps content in a double-border bench frame,
// centering vertically and horizontally within the given dimensions.
func renderBenchFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

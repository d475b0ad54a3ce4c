package components

import (
	"github.com/guptarohit/asciigraph"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// Plot renders a data series as a braille-free ASCII line chart with a
// caption underneath.
func Plot(series []float64, caption string, width, height int) string {
	if len(series) < 2 {
		return ""
	}

	plotWidth := width - 10 // asciigraph adds a y-axis gutter
	if plotWidth < 20 {
		plotWidth = 20
	}
	if height < 5 {
		height = 5
	}

	graph := asciigraph.Plot(series,
		asciigraph.Width(plotWidth),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	)

	return theme.PlotLine.Render(graph)
}

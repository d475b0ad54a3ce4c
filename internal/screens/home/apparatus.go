package home

import (
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// ApparatusVariant selects which bench apparatus art to display.
type ApparatusVariant int

const (
	ApparatusIdle        ApparatusVariant = iota // Default cyan scope
	ApparatusCelebrating                         // Amber, starred trace after a fresh mastery
)

const apparatusIdle = `╭───────────╮
│ ∿∿∿∿∿∿∿∿∿ │
│ ◉  ◉  ◉   │
╰───────────╯
   ╱     ╲`

const apparatusCelebrating = `╭───────────╮
│ ★∿∿∿★∿∿∿★ │
│ ◉  ◉  ◉   │
╰───────────╯
   ╱     ╲`

// RenderApparatus returns the apparatus ASCII art for the given variant.
func RenderApparatus(variant ...ApparatusVariant) string {
	v := ApparatusIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case ApparatusCelebrating:
		art = apparatusCelebrating
		fg = theme.Accent
	default:
		art = apparatusIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

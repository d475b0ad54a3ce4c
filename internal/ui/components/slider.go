package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/ui/theme"
)

// Slider is a horizontal parameter slider stepped with the left/right keys.
type Slider struct {
	Label   string
	Unit    string
	Min     float64
	Max     float64
	Step    float64
	Value   float64
	Width   int
	Focused bool

	// Changed is set for one Update cycle after the value moves.
	Changed bool
}

// NewSlider creates a slider clamped to [min, max].
func NewSlider(label, unit string, min, max, step, value float64, width int) Slider {
	s := Slider{
		Label: label,
		Unit:  unit,
		Min:   min,
		Max:   max,
		Step:  step,
		Value: value,
		Width: width,
	}
	s.clamp()
	return s
}

// Update handles left/right stepping when focused.
func (s Slider) Update(msg tea.Msg) (Slider, tea.Cmd) {
	s.Changed = false
	if !s.Focused {
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
		s.clamp()
		s.Changed = true
	case "right", "l":
		s.Value += s.Step
		s.clamp()
		s.Changed = true
	}

	return s, nil
}

func (s *Slider) clamp() {
	if s.Value < s.Min {
		s.Value = s.Min
	}
	if s.Value > s.Max {
		s.Value = s.Max
	}
}

// View renders the slider track with its current value.
func (s Slider) View() string {
	trackWidth := s.Width - 2
	if trackWidth < 8 {
		trackWidth = 8
	}

	pos := 0
	if s.Max > s.Min {
		pos = int(float64(trackWidth-1) * (s.Value - s.Min) / (s.Max - s.Min))
	}
	if pos < 0 {
		pos = 0
	}
	if pos > trackWidth-1 {
		pos = trackWidth - 1
	}

	track := strings.Repeat("─", pos) + "●" + strings.Repeat("─", trackWidth-1-pos)

	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	trackStyle := lipgloss.NewStyle().Foreground(theme.Border)
	valueStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.Focused {
		labelStyle = labelStyle.Bold(true).Foreground(theme.Primary)
		trackStyle = trackStyle.Foreground(theme.Primary)
		valueStyle = valueStyle.Foreground(theme.Text)
	}

	prefix := "  "
	if s.Focused {
		prefix = "▸ "
	}

	return fmt.Sprintf("%s%s  %s  %s",
		prefix,
		labelStyle.Render(s.Label),
		trackStyle.Render("["+track+"]"),
		valueStyle.Render(fmt.Sprintf("%.2f %s", s.Value, s.Unit)),
	)
}

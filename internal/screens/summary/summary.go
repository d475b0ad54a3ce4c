package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/screen"
	"github.com/nikverma/physlab/internal/ui/components"
	"github.com/nikverma/physlab/internal/ui/layout"
	"github.com/nikverma/physlab/internal/ui/theme"
)

// Result is what one lab run left behind.
type Result struct {
	GameName        string
	Duration        time.Duration
	PhasesCompleted int
	TotalPhases     int
	TestDone        bool
	TestScorePct    int
	Passed          bool
	Mastered        bool
	ReviewHeadline  string
}

// SummaryScreen displays the lab run summary.
type SummaryScreen struct {
	result Result
	back   components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{
		result: result,
		back: components.NewButton("Back to bench", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Lab Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to bench"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	var cmd tea.Cmd
	s.back, cmd = s.back.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result

	var b strings.Builder

	headline := "Lab ended"
	headlineColor := theme.Primary
	if res.Mastered {
		headline = "⚗ " + res.GameName + " mastered!"
		headlineColor = theme.Accent
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(headlineColor).
		Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	if !res.Mastered {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(res.GameName))
		b.WriteString("\n\n")
	}

	mins := int(res.Duration.Minutes())
	secs := int(res.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time in the lab: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	total := res.TotalPhases
	if total < 1 {
		total = 1
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Phases: %d/%d", res.PhasesCompleted, res.TotalPhases),
		float64(res.PhasesCompleted)/float64(total),
		false, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	quizLine := "Quiz: not reached"
	if res.TestDone {
		quizLine = fmt.Sprintf("Quiz: %d%%", res.TestScorePct)
		if res.Passed {
			quizLine += " ✓"
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(quizLine))
	b.WriteString("\n\n")

	if res.ReviewHeadline != "" {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coach's take")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Render("✎ " + res.ReviewHeadline))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.back.View()))

	return b.String()
}

package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/screen"
	"github.com/nikverma/physlab/internal/store"
	"github.com/nikverma/physlab/internal/ui/components"
	"github.com/nikverma/physlab/internal/ui/layout"
	"github.com/nikverma/physlab/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Scores   map[string][]int // gameID → test scores, oldest first
	Err      error
}

// HistoryScreen displays past lab runs and per-game score trends.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	scores    map[string][]int
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.eventRepo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Load the score trend once per game seen in the list.
		scores := make(map[string][]int)
		for _, sess := range sessions {
			if _, ok := scores[sess.GameID]; ok {
				continue
			}
			hist, err := s.eventRepo.TestScoreHistory(ctx, sess.GameID)
			if err != nil {
				continue
			}
			scores[sess.GameID] = hist
		}

		return historyLoadedMsg{Sessions: sessions, Scores: scores}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Score trend"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.scores = msg.Scores
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No lab runs yet. Pick a lab from the bench!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sess := range s.sessions {
		dateStr := sess.Timestamp.Format("Jan 02, 2006")
		mins := sess.DurationSecs / 60
		secs := sess.DurationSecs % 60
		durationStr := fmt.Sprintf("%d:%02d", mins, secs)

		scoreStr := "no quiz"
		if sess.TestScorePct > 0 || sess.PhasesCompleted >= 9 {
			scoreStr = fmt.Sprintf("%d%%", sess.TestScorePct)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %s  %d phases  %s",
			prefix, dateStr, gameName(sess.GameID), durationStr, sess.PhasesCompleted, scoreStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderTrend(sess.GameID, width))
		}
	}

	return b.String()
}

// renderTrend plots the game's quiz scores across runs.
func (s *HistoryScreen) renderTrend(gameID string, width int) string {
	hist := s.scores[gameID]
	if len(hist) < 2 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("    Not enough runs for a trend yet")) + "\n"
	}

	series := make([]float64, len(hist))
	for i, v := range hist {
		series[i] = float64(v)
	}

	plot := components.Plot(series, "quiz score by run", min(width-10, 56), 5)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, plot) + "\n"
}

func gameName(id string) string {
	if g, err := content.GetGame(id); err == nil {
		return g.Name
	}
	return id
}

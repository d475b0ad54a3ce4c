package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/lab"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/screen"
	"github.com/nikverma/physlab/internal/screens/history"
	labscreen "github.com/nikverma/physlab/internal/screens/lab"
	"github.com/nikverma/physlab/internal/store"
	"github.com/nikverma/physlab/internal/ui/components"
)

// Deps carries everything the home screen needs to launch labs.
type Deps struct {
	Progress       *progress.Service
	Events         store.EventRepo
	Coach          *coach.Service
	DebounceWindow time.Duration
	DefaultGame    string
	Sound          bool
	Sequence       func(ctx context.Context) (int64, error)
}

// HomeScreen is the lab bench: the list of mini-labs plus history and exit.
type HomeScreen struct {
	menu             components.Menu
	benchItems       []benchItem
	masteredCount    int
	totalGames       int
	runCount         int
	coachReady       bool
	apparatusVariant ApparatusVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen from the game catalog and saved progress.
func New(deps Deps) *HomeScreen {
	games := content.AllGames()

	var masteredCount, runCount int
	var recentMastery bool
	now := time.Now()

	var benchItems []benchItem
	for _, g := range games {
		gp := deps.Progress.Get(g.ID)
		runCount += gp.Attempts
		if gp.IsMastered() {
			masteredCount++
			if now.Sub(*gp.MasteredAt) < 24*time.Hour {
				recentMastery = true
			}
		}
		benchItems = append(benchItems, benchItem{
			Label:  strings.ToUpper(g.Name),
			Status: gameStatus(gp),
		})
	}
	benchItems = append(benchItems,
		benchItem{Label: "HISTORY"},
		benchItem{Label: "EXIT LAB"},
	)

	apparatusVariant := ApparatusIdle
	if recentMastery {
		apparatusVariant = ApparatusCelebrating
	}

	var items []components.MenuItem
	for _, g := range games {
		game := g
		items = append(items, components.MenuItem{Label: strings.ToUpper(g.Name), Action: func() tea.Cmd {
			resume := deps.Progress.Get(game.ID).ResumePhase != phase.PhaseHook
			return func() tea.Msg {
				s, err := labscreen.New(game, deps.Progress, deps.Events, deps.Coach, lab.Options{
					DebounceWindow: deps.DebounceWindow,
					Resume:         resume,
					Sequence:       deps.Sequence,
				})
				if err != nil {
					return nil
				}
				s.Sound = deps.Sound
				return router.PushScreenMsg{Screen: s}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "HISTORY", Action: func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(deps.Events)}
		}
	}})
	items = append(items, components.MenuItem{Label: "EXIT LAB", Action: func() tea.Cmd {
		return tea.Quit
	}})

	menu := components.NewMenu(items)
	if deps.DefaultGame != "" {
		for i, g := range games {
			if g.ID == deps.DefaultGame {
				menu.Selected = i
				break
			}
		}
	}

	return &HomeScreen{
		menu:             menu,
		benchItems:       benchItems,
		masteredCount:    masteredCount,
		totalGames:       len(games),
		runCount:         runCount,
		coachReady:       deps.Coach.Available(),
		apparatusVariant: apparatusVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderApparatusBox(h.apparatusVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.masteredCount, h.totalGames, h.runCount, h.coachReady, cw, compact))

	if compact {
		sections = append(sections, renderBenchMenuCompact(h.benchItems, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderBenchMenu(h.benchItems, h.menu.Selected, cw))
	}

	if !h.coachReady {
		sections = append(sections, renderCoachBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderBenchFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Lab Bench"
}

// gameStatus summarizes saved progress for the bench menu.
func gameStatus(gp *progress.GameProgress) string {
	switch {
	case gp.IsMastered():
		return "⚗ mastered"
	case gp.ResumePhase != phase.PhaseHook:
		return "▸ " + gp.ResumePhase.Label()
	case gp.BestTestScorePct > 0:
		return fmt.Sprintf("best %d%%", gp.BestTestScorePct)
	default:
		return ""
	}
}

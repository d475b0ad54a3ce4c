package home

import (
	"strings"
	"testing"
	"time"

	"github.com/nikverma/physlab/internal/content"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/progress"
)

func newTestHome() *HomeScreen {
	return New(Deps{Progress: progress.NewService(nil, nil)})
}

func TestHomeMenuListsAllGamesPlusExtras(t *testing.T) {
	h := newTestHome()
	want := len(content.AllGames()) + 2 // history + exit
	if len(h.menu.Items) != want {
		t.Errorf("menu items = %d, want %d", len(h.menu.Items), want)
	}
	if h.Title() != "Lab Bench" {
		t.Errorf("Title = %q", h.Title())
	}
}

func TestDefaultGamePreselected(t *testing.T) {
	games := content.AllGames()
	if len(games) < 2 {
		t.Skip("needs at least two games")
	}
	h := New(Deps{
		Progress:    progress.NewService(nil, nil),
		DefaultGame: games[1].ID,
	})
	if h.menu.Selected != 1 {
		t.Errorf("Selected = %d, want 1", h.menu.Selected)
	}
}

func TestHomeViewShowsStats(t *testing.T) {
	h := newTestHome()
	view := h.View(100, 40)
	if !strings.Contains(view, "MASTERED") {
		t.Error("view should show the mastered count")
	}
	if !strings.Contains(view, "COACH OFF") {
		t.Error("view should flag the missing coach")
	}
}

func TestGameStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		gp   *progress.GameProgress
		want string
	}{
		{"fresh", &progress.GameProgress{ResumePhase: phase.PhaseHook}, ""},
		{"mastered", &progress.GameProgress{ResumePhase: phase.PhaseHook, MasteredAt: &now}, "⚗ mastered"},
		{"in progress", &progress.GameProgress{ResumePhase: phase.PhasePlay}, "▸ " + phase.PhasePlay.Label()},
		{"scored", &progress.GameProgress{ResumePhase: phase.PhaseHook, BestTestScorePct: 60}, "best 60%"},
	}
	for _, tt := range tests {
		if got := gameStatus(tt.gp); got != tt.want {
			t.Errorf("%s: gameStatus = %q, want %q", tt.name, got, tt.want)
		}
	}
}

package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nikverma/physlab/internal/router"
	"github.com/nikverma/physlab/internal/store"
)

type stubEventRepo struct {
	store.EventRepo
	sessions []store.SessionSummaryRecord
	scores   map[string][]int
}

func (r *stubEventRepo) QuerySessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return r.sessions, nil
}

func (r *stubEventRepo) TestScoreHistory(_ context.Context, gameID string) ([]int, error) {
	return r.scores[gameID], nil
}

func loadedHistory(t *testing.T, repo *stubEventRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	scr, _ := s.Update(s.Init()())
	return scr.(*HistoryScreen)
}

func testRepo() *stubEventRepo {
	return &stubEventRepo{
		sessions: []store.SessionSummaryRecord{
			{SessionID: "a", GameID: "crash-cart", Timestamp: time.Now(), PhasesCompleted: 10, TestScorePct: 80, DurationSecs: 312},
			{SessionID: "b", GameID: "crash-cart", Timestamp: time.Now().Add(-time.Hour), PhasesCompleted: 6, DurationSecs: 150},
		},
		scores: map[string][]int{"crash-cart": {40, 80}},
	}
}

func TestHistoryListsSessions(t *testing.T) {
	s := loadedHistory(t, testRepo())
	view := s.View(100, 40)
	if !strings.Contains(view, "Crash Cart") {
		t.Error("view should show the game name")
	}
	if !strings.Contains(view, "80%") {
		t.Error("view should show the quiz score")
	}
}

func TestHistoryEmptyState(t *testing.T) {
	s := loadedHistory(t, &stubEventRepo{})
	view := s.View(100, 40)
	if !strings.Contains(view, "No lab runs yet") {
		t.Error("expected the empty-state prompt")
	}
}

func TestHistoryTrendToggle(t *testing.T) {
	s := loadedHistory(t, testRepo())

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = scr.(*HistoryScreen)
	if !s.expanded[0] {
		t.Fatal("enter should expand the selected row")
	}
	view := s.View(100, 40)
	if !strings.Contains(view, "quiz score by run") {
		t.Error("expanded row should plot the score trend")
	}
}

func TestHistoryEscPops(t *testing.T) {
	s := loadedHistory(t, testRepo())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("esc should pop the screen")
	}
}

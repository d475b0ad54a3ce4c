package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nikverma/physlab/internal/router"
)

func testResult() Result {
	return Result{
		GameName:        "Crash Cart",
		Duration:        7*time.Minute + 30*time.Second,
		PhasesCompleted: 9,
		TotalPhases:     10,
		TestDone:        true,
		TestScorePct:    80,
		Passed:          true,
		Mastered:        true,
		ReviewHeadline:  "Momentum always balances the books",
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Lab Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Lab Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Crash Cart") {
		t.Error("view should name the game")
	}
	if !strings.Contains(view, "80%") {
		t.Error("view should show the quiz score")
	}
	if !strings.Contains(view, "Momentum always balances the books") {
		t.Error("view should show the coach headline")
	}
}

func TestSummaryScreen_QuizNotReached(t *testing.T) {
	res := testResult()
	res.TestDone = false
	res.Mastered = false
	res.Passed = false
	view := New(res).View(80, 24)
	if !strings.Contains(view, "not reached") {
		t.Error("view should mark an unfinished quiz")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{
		{Code: tea.KeyEnter},
		{Code: tea.KeyEscape},
	} {
		s := New(testResult())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command on %v", key)
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg on %v", key)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	hints := New(testResult()).KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}

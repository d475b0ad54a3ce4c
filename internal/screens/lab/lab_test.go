package lab

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nikverma/physlab/internal/coach"
	"github.com/nikverma/physlab/internal/content"
	sess "github.com/nikverma/physlab/internal/lab"
	"github.com/nikverma/physlab/internal/llm"
	"github.com/nikverma/physlab/internal/phase"
	"github.com/nikverma/physlab/internal/progress"
	"github.com/nikverma/physlab/internal/router"
)

func newTestLab(t *testing.T) *LabScreen {
	t.Helper()
	game, err := content.GetGame("crash-cart")
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	l, err := New(game, progress.NewService(nil, nil), nil, nil, sess.Options{})
	if err != nil {
		t.Fatalf("new lab screen: %v", err)
	}
	return l
}

func press(l *LabScreen, key tea.KeyPressMsg) *LabScreen {
	s, _ := l.Update(key)
	return s.(*LabScreen)
}

func enter(l *LabScreen) *LabScreen {
	return press(l, tea.KeyPressMsg{Code: tea.KeyEnter})
}

func TestLabStartsAtHook(t *testing.T) {
	l := newTestLab(t)
	if l.session.Current() != phase.PhaseHook {
		t.Errorf("Current = %q, want hook", l.session.Current())
	}
	view := l.View(100, 40)
	if !strings.Contains(view, l.session.Game.Name) {
		t.Error("hook view should show the game name")
	}
}

func TestEnterLeavesHook(t *testing.T) {
	l := enter(newTestLab(t))
	if l.session.Current() != phase.PhasePredict {
		t.Errorf("Current = %q after enter, want predict", l.session.Current())
	}
}

func TestPredictSubmitThenAdvance(t *testing.T) {
	l := enter(newTestLab(t))

	// First enter locks in the highlighted option, second one moves on.
	l = enter(l)
	if !l.answered {
		t.Fatal("expected prediction to be locked in")
	}
	if !l.session.State.PredictionMade() {
		t.Fatal("session should have recorded the prediction")
	}

	l = enter(l)
	if l.session.Current() != phase.PhasePlay {
		t.Errorf("Current = %q, want play", l.session.Current())
	}
}

func TestPlayGateBlocksUntilSliderMoves(t *testing.T) {
	l := enter(newTestLab(t))
	l = enter(l) // lock prediction
	l = enter(l) // into play

	l = enter(l) // no slider touched yet
	if l.session.Current() != phase.PhasePlay {
		t.Fatalf("Current = %q, want play to hold", l.session.Current())
	}
	if l.notice == "" {
		t.Error("expected a gate notice")
	}

	l = press(l, tea.KeyPressMsg{Code: tea.KeyRight})
	if l.session.State.PlayInteractions == 0 {
		t.Fatal("slider move should count as an interaction")
	}
	if l.notice != "" {
		t.Error("notice should clear after an interaction")
	}

	l = enter(l)
	if l.session.Current() != phase.PhaseReview {
		t.Errorf("Current = %q, want review", l.session.Current())
	}
}

func TestTypedValueSetsParam(t *testing.T) {
	l := enter(newTestLab(t))
	l = enter(l) // lock prediction
	l = enter(l) // into play

	l = press(l, tea.KeyPressMsg{Code: 'e'})
	if !l.editing {
		t.Fatal("e should open exact-value entry")
	}

	spec := l.session.ActiveParams()[0]
	l.input.Model.SetValue(fmt.Sprintf("%g", spec.Max))
	l = enter(l)

	if l.editing {
		t.Fatal("a valid value should close the editor")
	}
	if l.sliders[0].Value != spec.Max {
		t.Errorf("slider value = %g, want %g", l.sliders[0].Value, spec.Max)
	}
	if l.session.State.PlayInteractions == 0 {
		t.Error("typed value should count as an interaction")
	}
}

func TestTypedValueOutOfRangeStaysEditing(t *testing.T) {
	l := enter(newTestLab(t))
	l = enter(l)
	l = enter(l)

	l = press(l, tea.KeyPressMsg{Code: 'e'})
	spec := l.session.ActiveParams()[0]
	l.input.Model.SetValue(fmt.Sprintf("%g", spec.Max+1))
	l = enter(l)
	if !l.editing {
		t.Fatal("out-of-range value should keep the editor open")
	}

	l = press(l, tea.KeyPressMsg{Code: tea.KeyEscape})
	if l.editing {
		t.Error("esc should cancel the editor")
	}
	if l.confirmQuit {
		t.Error("esc in the editor should not trigger quit confirmation")
	}
}

func coachReviewJSON(headline string) llm.MockResponse {
	body := fmt.Sprintf(`{
		"headline": %q,
		"explanation": "Mass ratio sets the shared speed.",
		"everyday_example": "A truck barely slows when it hits a parked car.",
		"follow_up_question": "What happens with equal masses?"
	}`, headline)
	return llm.MockResponse{Content: json.RawMessage(body)}
}

// pumpReview drives the poll loop until the current phase's debrief arrives.
func pumpReview(t *testing.T, l *LabScreen) *LabScreen {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s, _ := l.Update(reviewPollMsg(time.Now()))
		l = s.(*LabScreen)
		if l.session.ActiveReview() != nil {
			return l
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for the coach debrief")
	return l
}

func TestTwistReviewShowsFreshDebrief(t *testing.T) {
	game, err := content.GetGame("crash-cart")
	if err != nil {
		t.Fatalf("load game: %v", err)
	}
	mock := llm.NewMockProvider(
		coachReviewJSON("Momentum is conserved"),
		coachReviewJSON("Heavier targets soak up the speed"),
	)
	coachSvc := coach.NewService(mock, coach.DefaultConfig())
	l, err := New(game, progress.NewService(nil, nil), nil, coachSvc, sess.Options{})
	if err != nil {
		t.Fatalf("new lab screen: %v", err)
	}

	l = enter(l) // predict
	l = enter(l) // lock prediction
	l = enter(l) // play
	l = press(l, tea.KeyPressMsg{Code: tea.KeyRight})
	l = enter(l) // review, first debrief requested
	l = pumpReview(t, l)

	first := l.View(100, 40)
	if !strings.Contains(first, "Momentum is conserved") {
		t.Fatal("review should show the first debrief")
	}

	l = enter(l) // twist predict
	l = enter(l) // lock twist prediction
	l = enter(l) // twist play
	l = press(l, tea.KeyPressMsg{Code: tea.KeyRight})
	l = enter(l) // twist review, second debrief requested
	l = pumpReview(t, l)

	if mock.CallCount() != 2 {
		t.Errorf("provider calls = %d, want one per review phase", mock.CallCount())
	}
	view := l.View(100, 40)
	if strings.Contains(view, "Momentum is conserved") {
		t.Error("twist review should not render the first debrief")
	}
	if !strings.Contains(view, "Heavier targets soak up the speed") {
		t.Error("twist review should show its own debrief")
	}
}

func TestNumberKeyJumpsBackToVisitedPhase(t *testing.T) {
	l := enter(newTestLab(t))
	l = enter(l)
	l = enter(l)
	l = press(l, tea.KeyPressMsg{Code: tea.KeyRight})
	l = enter(l) // review

	l = press(l, tea.KeyPressMsg{Code: '3'})
	if l.session.Current() != phase.PhasePlay {
		t.Errorf("Current = %q after jump, want play", l.session.Current())
	}
}

func TestNumberKeySkipAheadShowsNotice(t *testing.T) {
	l := newTestLab(t)
	l = press(l, tea.KeyPressMsg{Code: '9'})
	if l.session.Current() != phase.PhaseHook {
		t.Errorf("Current = %q, want hook to hold", l.session.Current())
	}
	if l.notice == "" {
		t.Error("expected a locked-phase notice")
	}
}

func TestEscShowsQuitConfirm(t *testing.T) {
	l := newTestLab(t)
	l = press(l, tea.KeyPressMsg{Code: tea.KeyEscape})
	if !l.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	l = press(l, tea.KeyPressMsg{Code: 'n'})
	if l.confirmQuit {
		t.Error("n should cancel the quit confirmation")
	}
}

func TestQuitConfirmEndsWithSummary(t *testing.T) {
	l := newTestLab(t)
	l = press(l, tea.KeyPressMsg{Code: tea.KeyEscape})

	s, cmd := l.Update(tea.KeyPressMsg{Code: 'y'})
	l = s.(*LabScreen)
	if cmd == nil {
		t.Fatal("expected a command ending the lab")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
}

func TestPhaseKeyIndex(t *testing.T) {
	tests := []struct {
		key  string
		idx  int
		want bool
	}{
		{"1", 0, true},
		{"5", 4, true},
		{"9", 8, true},
		{"0", 9, true},
		{"a", 0, false},
		{"enter", 0, false},
	}
	for _, tt := range tests {
		idx, ok := phaseKeyIndex(tt.key)
		if ok != tt.want {
			t.Errorf("phaseKeyIndex(%q) ok = %v, want %v", tt.key, ok, tt.want)
			continue
		}
		if ok && idx != tt.idx {
			t.Errorf("phaseKeyIndex(%q) = %d, want %d", tt.key, idx, tt.idx)
		}
	}
}

func TestGateNoticeByPhase(t *testing.T) {
	if gateNotice(phase.PhasePredict) == gateNotice(phase.PhasePlay) {
		t.Error("predict and play should explain their gates differently")
	}
}

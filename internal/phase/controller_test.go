package phase

import (
	"errors"
	"testing"
	"time"
)

func TestSequenceOrder(t *testing.T) {
	seq := Sequence()
	if len(seq) != 10 {
		t.Fatalf("sequence length = %d, want 10", len(seq))
	}
	if seq[0] != PhaseHook {
		t.Errorf("first phase = %s, want hook", seq[0])
	}
	if seq[9] != PhaseMastery {
		t.Errorf("last phase = %s, want mastery", seq[9])
	}
}

func TestAdvanceMarksCompletion(t *testing.T) {
	c := NewController()

	if c.Current() != PhaseHook {
		t.Fatalf("Current = %s, want hook", c.Current())
	}
	if err := c.RequestTransition(PhasePredict); err != nil {
		t.Fatalf("advance to predict: %v", err)
	}
	if c.Current() != PhasePredict {
		t.Errorf("Current = %s, want predict", c.Current())
	}
	if !c.IsComplete(PhaseHook) {
		t.Error("hook should be complete after leaving it")
	}
	if c.IsComplete(PhasePredict) {
		t.Error("predict should not be complete yet")
	}
}

func TestGateBlocksAdvance(t *testing.T) {
	c := NewController()
	advance(t, c, PhasePredict)

	predicted := false
	c.RegisterGate(PhasePredict, func() bool { return predicted })

	err := c.RequestTransition(PhasePlay)
	if !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("err = %v, want ErrGateNotSatisfied", err)
	}
	if c.Current() != PhasePredict {
		t.Errorf("Current = %s, want predict (unchanged)", c.Current())
	}

	predicted = true
	if err := c.RequestTransition(PhasePlay); err != nil {
		t.Fatalf("advance after gate satisfied: %v", err)
	}
	if c.Current() != PhasePlay {
		t.Errorf("Current = %s, want play", c.Current())
	}
}

func TestSkipAheadRejected(t *testing.T) {
	c := NewController()

	err := c.RequestTransition(PhaseReview)
	if !errors.Is(err, ErrNonSequentialJump) {
		t.Fatalf("err = %v, want ErrNonSequentialJump", err)
	}
	if c.Current() != PhaseHook {
		t.Errorf("Current = %s, want hook (unchanged)", c.Current())
	}
}

func TestBackJumpToVisited(t *testing.T) {
	c := NewController()
	advance(t, c, PhasePredict, PhasePlay)

	if err := c.RequestTransition(PhaseHook); err != nil {
		t.Fatalf("back-jump to visited hook: %v", err)
	}
	if c.Current() != PhaseHook {
		t.Errorf("Current = %s, want hook", c.Current())
	}
	// Leaving play, even backward, counts as completing it.
	if !c.IsComplete(PhasePlay) {
		t.Error("play should be complete after leaving it")
	}
}

func TestGateAppliesToBackJump(t *testing.T) {
	c := NewController()
	advance(t, c, PhasePredict, PhasePlay)

	c.RegisterGate(PhasePlay, func() bool { return false })

	err := c.RequestTransition(PhaseHook)
	if !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("err = %v, want ErrGateNotSatisfied", err)
	}
}

// P1: every accepted target is the successor of the phase active immediately
// before the call, or a previously visited phase.
func TestMonotonicOrRevisit(t *testing.T) {
	c := NewController()
	seq := Sequence()

	var accepted []Phase
	c.OnTransition(func(e Event) {
		accepted = append(accepted, e.To)
	})

	requests := []Phase{
		PhasePredict, // forward
		PhasePlay,    // forward
		PhaseTest,    // skip — rejected
		PhaseHook,    // revisit
		PhasePredict, // revisit
		PhasePlay,    // revisit
		PhaseReview,  // forward
	}

	visited := map[Phase]bool{PhaseHook: true}
	prev := c.Current()
	for _, target := range requests {
		err := c.RequestTransition(target)
		if err != nil {
			continue
		}
		succ := successor(seq, prev)
		if target != succ && !visited[target] {
			t.Errorf("accepted %s from %s: neither successor nor visited", target, prev)
		}
		visited[target] = true
		prev = target
	}

	want := []Phase{PhasePredict, PhasePlay, PhaseHook, PhasePredict, PhasePlay, PhaseReview}
	if len(accepted) != len(want) {
		t.Fatalf("accepted %d transitions, want %d", len(accepted), len(want))
	}
	for i, p := range want {
		if accepted[i] != p {
			t.Errorf("accepted[%d] = %s, want %s", i, accepted[i], p)
		}
	}
}

// P3: completion persists for the remainder of the session.
func TestCompletionPersists(t *testing.T) {
	c := NewController()
	advance(t, c, PhasePredict, PhasePlay, PhaseReview)

	for _, p := range []Phase{PhaseHook, PhasePredict, PhasePlay} {
		if !c.IsComplete(p) {
			t.Errorf("IsComplete(%s) = false after leaving it", p)
		}
	}

	// Revisit and re-leave; still complete.
	advance(t, c, PhaseHook, PhasePredict)
	for _, p := range []Phase{PhaseHook, PhasePredict, PhasePlay, PhaseReview} {
		if !c.IsComplete(p) {
			t.Errorf("IsComplete(%s) = false after revisit", p)
		}
	}
}

// P4: a rejected request emits no event and mutates no completion flag.
func TestRejectionIsIdempotent(t *testing.T) {
	c := NewController()
	advance(t, c, PhasePredict)
	c.RegisterGate(PhasePredict, func() bool { return false })

	events := 0
	c.OnTransition(func(Event) { events++ })

	if err := c.RequestTransition(PhasePlay); err == nil {
		t.Fatal("expected gate rejection")
	}
	if err := c.RequestTransition(PhaseTest); err == nil {
		t.Fatal("expected jump rejection")
	}

	if events != 0 {
		t.Errorf("events emitted on rejection = %d, want 0", events)
	}
	if c.IsComplete(PhasePredict) {
		t.Error("predict marked complete by a rejected request")
	}
	if c.Current() != PhasePredict {
		t.Errorf("Current = %s, want predict", c.Current())
	}
}

// P5: the terminal phase always loops to the first, gates ignored.
func TestTerminalLoop(t *testing.T) {
	c := NewController()
	advanceAll(t, c)

	if c.Current() != PhaseMastery {
		t.Fatalf("Current = %s, want mastery", c.Current())
	}

	c.RegisterGate(PhaseMastery, func() bool { return false })

	if err := c.RequestTransition(PhaseHook); err != nil {
		t.Fatalf("terminal loop: %v", err)
	}
	if c.Current() != PhaseHook {
		t.Errorf("Current = %s, want hook", c.Current())
	}
	if !c.IsComplete(PhaseMastery) {
		t.Error("mastery should be complete after the loop")
	}
	// Completion flags from the first pass survive the loop.
	if !c.IsComplete(PhaseTest) {
		t.Error("prior completion lost across the terminal loop")
	}
}

func TestTerminalLoopCoercesAnyTarget(t *testing.T) {
	c := NewController()
	advanceAll(t, c)

	// Any target requested from mastery is a reset-to-first jump.
	if err := c.RequestTransition(PhaseTest); err != nil {
		t.Fatalf("terminal loop with non-first target: %v", err)
	}
	if c.Current() != PhaseHook {
		t.Errorf("Current = %s, want hook", c.Current())
	}
}

func TestTransitionEventPayload(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := NewController(WithClock(func() time.Time { return at }))

	var got Event
	c.OnTransition(func(e Event) { got = e })

	if err := c.RequestTransition(PhasePredict); err != nil {
		t.Fatalf("advance: %v", err)
	}

	if got.Kind != EventKindPhaseChange {
		t.Errorf("Kind = %q, want phase_change", got.Kind)
	}
	if got.From != PhaseHook || got.To != PhasePredict {
		t.Errorf("From/To = %s/%s, want hook/predict", got.From, got.To)
	}
	if got.Label != "Predict" {
		t.Errorf("Label = %q, want Predict", got.Label)
	}
	if got.TimestampMillis() != at.UnixMilli() {
		t.Errorf("TimestampMillis = %d, want %d", got.TimestampMillis(), at.UnixMilli())
	}
}

func TestPhaseLeftHook(t *testing.T) {
	c := NewController()

	var left []Phase
	c.OnPhaseLeft(func(p Phase) { left = append(left, p) })

	advance(t, c, PhasePredict, PhasePlay)

	if len(left) != 2 || left[0] != PhaseHook || left[1] != PhasePredict {
		t.Errorf("phase-left hooks = %v, want [hook predict]", left)
	}
}

func TestResumePoint(t *testing.T) {
	c := NewController(WithInitial(PhaseReview))

	if c.Current() != PhaseReview {
		t.Fatalf("Current = %s, want review", c.Current())
	}
	// Earlier phases count as visited so back-navigation works...
	if err := c.RequestTransition(PhasePredict); err != nil {
		t.Errorf("back-jump after resume: %v", err)
	}
	// ...but none count as completed.
	if c.IsComplete(PhaseHook) {
		t.Error("resume must not fabricate completion")
	}
}

func TestUnknownPhaseRejected(t *testing.T) {
	c := NewController()
	err := c.RequestTransition(Phase("warmup"))
	if !errors.Is(err, ErrNonSequentialJump) {
		t.Errorf("err = %v, want ErrNonSequentialJump", err)
	}
}

// advance walks the controller through the given targets, failing the test
// on any rejection.
func advance(t *testing.T, c *Controller, targets ...Phase) {
	t.Helper()
	for _, p := range targets {
		if err := c.RequestTransition(p); err != nil {
			t.Fatalf("advance to %s: %v", p, err)
		}
	}
}

// advanceAll walks from hook to mastery.
func advanceAll(t *testing.T, c *Controller) {
	t.Helper()
	advance(t, c, Sequence()[1:]...)
}

func successor(seq []Phase, p Phase) Phase {
	for i, q := range seq {
		if q == p && i+1 < len(seq) {
			return seq[i+1]
		}
	}
	return ""
}

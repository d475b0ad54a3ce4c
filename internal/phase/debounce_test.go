package phase

import (
	"errors"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for debounce tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestDebounceDropsRapidSecondRequest(t *testing.T) {
	clock := newFakeClock()
	d := NewDebounced(NewController(), 200*time.Millisecond, clock.Now)

	if err := d.RequestTransition(PhasePredict); err != nil {
		t.Fatalf("first request: %v", err)
	}

	clock.Advance(50 * time.Millisecond)
	err := d.RequestTransition(PhasePlay)
	if !errors.Is(err, ErrDebounced) {
		t.Fatalf("err = %v, want ErrDebounced", err)
	}
	if d.Current() != PhasePredict {
		t.Errorf("Current = %s, want predict (debounced request is a no-op)", d.Current())
	}

	clock.Advance(200 * time.Millisecond)
	if err := d.RequestTransition(PhasePlay); err != nil {
		t.Fatalf("request after window: %v", err)
	}
	if d.Current() != PhasePlay {
		t.Errorf("Current = %s, want play", d.Current())
	}
}

func TestDebounceOnlyArmedByAcceptedTransitions(t *testing.T) {
	clock := newFakeClock()
	ctrl := NewController()
	ctrl.RegisterGate(PhaseHook, func() bool { return false })
	d := NewDebounced(ctrl, 200*time.Millisecond, clock.Now)

	// Gate rejection must not arm the window.
	if err := d.RequestTransition(PhasePredict); !errors.Is(err, ErrGateNotSatisfied) {
		t.Fatalf("err = %v, want ErrGateNotSatisfied", err)
	}

	ctrl.RegisterGate(PhaseHook, func() bool { return true })
	clock.Advance(10 * time.Millisecond)
	if err := d.RequestTransition(PhasePredict); err != nil {
		t.Fatalf("request right after rejection: %v", err)
	}
}

func TestDebounceDisabledWithZeroWindow(t *testing.T) {
	clock := newFakeClock()
	d := NewDebounced(NewController(), 0, clock.Now)

	if err := d.RequestTransition(PhasePredict); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if err := d.RequestTransition(PhasePlay); err != nil {
		t.Fatalf("immediate second request with zero window: %v", err)
	}
}

package phase

import (
	"errors"
	"fmt"
	"time"
)

// Transition errors. Both are expected, frequent UI conditions (a disabled
// button clicked through a race, a tap on a future dot), so they are plain
// values the caller can errors.Is against, never panics.
var (
	// ErrGateNotSatisfied means the current phase's gate predicate returned
	// false. The caller may retry once the gate condition is met.
	ErrGateNotSatisfied = errors.New("phase gate not satisfied")

	// ErrNonSequentialJump means the target is neither the immediate next
	// phase nor one already visited this session.
	ErrNonSequentialJump = errors.New("non-sequential phase jump")
)

// EventKindPhaseChange is the kind emitted on every accepted transition.
const EventKindPhaseChange = "phase_change"

// Gate is a completion predicate for a phase. It must be a pure read of
// host-owned state at evaluation time — no side effects.
type Gate func() bool

// Event is the immutable record emitted once per accepted transition.
// The controller does not retain emitted events.
type Event struct {
	Kind  string
	From  Phase
	To    Phase
	Label string // display label of the destination phase
	At    time.Time
}

// TimestampMillis returns the event time as Unix milliseconds, the form
// analytics collaborators record.
func (e Event) TimestampMillis() int64 {
	return e.At.UnixMilli()
}

// Controller owns the current phase pointer for one session and enforces
// valid transitions. It renders nothing; rendering is a collaborator that
// reads Current and IsComplete.
//
// Not safe for concurrent use. One controller belongs to one UI session and
// is driven from its event loop.
type Controller struct {
	order       []Phase
	index       map[Phase]int
	current     int
	visited     map[Phase]bool
	completed   map[Phase]bool
	gates       map[Phase]Gate
	onTransit   func(Event)
	onPhaseLeft func(Phase)
	now         func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithInitial sets the resume point. Phases before it count as visited so
// backward navigation works after a resume; none count as completed.
func WithInitial(p Phase) Option {
	return func(c *Controller) {
		idx, ok := c.index[p]
		if !ok {
			return
		}
		c.current = idx
		for i := 0; i < idx; i++ {
			c.visited[c.order[i]] = true
		}
		c.visited[p] = true
	}
}

// WithClock overrides the event timestamp source. Tests use this for
// deterministic events.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller positioned at the first phase of the
// canonical sequence.
func NewController(opts ...Option) *Controller {
	order := Sequence()
	c := &Controller{
		order:     order,
		index:     make(map[Phase]int, len(order)),
		visited:   make(map[Phase]bool, len(order)),
		completed: make(map[Phase]bool, len(order)),
		gates:     make(map[Phase]Gate),
		now:       time.Now,
	}
	for i, p := range order {
		c.index[p] = i
	}
	c.visited[order[0]] = true
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Current returns the active phase.
func (c *Controller) Current() Phase {
	return c.order[c.current]
}

// Sequence returns the controller's phase order.
func (c *Controller) Sequence() []Phase {
	out := make([]Phase, len(c.order))
	copy(out, c.order)
	return out
}

// IsComplete reports whether the controller has transitioned away from p at
// least once this session.
func (c *Controller) IsComplete(p Phase) bool {
	return c.completed[p]
}

// Visited reports whether p has been the current phase this session.
func (c *Controller) Visited(p Phase) bool {
	return c.visited[p]
}

// RegisterGate associates a completion predicate with a phase, overwriting
// any prior predicate. A phase with no gate is always advanceable.
func (c *Controller) RegisterGate(p Phase, gate Gate) {
	c.gates[p] = gate
}

// OnTransition registers the telemetry callback fired synchronously on every
// accepted transition.
func (c *Controller) OnTransition(fn func(Event)) {
	c.onTransit = fn
}

// OnPhaseLeft registers a hook fired the instant a phase is left, for hosts
// that persist a resume point externally.
func (c *Controller) OnPhaseLeft(fn func(Phase)) {
	c.onPhaseLeft = fn
}

// RequestTransition moves the session to target if the move is valid.
//
// A target is reachable when it is the immediate successor of the current
// phase or a phase already visited this session. Leaving the current phase
// additionally requires its gate (if registered) to pass. The terminal phase
// is special: any request from it is treated as a reset-to-first-phase jump
// and always succeeds, gates ignored. Completion flags survive the loop.
//
// On success the previous phase is marked complete and a phase_change event
// fires before this method returns. A rejected request has no observable
// effect.
func (c *Controller) RequestTransition(target Phase) error {
	targetIdx, ok := c.index[target]
	if !ok {
		return fmt.Errorf("unknown phase %q: %w", target, ErrNonSequentialJump)
	}

	from := c.order[c.current]

	// Terminal loop: every request from the last phase restarts at the first.
	if c.current == len(c.order)-1 {
		c.commit(from, 0)
		return nil
	}

	if targetIdx == c.current {
		// Already there. No state change, no event.
		return nil
	}

	if targetIdx != c.current+1 && !c.visited[target] {
		return ErrNonSequentialJump
	}

	if gate, ok := c.gates[from]; ok && !gate() {
		return ErrGateNotSatisfied
	}

	c.commit(from, targetIdx)
	return nil
}

// commit applies an accepted transition: pointer move, completion mark,
// phase-left hook, then the synchronous telemetry event.
func (c *Controller) commit(from Phase, toIdx int) {
	c.current = toIdx
	to := c.order[toIdx]
	c.visited[to] = true
	c.completed[from] = true

	if c.onPhaseLeft != nil {
		c.onPhaseLeft(from)
	}
	if c.onTransit != nil {
		c.onTransit(Event{
			Kind:  EventKindPhaseChange,
			From:  from,
			To:    to,
			Label: to.Label(),
			At:    c.now(),
		})
	}
}

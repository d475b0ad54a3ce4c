package phase

import (
	"errors"
	"time"
)

// ErrDebounced means the request arrived inside the debounce window of the
// last accepted transition and was dropped as a duplicate input event.
var ErrDebounced = errors.New("transition debounced")

// DefaultDebounceWindow absorbs double-taps without feeling laggy. The value
// is configurable because hosts disagree on the right width.
const DefaultDebounceWindow = 250 * time.Millisecond

// Debounced wraps a Controller and rejects transition requests that arrive
// within a configurable window of the last accepted one. This is a UI-level
// concern layered on top of the controller, not a controller invariant: the
// inner controller never sees a debounced request.
type Debounced struct {
	*Controller

	window       time.Duration
	now          func() time.Time
	lastAccepted time.Time
}

// NewDebounced wraps ctrl with the given window. A zero or negative window
// disables debouncing. now is the monotonic clock; pass nil for time.Now.
func NewDebounced(ctrl *Controller, window time.Duration, now func() time.Time) *Debounced {
	if now == nil {
		now = time.Now
	}
	return &Debounced{
		Controller: ctrl,
		window:     window,
		now:        now,
	}
}

// RequestTransition forwards to the inner controller unless the request is
// inside the debounce window. Only accepted transitions arm the window, so a
// gate-rejected request followed by a quick valid one is not penalized.
func (d *Debounced) RequestTransition(target Phase) error {
	t := d.now()
	if d.window > 0 && !d.lastAccepted.IsZero() && t.Sub(d.lastAccepted) < d.window {
		return ErrDebounced
	}

	if err := d.Controller.RequestTransition(target); err != nil {
		return err
	}
	d.lastAccepted = t
	return nil
}

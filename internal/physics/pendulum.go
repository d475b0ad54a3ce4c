package physics

import "math"

// Pendulum models a simple pendulum in the small-angle regime, where the
// period depends only on length and gravity.
type Pendulum struct {
	Length  float64 // m
	Gravity float64 // m/s²
}

// NewPendulum returns a one-metre pendulum under Earth gravity, which swings
// with a period just over two seconds.
func NewPendulum() *Pendulum {
	return &Pendulum{
		Length:  1.0,
		Gravity: 9.81,
	}
}

// Period returns T = 2π√(L/g). Mass and (small) amplitude do not appear —
// that absence is the whole lesson of the pendulum lab.
func (p *Pendulum) Period() float64 {
	if p.Gravity <= 0 || p.Length < 0 {
		return 0
	}
	return 2 * math.Pi * math.Sqrt(p.Length/p.Gravity)
}

// Frequency returns 1/T in Hz, or 0 for a degenerate pendulum.
func (p *Pendulum) Frequency() float64 {
	t := p.Period()
	if t == 0 {
		return 0
	}
	return 1 / t
}

// PeriodCurve evaluates the period over a range of lengths, for plotting the
// square-root relationship.
func (p *Pendulum) PeriodCurve(lengthMin, lengthMax float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (lengthMax - lengthMin) / float64(n-1)
	probe := *p
	for i := range out {
		probe.Length = lengthMin + float64(i)*step
		out[i] = probe.Period()
	}
	return out
}

// LengthForPeriod inverts the period formula: L = g·(T/2π)². Used by the
// transfer phase ("how long must a clock pendulum be to tick once per
// second?").
func (p *Pendulum) LengthForPeriod(period float64) float64 {
	x := period / (2 * math.Pi)
	return p.Gravity * x * x
}

// Params returns the adjustable parameters by name.
func (p *Pendulum) Params() map[string]float64 {
	return map[string]float64{
		"length":  p.Length,
		"gravity": p.Gravity,
	}
}

// SetParam sets a parameter by name. Unknown names are ignored.
func (p *Pendulum) SetParam(name string, value float64) {
	switch name {
	case "length":
		p.Length = value
	case "gravity":
		p.Gravity = value
	}
}

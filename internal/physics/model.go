package physics

// Model is the common surface the lab screen drives: named parameters in,
// a headline curve and a handful of readouts out.
type Model interface {
	Params() map[string]float64
	SetParam(name string, value float64)

	// Curve returns n samples of the model's headline plot.
	Curve(n int) []float64

	// CurveLabel names what Curve plots, e.g. "final velocity vs cart B mass".
	CurveLabel() string

	// Readouts returns the derived values shown beside the plot.
	Readouts() []Readout
}

// Readout is one labeled output value.
type Readout struct {
	Label string
	Value float64
	Unit  string
}

// Curve plots the final velocity as cart B's mass grows from light to heavy.
func (c *Collision) Curve(n int) []float64 {
	return c.FinalVelocityCurve(0.2, 5.0, n)
}

func (c *Collision) CurveLabel() string {
	return "final velocity vs cart B mass (0.2-5 kg)"
}

func (c *Collision) Readouts() []Readout {
	return []Readout{
		{Label: "final velocity", Value: c.FinalVelocity(), Unit: "m/s"},
		{Label: "momentum", Value: c.MomentumAfter(), Unit: "kg·m/s"},
		{Label: "energy lost", Value: c.EnergyLossFraction() * 100, Unit: "%"},
	}
}

// Curve plots the period as the pendulum lengthens.
func (p *Pendulum) Curve(n int) []float64 {
	return p.PeriodCurve(0.1, 3.0, n)
}

func (p *Pendulum) CurveLabel() string {
	return "period vs length (0.1-3 m)"
}

func (p *Pendulum) Readouts() []Readout {
	return []Readout{
		{Label: "period", Value: p.Period(), Unit: "s"},
		{Label: "frequency", Value: p.Frequency(), Unit: "Hz"},
	}
}

// Curve plots the fall speed over the first thirty seconds.
func (d *Drag) Curve(n int) []float64 {
	return d.VelocityCurve(30, n)
}

func (d *Drag) CurveLabel() string {
	return "fall speed vs time (0-30 s)"
}

func (d *Drag) Readouts() []Readout {
	vt := d.TerminalVelocity()
	return []Readout{
		{Label: "terminal velocity", Value: vt, Unit: "m/s"},
		{Label: "drag at terminal", Value: d.Force(vt), Unit: "N"},
		{Label: "weight", Value: d.Mass * d.Gravity, Unit: "N"},
	}
}

// Curve plots one cycle of the synthesized output waveform.
func (inv *Inverter) Curve(n int) []float64 {
	return inv.Waveform(n)
}

func (inv *Inverter) CurveLabel() string {
	return "output waveform, one reference cycle"
}

func (inv *Inverter) Readouts() []Readout {
	return []Readout{
		{Label: "fundamental peak", Value: inv.FundamentalPeak(), Unit: "V"},
		{Label: "fundamental RMS", Value: inv.FundamentalRMS(), Unit: "V"},
		{Label: "THD", Value: inv.THD() * 100, Unit: "%"},
	}
}

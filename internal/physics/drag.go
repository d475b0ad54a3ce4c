package physics

import "math"

// Drag models a falling body with quadratic air resistance F = ½ρv²CdA.
type Drag struct {
	Mass        float64 // kg
	AirDensity  float64 // kg/m³
	DragCoeff   float64 // dimensionless Cd
	Area        float64 // m², frontal
	Gravity     float64 // m/s²
}

// NewDrag returns a belly-down skydiver: roughly 80 kg, Cd ≈ 1.0, 0.7 m²
// frontal area at sea-level density.
func NewDrag() *Drag {
	return &Drag{
		Mass:       80.0,
		AirDensity: 1.225,
		DragCoeff:  1.0,
		Area:       0.7,
		Gravity:    9.81,
	}
}

// Force returns the drag force at speed v: F = ½ρv²CdA.
func (d *Drag) Force(v float64) float64 {
	return 0.5 * d.AirDensity * v * v * d.DragCoeff * d.Area
}

// TerminalVelocity returns the speed at which drag balances weight:
// vt = √(2mg / ρCdA).
func (d *Drag) TerminalVelocity() float64 {
	denom := d.AirDensity * d.DragCoeff * d.Area
	if denom <= 0 {
		return 0
	}
	return math.Sqrt(2 * d.Mass * d.Gravity / denom)
}

// VelocityAt returns the speed after t seconds of fall from rest. The exact
// solution for quadratic drag is v(t) = vt·tanh(g·t/vt).
func (d *Drag) VelocityAt(t float64) float64 {
	vt := d.TerminalVelocity()
	if vt == 0 {
		return d.Gravity * t // vacuum fall
	}
	return vt * math.Tanh(d.Gravity*t/vt)
}

// VelocityCurve samples VelocityAt over [0, duration] for plotting the
// approach to terminal velocity.
func (d *Drag) VelocityCurve(duration float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := duration / float64(n-1)
	for i := range out {
		out[i] = d.VelocityAt(float64(i) * step)
	}
	return out
}

// Params returns the adjustable parameters by name.
func (d *Drag) Params() map[string]float64 {
	return map[string]float64{
		"mass":        d.Mass,
		"air_density": d.AirDensity,
		"drag_coeff":  d.DragCoeff,
		"area":        d.Area,
		"gravity":     d.Gravity,
	}
}

// SetParam sets a parameter by name. Unknown names are ignored.
func (d *Drag) SetParam(name string, value float64) {
	switch name {
	case "mass":
		d.Mass = value
	case "air_density":
		d.AirDensity = value
	case "drag_coeff":
		d.DragCoeff = value
	case "area":
		d.Area = value
	case "gravity":
		d.Gravity = value
	}
}

// Package physics holds the closed-form models behind each mini-lab.
// Every model is a small parameter struct with pure evaluation methods;
// the lab screen re-evaluates on each slider change and plots the result.
package physics

// Collision models a perfectly inelastic collision between two carts on a
// frictionless track. The carts couple on impact and move together.
type Collision struct {
	MassA     float64 // kg
	MassB     float64 // kg
	VelocityA float64 // m/s, positive toward B
	VelocityB float64 // m/s
}

// NewCollision returns the default crash-cart setup: a moving cart hitting a
// stationary one of equal mass.
func NewCollision() *Collision {
	return &Collision{
		MassA:     1.0,
		MassB:     1.0,
		VelocityA: 2.0,
		VelocityB: 0.0,
	}
}

// FinalVelocity returns the shared velocity after coupling:
// vf = (mA·vA + mB·vB) / (mA + mB). Momentum is conserved; kinetic energy
// is not.
func (c *Collision) FinalVelocity() float64 {
	total := c.MassA + c.MassB
	if total == 0 {
		return 0
	}
	return (c.MassA*c.VelocityA + c.MassB*c.VelocityB) / total
}

// MomentumBefore returns the total momentum before impact.
func (c *Collision) MomentumBefore() float64 {
	return c.MassA*c.VelocityA + c.MassB*c.VelocityB
}

// MomentumAfter returns the total momentum after coupling. Equal to
// MomentumBefore by construction; kept separate so the lab can display both
// sides of the conservation law.
func (c *Collision) MomentumAfter() float64 {
	return (c.MassA + c.MassB) * c.FinalVelocity()
}

// KineticEnergyBefore returns the total kinetic energy before impact.
func (c *Collision) KineticEnergyBefore() float64 {
	return 0.5*c.MassA*c.VelocityA*c.VelocityA + 0.5*c.MassB*c.VelocityB*c.VelocityB
}

// KineticEnergyAfter returns the kinetic energy of the coupled pair.
func (c *Collision) KineticEnergyAfter() float64 {
	vf := c.FinalVelocity()
	return 0.5 * (c.MassA + c.MassB) * vf * vf
}

// EnergyLossFraction returns the fraction of kinetic energy dissipated in
// the collision, in [0, 1].
func (c *Collision) EnergyLossFraction() float64 {
	before := c.KineticEnergyBefore()
	if before == 0 {
		return 0
	}
	return (before - c.KineticEnergyAfter()) / before
}

// FinalVelocityCurve evaluates FinalVelocity over a range of MassB values,
// for plotting how the outcome shifts as the target cart gets heavier.
func (c *Collision) FinalVelocityCurve(massBMin, massBMax float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	out := make([]float64, n)
	step := (massBMax - massBMin) / float64(n-1)
	probe := *c
	for i := range out {
		probe.MassB = massBMin + float64(i)*step
		out[i] = probe.FinalVelocity()
	}
	return out
}

// Params returns the adjustable parameters by name.
func (c *Collision) Params() map[string]float64 {
	return map[string]float64{
		"mass_a":     c.MassA,
		"mass_b":     c.MassB,
		"velocity_a": c.VelocityA,
		"velocity_b": c.VelocityB,
	}
}

// SetParam sets a parameter by name. Unknown names are ignored.
func (c *Collision) SetParam(name string, value float64) {
	switch name {
	case "mass_a":
		c.MassA = value
	case "mass_b":
		c.MassB = value
	case "velocity_a":
		c.VelocityA = value
	case "velocity_b":
		c.VelocityB = value
	}
}

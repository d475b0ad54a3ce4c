package physics

import (
	"math"
	"testing"
)

func almost(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func TestCollisionEqualMasses(t *testing.T) {
	c := &Collision{MassA: 1, MassB: 1, VelocityA: 2, VelocityB: 0}

	almost(t, "FinalVelocity", c.FinalVelocity(), 1.0, 1e-9)
	almost(t, "MomentumBefore", c.MomentumBefore(), 2.0, 1e-9)
	almost(t, "MomentumAfter", c.MomentumAfter(), 2.0, 1e-9)
	// Equal masses, one at rest: exactly half the kinetic energy is lost.
	almost(t, "EnergyLossFraction", c.EnergyLossFraction(), 0.5, 1e-9)
}

func TestCollisionMomentumConserved(t *testing.T) {
	cases := []Collision{
		{MassA: 2, MassB: 1, VelocityA: 3, VelocityB: -1},
		{MassA: 0.5, MassB: 4, VelocityA: 10, VelocityB: 0},
		{MassA: 3, MassB: 3, VelocityA: -2, VelocityB: 2},
	}
	for _, c := range cases {
		almost(t, "momentum", c.MomentumAfter(), c.MomentumBefore(), 1e-9)
		if c.KineticEnergyAfter() > c.KineticEnergyBefore()+1e-9 {
			t.Errorf("kinetic energy increased: %v -> %v", c.KineticEnergyBefore(), c.KineticEnergyAfter())
		}
	}
}

func TestCollisionHeadOnEqualAndOpposite(t *testing.T) {
	c := &Collision{MassA: 2, MassB: 2, VelocityA: 3, VelocityB: -3}
	almost(t, "FinalVelocity", c.FinalVelocity(), 0, 1e-9)
	almost(t, "EnergyLossFraction", c.EnergyLossFraction(), 1.0, 1e-9)
}

func TestPendulumPeriod(t *testing.T) {
	p := &Pendulum{Length: 1, Gravity: 9.81}
	almost(t, "Period(1m)", p.Period(), 2.006, 0.001)

	// Quadrupling the length doubles the period.
	p4 := &Pendulum{Length: 4, Gravity: 9.81}
	almost(t, "Period(4m)/Period(1m)", p4.Period()/p.Period(), 2.0, 1e-9)
}

func TestPendulumMoonGravity(t *testing.T) {
	earth := &Pendulum{Length: 1, Gravity: 9.81}
	moon := &Pendulum{Length: 1, Gravity: 1.62}
	if moon.Period() <= earth.Period() {
		t.Errorf("moon period %v should exceed earth period %v", moon.Period(), earth.Period())
	}
}

func TestPendulumLengthForPeriod(t *testing.T) {
	p := NewPendulum()
	// A seconds pendulum (T = 2 s) is about 0.994 m on Earth.
	almost(t, "LengthForPeriod(2s)", p.LengthForPeriod(2), 0.9940, 0.001)

	// Round trip.
	p.Length = p.LengthForPeriod(1.5)
	almost(t, "Period(round trip)", p.Period(), 1.5, 1e-9)
}

func TestPendulumCurveMonotonic(t *testing.T) {
	p := NewPendulum()
	curve := p.PeriodCurve(0.1, 2.0, 20)
	if len(curve) != 20 {
		t.Fatalf("curve length = %d, want 20", len(curve))
	}
	for i := 1; i < len(curve); i++ {
		if curve[i] <= curve[i-1] {
			t.Fatalf("period curve not increasing at %d: %v <= %v", i, curve[i], curve[i-1])
		}
	}
}

func TestDragForceQuadratic(t *testing.T) {
	d := &Drag{Mass: 80, AirDensity: 1.225, DragCoeff: 1.0, Area: 0.7, Gravity: 9.81}

	// F = ½ · 1.225 · 10² · 1.0 · 0.7 = 42.875 N
	almost(t, "Force(10)", d.Force(10), 42.875, 1e-9)
	// Doubling speed quadruples the force.
	almost(t, "Force(20)/Force(10)", d.Force(20)/d.Force(10), 4.0, 1e-9)
}

func TestDragTerminalVelocity(t *testing.T) {
	d := &Drag{Mass: 80, AirDensity: 1.225, DragCoeff: 1.0, Area: 0.7, Gravity: 9.81}

	// vt = √(2·80·9.81 / (1.225·1.0·0.7)) ≈ 42.78 m/s
	vt := d.TerminalVelocity()
	almost(t, "TerminalVelocity", vt, 42.78, 0.01)

	// At terminal velocity drag equals weight.
	almost(t, "Force(vt)", d.Force(vt), d.Mass*d.Gravity, 1e-6)
}

func TestDragVelocityApproachesTerminal(t *testing.T) {
	d := NewDrag()
	vt := d.TerminalVelocity()

	almost(t, "VelocityAt(0)", d.VelocityAt(0), 0, 1e-9)
	if v := d.VelocityAt(5); v >= vt {
		t.Errorf("VelocityAt(5) = %v, should be below terminal %v", v, vt)
	}
	almost(t, "VelocityAt(60)", d.VelocityAt(60), vt, 0.01)
}

func TestInverterLinearRegion(t *testing.T) {
	inv := &Inverter{BusVoltage: 48, ModIndex: 0.8, Frequency: 50, CarrierHz: 2000}

	// Fundamental peak = 0.8 · 48/2 = 19.2 V
	almost(t, "FundamentalPeak", inv.FundamentalPeak(), 19.2, 1e-9)
	almost(t, "FundamentalRMS", inv.FundamentalRMS(), 19.2/math.Sqrt2, 1e-9)
}

func TestInverterOvermodulationClamps(t *testing.T) {
	inv := NewInverter()
	inv.ModIndex = 5

	// Never beyond the six-step ceiling 4/π · Vdc/2.
	ceiling := 4 / math.Pi * inv.BusVoltage / 2
	if peak := inv.FundamentalPeak(); peak > ceiling+1e-9 {
		t.Errorf("FundamentalPeak = %v exceeds six-step ceiling %v", peak, ceiling)
	}

	// Waveform clips at the rails.
	for i, v := range inv.Waveform(100) {
		if math.Abs(v) > inv.BusVoltage/2+1e-9 {
			t.Fatalf("waveform[%d] = %v beyond rail %v", i, v, inv.BusVoltage/2)
		}
	}
}

func TestInverterTHDImprovesWithCarrier(t *testing.T) {
	slow := &Inverter{BusVoltage: 48, ModIndex: 0.8, Frequency: 50, CarrierHz: 500}
	fast := &Inverter{BusVoltage: 48, ModIndex: 0.8, Frequency: 50, CarrierHz: 8000}
	if fast.THD() >= slow.THD() {
		t.Errorf("THD at 8 kHz (%v) should beat 500 Hz (%v)", fast.THD(), slow.THD())
	}
}

func TestParamRoundTrip(t *testing.T) {
	models := []interface {
		Params() map[string]float64
		SetParam(string, float64)
	}{
		NewCollision(), NewPendulum(), NewDrag(), NewInverter(),
	}

	for _, m := range models {
		for name := range m.Params() {
			m.SetParam(name, 3.25)
			if got := m.Params()[name]; got != 3.25 {
				t.Errorf("%T: SetParam(%q) not reflected, got %v", m, name, got)
			}
		}
	}
}

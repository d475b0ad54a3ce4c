package physics

import "math"

// Inverter models sine-wave synthesis in a PWM inverter: a DC bus chopped at
// a carrier frequency so the filtered output approximates a sine at the
// reference frequency. In the linear region the fundamental peak is
// ma·Vdc/2; past ma = 1 the output clips and harmonic content grows.
type Inverter struct {
	BusVoltage float64 // Vdc
	ModIndex   float64 // ma, reference amplitude / carrier amplitude
	Frequency  float64 // Hz, reference (output) frequency
	CarrierHz  float64 // Hz, switching frequency
}

// NewInverter returns a small 48 V inverter synthesizing 50 Hz with a 2 kHz
// carrier.
func NewInverter() *Inverter {
	return &Inverter{
		BusVoltage: 48.0,
		ModIndex:   0.8,
		Frequency:  50.0,
		CarrierHz:  2000.0,
	}
}

// FundamentalPeak returns the peak of the output fundamental. Linear up to
// ma = 1, then clamped at the square-wave ceiling 4/π·Vdc/2.
func (inv *Inverter) FundamentalPeak() float64 {
	half := inv.BusVoltage / 2
	if inv.ModIndex <= 1 {
		return inv.ModIndex * half
	}
	// Overmodulation saturates toward six-step operation.
	ceiling := 4 / math.Pi * half
	linear := half
	excess := math.Min(inv.ModIndex-1, 1)
	return linear + (ceiling-linear)*excess
}

// FundamentalRMS returns the RMS of the output fundamental.
func (inv *Inverter) FundamentalRMS() float64 {
	return inv.FundamentalPeak() / math.Sqrt2
}

// THD returns a rough total-harmonic-distortion estimate as a fraction.
// In the linear region distortion rides at the carrier sidebands and shrinks
// as the carrier moves away from the reference; overmodulation adds
// low-order harmonics rapidly.
func (inv *Inverter) THD() float64 {
	if inv.Frequency <= 0 || inv.CarrierHz <= inv.Frequency {
		return 1
	}
	ratio := inv.CarrierHz / inv.Frequency
	thd := 1 / math.Sqrt(ratio)
	if inv.ModIndex > 1 {
		thd += 0.3 * math.Min(inv.ModIndex-1, 1)
	}
	return math.Min(thd, 1)
}

// Waveform samples one reference cycle of the synthesized output, clipping
// at the bus rails when overmodulated. This is the trace the lab plots.
func (inv *Inverter) Waveform(n int) []float64 {
	if n < 2 {
		n = 2
	}
	half := inv.BusVoltage / 2
	out := make([]float64, n)
	for i := range out {
		theta := 2 * math.Pi * float64(i) / float64(n-1)
		v := inv.ModIndex * half * math.Sin(theta)
		if v > half {
			v = half
		}
		if v < -half {
			v = -half
		}
		out[i] = v
	}
	return out
}

// Params returns the adjustable parameters by name.
func (inv *Inverter) Params() map[string]float64 {
	return map[string]float64{
		"bus_voltage": inv.BusVoltage,
		"mod_index":   inv.ModIndex,
		"frequency":   inv.Frequency,
		"carrier_hz":  inv.CarrierHz,
	}
}

// SetParam sets a parameter by name. Unknown names are ignored.
func (inv *Inverter) SetParam(name string, value float64) {
	switch name {
	case "bus_voltage":
		inv.BusVoltage = value
	case "mod_index":
		inv.ModIndex = value
	case "frequency":
		inv.Frequency = value
	case "carrier_hz":
		inv.CarrierHz = value
	}
}

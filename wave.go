package addsynth

import "math"

// Generator produces one sample per timestamp in t for a wave of the given
// frequency (Hz) and relative amplitude. The returned slice must have
// exactly len(t) elements; the accumulator rejects anything else.
type Generator func(t []float64, freq, amp float64) []float64

// Sine generates amp*sin(2*pi*freq*t).
func Sine(t []float64, freq, amp float64) []float64 {
	return sineAt(t, freq, amp, 0)
}

// Square generates a square wave: amp*sign(sin(2*pi*freq*t)). The value is
// zero at the sign transitions themselves.
func Square(t []float64, freq, amp float64) []float64 {
	return squareAt(t, freq, amp, 0)
}

// Sawtooth generates a rising sawtooth sweeping -amp..amp once per period,
// from the identity (2/pi)*atan(tan(pi*freq*t)).
func Sawtooth(t []float64, freq, amp float64) []float64 {
	return sawtoothAt(t, freq, amp, 0)
}

// Triangle generates a triangle wave from the identity
// (2/pi)*asin(sin(2*pi*freq*t)).
func Triangle(t []float64, freq, amp float64) []float64 {
	return triangleAt(t, freq, amp, 0)
}

// SineWithPhase returns a sine generator shifted by phase radians.
func SineWithPhase(phase float64) Generator {
	return func(t []float64, freq, amp float64) []float64 {
		return sineAt(t, freq, amp, phase)
	}
}

// SquareWithPhase returns a square generator shifted by phase radians.
func SquareWithPhase(phase float64) Generator {
	return func(t []float64, freq, amp float64) []float64 {
		return squareAt(t, freq, amp, phase)
	}
}

// SawtoothWithPhase returns a sawtooth generator shifted by phase radians.
func SawtoothWithPhase(phase float64) Generator {
	return func(t []float64, freq, amp float64) []float64 {
		return sawtoothAt(t, freq, amp, phase)
	}
}

// TriangleWithPhase returns a triangle generator shifted by phase radians.
func TriangleWithPhase(phase float64) Generator {
	return func(t []float64, freq, amp float64) []float64 {
		return triangleAt(t, freq, amp, phase)
	}
}

// Partial is one sine component of a harmonic series: a frequency multiple
// of the fundamental and its weight relative to the base amplitude.
type Partial struct {
	Multiple float64
	Weight   float64
}

// Harmonics returns a generator that sums sine partials at multiples of the
// fundamental frequency. With no partials it degenerates to silence.
func Harmonics(partials ...Partial) Generator {
	return func(t []float64, freq, amp float64) []float64 {
		out := make([]float64, len(t))
		for _, p := range partials {
			w := 2 * math.Pi * freq * p.Multiple
			for i, ts := range t {
				out[i] += amp * p.Weight * math.Sin(w*ts)
			}
		}
		return out
	}
}

func sineAt(t []float64, freq, amp, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * freq
	for i, ts := range t {
		out[i] = amp * math.Sin(w*ts+phase)
	}
	return out
}

func squareAt(t []float64, freq, amp, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * freq
	for i, ts := range t {
		out[i] = amp * sign(math.Sin(w*ts+phase))
	}
	return out
}

// sawtoothAt keeps the half-phase convention of the atan(tan(x)) form: tan
// has period pi, so the phase shift is halved to stay in radians of the
// output period.
func sawtoothAt(t []float64, freq, amp, phase float64) []float64 {
	out := make([]float64, len(t))
	w := math.Pi * freq
	scale := 2 * amp / math.Pi
	for i, ts := range t {
		out[i] = scale * math.Atan(math.Tan(w*ts+phase/2))
	}
	return out
}

func triangleAt(t []float64, freq, amp, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * freq
	scale := 2 * amp / math.Pi
	for i, ts := range t {
		out[i] = scale * math.Asin(math.Sin(w*ts+phase))
	}
	return out
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

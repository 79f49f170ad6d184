package addsynth

import "math"

// Modulator maps a relative time axis to per-sample volume factors in
// [0, 1]. The axis passed in always starts at zero; segment operations
// rebase their slice of session time before calling it.
type Modulator func(t []float64) []float64

// Constant holds full volume over the whole axis.
func Constant(t []float64) []float64 {
	out := make([]float64, len(t))
	for i := range out {
		out[i] = 1
	}
	return out
}

// Ramp fades linearly from silence up to full volume at the midpoint of the
// axis and back down to silence. A single-sample axis gets full volume.
func Ramp(t []float64) []float64 {
	out := make([]float64, len(t))
	if len(t) == 0 {
		return out
	}
	last := t[len(t)-1]
	if last <= 0 {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	for i, ts := range t {
		v := 1 - math.Abs(2*ts/last-1)
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

// ExpDecay returns a modulator rising to full volume at t=scale and decaying
// exponentially after, from (t/scale)*exp(1-t/scale). Non-positive scales
// fall back to one second.
func ExpDecay(scale float64) Modulator {
	if scale <= 0 || math.IsNaN(scale) {
		scale = 1
	}
	return func(t []float64) []float64 {
		out := make([]float64, len(t))
		for i, ts := range t {
			x := ts / scale
			out[i] = x * math.Exp(1-x)
		}
		return out
	}
}

// Product composes modulators by multiplying their outputs sample by
// sample. With no arguments it behaves like Constant.
func Product(ms ...Modulator) Modulator {
	return func(t []float64) []float64 {
		out := Constant(t)
		for _, m := range ms {
			if m == nil {
				continue
			}
			env := m(t)
			if len(env) != len(t) {
				// Surface the malformed length to the caller's check.
				return env
			}
			for i, v := range env {
				out[i] *= v
			}
		}
		return out
	}
}

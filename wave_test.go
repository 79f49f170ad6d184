package addsynth

import (
	"math"
	"testing"
)

func TestSineQuarterPeriods(t *testing.T) {
	axis := []float64{0, 0.25, 0.5, 0.75}
	out := Sine(axis, 1, 2)
	want := []float64{0, 2, 0, -2}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("sine at t=%v: got %v, want %v", axis[i], out[i], want[i])
		}
	}
}

func TestSquareSignStates(t *testing.T) {
	out := Square([]float64{0.1, 0.6}, 1, 3)
	if math.Abs(out[0]-3) > 1e-12 {
		t.Errorf("square in first half: got %v, want 3", out[0])
	}
	if math.Abs(out[1]-(-3)) > 1e-12 {
		t.Errorf("square in second half: got %v, want -3", out[1])
	}
	// sign(sin(0)) is 0, so the transition sample itself is silent.
	if v := Square([]float64{0}, 1, 3)[0]; v != 0 {
		t.Errorf("square at the transition: got %v, want 0", v)
	}
}

func TestSawtoothRampsLinearly(t *testing.T) {
	// Within the central period the sawtooth is the line 2*amp*freq*t.
	axis := []float64{0, 0.125, 0.25}
	out := Sawtooth(axis, 1, 1)
	want := []float64{0, 0.25, 0.5}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("sawtooth at t=%v: got %v, want %v", axis[i], out[i], want[i])
		}
	}
	// Past the half period it wraps to the falling edge.
	if v := Sawtooth([]float64{0.75}, 1, 1)[0]; math.Abs(v-(-0.5)) > 1e-9 {
		t.Errorf("sawtooth at t=0.75: got %v, want -0.5", v)
	}
}

func TestTriangleQuarterPeriods(t *testing.T) {
	axis := []float64{0, 0.25, 0.5, 0.75}
	out := Triangle(axis, 1, 1)
	want := []float64{0, 1, 0, -1}
	for i := range out {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Errorf("triangle at t=%v: got %v, want %v", axis[i], out[i], want[i])
		}
	}
}

func TestSineWithPhase(t *testing.T) {
	// A quarter-turn phase makes the sine start at its peak.
	gen := SineWithPhase(math.Pi / 2)
	if v := gen([]float64{0}, 440, 1)[0]; math.Abs(v-1) > 1e-12 {
		t.Errorf("phase-shifted sine at t=0: got %v, want 1", v)
	}
}

func TestSquareWithPhase(t *testing.T) {
	gen := SquareWithPhase(math.Pi / 2)
	if v := gen([]float64{0}, 440, 1)[0]; math.Abs(v-1) > 1e-12 {
		t.Errorf("phase-shifted square at t=0: got %v, want 1", v)
	}
}

func TestSawtoothWithPhase(t *testing.T) {
	// The atan(tan(x)) form halves the phase, so pi/2 of phase puts t=0 a
	// quarter period into the rise: half the peak.
	gen := SawtoothWithPhase(math.Pi / 2)
	if v := gen([]float64{0}, 1, 1)[0]; math.Abs(v-0.5) > 1e-9 {
		t.Errorf("phase-shifted sawtooth at t=0: got %v, want 0.5", v)
	}
}

func TestTriangleWithPhase(t *testing.T) {
	gen := TriangleWithPhase(math.Pi / 2)
	if v := gen([]float64{0}, 1, 1)[0]; math.Abs(v-1) > 1e-9 {
		t.Errorf("phase-shifted triangle at t=0: got %v, want 1", v)
	}
}

func TestHarmonicsSumsPartials(t *testing.T) {
	gen := Harmonics(Partial{Multiple: 1, Weight: 1}, Partial{Multiple: 2, Weight: 0.5})
	out := gen([]float64{0.125}, 1, 1)
	// sin(pi/4) + 0.5*sin(pi/2)
	want := math.Sin(math.Pi/4) + 0.5
	if math.Abs(out[0]-want) > 1e-9 {
		t.Errorf("harmonics at t=0.125: got %v, want %v", out[0], want)
	}
}

func TestHarmonicsScalesWithAmplitude(t *testing.T) {
	gen := Harmonics(Partial{Multiple: 1, Weight: 1})
	base := gen([]float64{0.1}, 1, 1)[0]
	scaled := gen([]float64{0.1}, 1, 2.5)[0]
	if math.Abs(scaled-2.5*base) > 1e-9 {
		t.Errorf("amplitude scaling: got %v, want %v", scaled, 2.5*base)
	}
}

func TestHarmonicsEmptyIsSilent(t *testing.T) {
	out := Harmonics()([]float64{0, 0.1, 0.2}, 440, 1)
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}

func TestGeneratorsHandleEmptyAxis(t *testing.T) {
	gens := []Generator{Sine, Square, Sawtooth, Triangle, Harmonics(Partial{Multiple: 1, Weight: 1})}
	for i, gen := range gens {
		if got := len(gen(nil, 440, 1)); got != 0 {
			t.Errorf("generator %d on empty axis: length %d, want 0", i, got)
		}
	}
}

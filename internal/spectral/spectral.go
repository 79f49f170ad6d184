package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// DominantFrequency returns the frequency in Hz of the strongest spectral
// component of a real-valued signal, skipping the DC bin. Empty or all-zero
// input reports 0.
func DominantFrequency(samples []float64, sampleRate int) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}
	coeffs := fft.FFTReal(samples)
	// Real input mirrors above Nyquist; only the first half carries
	// distinct frequencies.
	half := len(coeffs)/2 + 1
	best := 0
	bestMag := 0.0
	for i := 1; i < half; i++ {
		if mag := cmplx.Abs(coeffs[i]); mag > bestMag {
			best = i
			bestMag = mag
		}
	}
	if bestMag == 0 {
		return 0
	}
	return float64(best) * float64(sampleRate) / float64(len(samples))
}

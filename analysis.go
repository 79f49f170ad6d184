package addsynth

import (
	intspectral "github.com/cbegin/addsynth-go/internal/spectral"
)

// DominantFrequency returns the frequency in Hz of the strongest non-DC
// component of the accumulated signal. Silence reports 0 Hz.
func (s *Synth) DominantFrequency() (float64, error) {
	if s.t == nil {
		return 0, ErrNoTimeAxis
	}
	return intspectral.DominantFrequency(s.acc, s.sampleRate), nil
}

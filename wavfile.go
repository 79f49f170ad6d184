package addsynth

import (
	"fmt"
	"io"
	"os"

	wav "github.com/youpy/go-wav"
)

// LoadWAV reads a WAV file into a mono buffer of samples in [-1, 1] and
// reports the file's sample rate. Multi-channel files contribute their
// first channel only. The buffer feeds InsertSamples; resampling is the
// caller's problem when the rates differ.
func LoadWAV(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("addsynth: open %s: %w", path, err)
	}
	defer f.Close()

	r := wav.NewReader(f)
	format, err := r.Format()
	if err != nil {
		return nil, 0, fmt.Errorf("addsynth: read %s: %w", path, err)
	}
	var out []float64
	for {
		samples, err := r.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("addsynth: read %s: %w", path, err)
		}
		for _, smp := range samples {
			out = append(out, r.FloatValue(smp, 0))
		}
	}
	return out, int(format.SampleRate), nil
}

package addsynth

import (
	"fmt"

	intaudio "github.com/cbegin/addsynth-go/internal/audio"
)

// Sink consumes a finished buffer of samples in [-1, 1]. Play blocks until
// the buffer has been handed off and played to its end.
type Sink interface {
	Play(samples []float64, sampleRate int) error
}

type Backend string

const (
	BackendEbiten    Backend = "ebiten"
	BackendPortAudio Backend = "portaudio"
	BackendBeep      Backend = "beep"
	BackendNull      Backend = "null"
)

func newSinkForBackend(b Backend) (Sink, error) {
	switch b {
	case BackendEbiten:
		return intaudio.NewEbitenSink(), nil
	case BackendPortAudio:
		return intaudio.NewPortAudioSink(), nil
	case BackendBeep:
		return intaudio.NewBeepSink(), nil
	case BackendNull:
		return intaudio.NewNullSink(), nil
	default:
		return nil, fmt.Errorf("addsynth: unknown backend %q", string(b))
	}
}

// Play renders the accumulated signal with the modulator and blocks until
// the sink has played it to the end.
func (s *Synth) Play(m Modulator) error {
	buf, err := s.Render(m)
	if err != nil {
		return err
	}
	if s.sink == nil {
		return ErrNoSink
	}
	return s.sink.Play(buf, s.sampleRate)
}

// PlayNamed plays with a modulator looked up in the session registry.
func (s *Synth) PlayNamed(name string) error {
	m, err := s.registry.Modulator(name)
	if err != nil {
		return err
	}
	return s.Play(m)
}

// Sink returns the configured playback sink, nil when playback is disabled.
func (s *Synth) Sink() Sink { return s.sink }

const maxInt16Amp = 32767

// Int16Samples converts a finished buffer to 16-bit PCM values. Samples are
// clipped to [-1, 1] first; fractions truncate toward zero.
func Int16Samples(buf []float64) []int16 {
	out := make([]int16, len(buf))
	for i, v := range buf {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		out[i] = int16(v * maxInt16Amp)
	}
	return out
}

package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

var (
	audioContextOnce sync.Once
	audioContext     *ebitaudio.Context
	audioSampleRate  int
)

// sharedAudioContext returns the process-wide ebiten audio context. ebiten
// allows only one context per process, so every sink in the process must
// agree on the sample rate.
func sharedAudioContext(sampleRate int) (*ebitaudio.Context, error) {
	audioContextOnce.Do(func() {
		audioSampleRate = sampleRate
		audioContext = ebitaudio.NewContext(sampleRate)
	})
	if audioSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", audioSampleRate, sampleRate)
	}
	return audioContext, nil
}

// bufferReader serves a finished mono buffer as the interleaved stereo
// float32 little-endian stream ebiten players read, 8 bytes per frame.
type bufferReader struct {
	samples []float64
	pos     int
}

func newBufferReader(samples []float64) *bufferReader {
	return &bufferReader{samples: samples}
}

func (r *bufferReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.samples) {
		return 0, io.EOF
	}
	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	n := 0
	for i := 0; i < frames && r.pos < len(r.samples); i++ {
		u := math.Float32bits(float32(r.samples[r.pos]))
		binary.LittleEndian.PutUint32(p[n:], u)
		binary.LittleEndian.PutUint32(p[n+4:], u)
		n += 8
		r.pos++
	}
	return n, nil
}

// EbitenSink plays finished buffers through the process-wide ebiten audio
// context.
type EbitenSink struct{}

func NewEbitenSink() *EbitenSink { return &EbitenSink{} }

// Play blocks until the whole buffer has been played.
func (s *EbitenSink) Play(samples []float64, sampleRate int) error {
	ctx, err := sharedAudioContext(sampleRate)
	if err != nil {
		return err
	}
	pl, err := ctx.NewPlayerF32(newBufferReader(samples))
	if err != nil {
		return err
	}
	pl.Play()
	for pl.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	return pl.Close()
}

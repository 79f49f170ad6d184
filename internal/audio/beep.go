package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

// bufferStreamer adapts a finished mono buffer to beep's stereo Streamer.
type bufferStreamer struct {
	samples []float64
	pos     int
}

func (b *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	n := 0
	for i := range samples {
		if b.pos >= len(b.samples) {
			break
		}
		v := b.samples[b.pos]
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error { return nil }

// BeepSink plays finished buffers through the beep speaker.
type BeepSink struct{}

func NewBeepSink() *BeepSink { return &BeepSink{} }

// Play blocks until the whole buffer has been played.
func (s *BeepSink) Play(samples []float64, sampleRate int) error {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	done := make(chan struct{})
	speaker.Play(beep.Seq(&bufferStreamer{samples: samples}, beep.Callback(func() {
		close(done)
	})))
	<-done
	speaker.Clear()
	return nil
}

package audio

import (
	"github.com/gordonklaus/portaudio"
)

// PortAudioSink plays finished buffers through the default PortAudio
// output device.
type PortAudioSink struct {
	FramesPerBuffer int
}

func NewPortAudioSink() *PortAudioSink {
	return &PortAudioSink{FramesPerBuffer: 512}
}

// Play blocks until the whole buffer has been played. The callback
// zero-fills past the end of the buffer; Stop drains what is still queued
// in the device.
func (s *PortAudioSink) Play(samples []float64, sampleRate int) error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	defer portaudio.Terminate()

	var (
		pos      int
		finished bool
		done     = make(chan struct{})
	)
	// PortAudio invokes the callback serially on its own thread.
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), s.FramesPerBuffer, func(out []float32) {
		for i := range out {
			if pos < len(samples) {
				out[i] = float32(samples[pos])
				pos++
			} else {
				out[i] = 0
			}
		}
		if pos >= len(samples) && !finished {
			finished = true
			close(done)
		}
	})
	if err != nil {
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return err
	}
	<-done
	if err := stream.Stop(); err != nil {
		stream.Close()
		return err
	}
	return stream.Close()
}

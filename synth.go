package addsynth

import (
	"fmt"
	"log"
	"math"
)

// DefaultCeiling is the normalization target when WithCeiling is not given:
// peaks land at 90% of full scale.
const DefaultCeiling = 0.9

type Option func(*synthConfig)

type synthConfig struct {
	ceiling  float64
	registry *Registry
	backend  Backend
	sink     Sink
	sinkSet  bool
}

func defaultSynthConfig() synthConfig {
	return synthConfig{ceiling: DefaultCeiling, backend: BackendEbiten}
}

// WithCeiling sets the normalization ceiling, the fraction of full scale
// that the loudest sample is scaled to. Must be in (0, 1].
func WithCeiling(ceiling float64) Option {
	return func(cfg *synthConfig) {
		cfg.ceiling = ceiling
	}
}

// WithRegistry replaces the seeded generator/modulator registry.
func WithRegistry(r *Registry) Option {
	return func(cfg *synthConfig) {
		cfg.registry = r
	}
}

// WithBackend selects the playback backend used to build the sink.
func WithBackend(b Backend) Option {
	return func(cfg *synthConfig) {
		cfg.backend = b
	}
}

// WithSink installs a custom playback sink, overriding the backend choice.
func WithSink(sink Sink) Option {
	return func(cfg *synthConfig) {
		cfg.sink = sink
		cfg.sinkSet = true
	}
}

// Synth is an additive synthesis session: a time axis built for one sample
// rate and a running superposition of waves over it. Methods are not safe
// for concurrent use; a Synth belongs to one goroutine.
type Synth struct {
	sampleRate int
	ceiling    float64
	registry   *Registry
	sink       Sink

	t   []float64
	acc []float64
}

func New(sampleRate int, opts ...Option) (*Synth, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	cfg := defaultSynthConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if math.IsNaN(cfg.ceiling) || cfg.ceiling <= 0 || cfg.ceiling > 1 {
		return nil, ErrInvalidCeiling
	}
	if cfg.registry == nil {
		cfg.registry = NewRegistry()
	}
	sink := cfg.sink
	if !cfg.sinkSet {
		var err error
		sink, err = newSinkForBackend(cfg.backend)
		if err != nil {
			return nil, err
		}
	}
	return &Synth{
		sampleRate: sampleRate,
		ceiling:    cfg.ceiling,
		registry:   cfg.registry,
		sink:       sink,
	}, nil
}

// BuildTime discretizes the given duration at the session sample rate:
// round(rate*seconds) timestamps spaced 1/rate apart, starting at zero.
// Rebuilding replaces the axis and clears all accumulated waves.
func (s *Synth) BuildTime(seconds float64) error {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return ErrInvalidDuration
	}
	n := int(math.Round(float64(s.sampleRate) * seconds))
	if n < 0 { // conversion overflow on absurd durations
		return ErrInvalidDuration
	}
	t := make([]float64, n)
	dt := 1 / float64(s.sampleRate)
	for i := range t {
		t[i] = float64(i) * dt
	}
	s.t = t
	s.acc = make([]float64, n)
	return nil
}

// AddWave evaluates the generator over the whole time axis and adds the
// result into the accumulated signal. The session is unchanged on error.
func (s *Synth) AddWave(g Generator, freq, amp float64) error {
	if s.t == nil {
		return ErrNoTimeAxis
	}
	if g == nil {
		return ErrNilGenerator
	}
	wave := g(s.t, freq, amp)
	if len(wave) != len(s.t) {
		return fmt.Errorf("%w: generator returned %d samples for %d timestamps",
			ErrLengthMismatch, len(wave), len(s.t))
	}
	for i, v := range wave {
		s.acc[i] += v
	}
	return nil
}

// AddWaveNamed looks the generator up in the session registry and adds it
// over the whole axis.
func (s *Synth) AddWaveNamed(name string, freq, amp float64) error {
	g, err := s.registry.Generator(name)
	if err != nil {
		return err
	}
	return s.AddWave(g, freq, amp)
}

// AddShapedWave evaluates the generator over the inclusive sample segment
// [start, stop], shapes it with the modulator on a segment-relative time
// base, and adds the product into the accumulated signal. A nil modulator
// means full volume. Offsets outside the axis are clamped with a logged
// notice; a segment that ends before it starts, or misses the axis
// entirely, is rejected.
func (s *Synth) AddShapedWave(g Generator, m Modulator, freq, amp float64, start, stop int) error {
	if s.t == nil {
		return ErrNoTimeAxis
	}
	if g == nil {
		return ErrNilGenerator
	}
	start, stop, err := s.clampSegment(start, stop)
	if err != nil {
		return err
	}
	tseg := s.t[start : stop+1]
	wave := g(tseg, freq, amp)
	if len(wave) != len(tseg) {
		return fmt.Errorf("%w: generator returned %d samples for %d timestamps",
			ErrLengthMismatch, len(wave), len(tseg))
	}
	env, err := s.segmentEnvelope(m, tseg)
	if err != nil {
		return err
	}
	for i := range wave {
		s.acc[start+i] += env[i] * wave[i]
	}
	return nil
}

// InsertSamples splices a prerecorded buffer into the inclusive segment
// [start, stop], shaped by the modulator on a segment-relative time base.
// A negative stop means the buffer's natural end; a buffer shorter than the
// segment repeats cyclically, a longer one is truncated. A nil modulator
// means full volume.
func (s *Synth) InsertSamples(samples []float64, m Modulator, start, stop int) error {
	if s.t == nil {
		return ErrNoTimeAxis
	}
	if len(samples) == 0 {
		return ErrNoSamples
	}
	if stop < 0 {
		stop = start + len(samples) - 1
	}
	start, stop, err := s.clampSegment(start, stop)
	if err != nil {
		return err
	}
	tseg := s.t[start : stop+1]
	env, err := s.segmentEnvelope(m, tseg)
	if err != nil {
		return err
	}
	for i := range tseg {
		s.acc[start+i] += env[i] * samples[i%len(samples)]
	}
	return nil
}

// clampSegment validates inclusive offsets against the axis. Rejection
// happens before clamping so a stop genuinely before its start is an error
// rather than silently reordered.
func (s *Synth) clampSegment(start, stop int) (int, int, error) {
	if stop < start {
		return 0, 0, fmt.Errorf("%w: stop %d before start %d", ErrBadSegment, stop, start)
	}
	last := len(s.t) - 1
	if start < 0 {
		log.Printf("addsynth: start offset %d before axis start, clamping to 0", start)
		start = 0
	}
	if stop > last {
		log.Printf("addsynth: stop offset %d past axis end, clamping to %d", stop, last)
		stop = last
	}
	if start > stop {
		return 0, 0, fmt.Errorf("%w: segment [%d, %d] outside the time axis", ErrBadSegment, start, stop)
	}
	return start, stop, nil
}

// segmentEnvelope evaluates the modulator on the segment rebased to start
// at zero, so envelope shapes span the segment rather than the session.
func (s *Synth) segmentEnvelope(m Modulator, tseg []float64) ([]float64, error) {
	if m == nil {
		m = Constant
	}
	rel := make([]float64, len(tseg))
	for i, ts := range tseg {
		rel[i] = ts - tseg[0]
	}
	env := m(rel)
	if len(env) != len(tseg) {
		return nil, fmt.Errorf("%w: modulator returned %d samples for %d timestamps",
			ErrLengthMismatch, len(env), len(tseg))
	}
	return env, nil
}

// Normalize returns a copy of the accumulated signal scaled so its absolute
// peak equals the session ceiling. An all-zero accumulation comes back
// unscaled; the accumulated signal itself is never modified.
func (s *Synth) Normalize() []float64 {
	out := make([]float64, len(s.acc))
	peak := s.Peak()
	if peak == 0 {
		copy(out, s.acc)
		return out
	}
	scale := s.ceiling / peak
	for i, v := range s.acc {
		out[i] = v * scale
	}
	return out
}

// Peak returns the absolute peak of the accumulated signal, 0 when empty.
func (s *Synth) Peak() float64 {
	peak := 0.0
	for _, v := range s.acc {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Apply multiplies a signal with the modulator evaluated over the session
// time axis, sample by sample. The signal must span the whole axis.
func (s *Synth) Apply(signal []float64, m Modulator) ([]float64, error) {
	if s.t == nil {
		return nil, ErrNoTimeAxis
	}
	if m == nil {
		return nil, ErrNilModulator
	}
	if len(signal) != len(s.t) {
		return nil, fmt.Errorf("%w: signal has %d samples for %d timestamps",
			ErrLengthMismatch, len(signal), len(s.t))
	}
	env := m(s.t)
	if len(env) != len(s.t) {
		return nil, fmt.Errorf("%w: modulator returned %d samples for %d timestamps",
			ErrLengthMismatch, len(env), len(s.t))
	}
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v * env[i]
	}
	return out, nil
}

// Render normalizes the accumulated signal and applies the modulator: the
// finished buffer ready for a sink.
func (s *Synth) Render(m Modulator) ([]float64, error) {
	return s.Apply(s.Normalize(), m)
}

// RenderNamed renders with a modulator looked up in the session registry.
func (s *Synth) RenderNamed(name string) ([]float64, error) {
	m, err := s.registry.Modulator(name)
	if err != nil {
		return nil, err
	}
	return s.Render(m)
}

func (s *Synth) SampleRate() int { return s.sampleRate }

func (s *Synth) Ceiling() float64 { return s.ceiling }

// Registry returns the session registry for registering custom waveforms
// and envelopes.
func (s *Synth) Registry() *Registry { return s.registry }

// Len returns the number of timestamps in the current axis, 0 before
// BuildTime.
func (s *Synth) Len() int { return len(s.t) }

// Duration returns the axis length in seconds as actually discretized.
func (s *Synth) Duration() float64 {
	return float64(len(s.t)) / float64(s.sampleRate)
}

// Timestep returns the spacing between timestamps, 1/rate.
func (s *Synth) Timestep() float64 {
	return 1 / float64(s.sampleRate)
}

// Time returns a copy of the time axis, nil before BuildTime.
func (s *Synth) Time() []float64 {
	if s.t == nil {
		return nil
	}
	out := make([]float64, len(s.t))
	copy(out, s.t)
	return out
}

// Signal returns a copy of the raw accumulated signal, nil before
// BuildTime.
func (s *Synth) Signal() []float64 {
	if s.acc == nil {
		return nil
	}
	out := make([]float64, len(s.acc))
	copy(out, s.acc)
	return out
}

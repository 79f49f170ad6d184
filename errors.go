package addsynth

import "errors"

var (
	// ErrInvalidSampleRate is returned by New for a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("addsynth: sample rate must be positive")

	// ErrInvalidCeiling is returned by New when the amplitude ceiling is
	// outside (0, 1].
	ErrInvalidCeiling = errors.New("addsynth: amplitude ceiling must be in (0, 1]")

	// ErrInvalidDuration is returned by BuildTime for a non-positive duration.
	ErrInvalidDuration = errors.New("addsynth: duration must be positive")

	// ErrNoTimeAxis is returned when a wave or modulation is requested before
	// any time axis has been built.
	ErrNoTimeAxis = errors.New("addsynth: no time axis; call BuildTime first")

	// ErrLengthMismatch is returned when a generator or modulator produces a
	// sequence whose length differs from the time axis.
	ErrLengthMismatch = errors.New("addsynth: sample count does not match time axis")

	// ErrNilGenerator and ErrNilModulator reject nil extension functions.
	ErrNilGenerator = errors.New("addsynth: nil generator")
	ErrNilModulator = errors.New("addsynth: nil modulator")

	// ErrUnknownGenerator and ErrUnknownModulator are returned by registry
	// lookups for names that were never registered.
	ErrUnknownGenerator = errors.New("addsynth: unknown generator")
	ErrUnknownModulator = errors.New("addsynth: unknown modulator")

	// ErrBadSegment is returned when a segment's stop offset precedes its
	// start offset, or the segment lies entirely outside the time axis.
	ErrBadSegment = errors.New("addsynth: bad segment offsets")

	// ErrNoSamples is returned by InsertSamples for an empty input buffer.
	ErrNoSamples = errors.New("addsynth: empty sample buffer")

	// ErrNoSink is returned by Play when no playback sink is configured.
	ErrNoSink = errors.New("addsynth: no playback sink configured")
)

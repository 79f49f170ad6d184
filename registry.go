package addsynth

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps names to waveform generators and volume modulators. Each
// Synth owns one; there is no process-wide registry. Names are
// case-insensitive and registering an existing name replaces it.
type Registry struct {
	generators map[string]Generator
	modulators map[string]Modulator
}

// NewRegistry returns a registry seeded with the built-in waveforms
// (sine, square, sawtooth, triangle) and volume shapes (constant, ramp,
// expdecay).
func NewRegistry() *Registry {
	r := &Registry{
		generators: make(map[string]Generator),
		modulators: make(map[string]Modulator),
	}
	r.generators["sine"] = Sine
	r.generators["square"] = Square
	r.generators["sawtooth"] = Sawtooth
	r.generators["triangle"] = Triangle
	r.modulators["constant"] = Constant
	r.modulators["ramp"] = Ramp
	r.modulators["expdecay"] = ExpDecay(1)
	return r
}

// RegisterGenerator adds or replaces a named waveform generator.
func (r *Registry) RegisterGenerator(name string, g Generator) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("addsynth: generator name must not be empty")
	}
	if g == nil {
		return fmt.Errorf("%w: register %q", ErrNilGenerator, key)
	}
	r.generators[key] = g
	return nil
}

// RegisterModulator adds or replaces a named volume modulator.
func (r *Registry) RegisterModulator(name string, m Modulator) error {
	key := normalizeName(name)
	if key == "" {
		return fmt.Errorf("addsynth: modulator name must not be empty")
	}
	if m == nil {
		return fmt.Errorf("%w: register %q", ErrNilModulator, key)
	}
	r.modulators[key] = m
	return nil
}

// Generator looks up a waveform generator by name.
func (r *Registry) Generator(name string) (Generator, error) {
	g, ok := r.generators[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
	return g, nil
}

// Modulator looks up a volume modulator by name.
func (r *Registry) Modulator(name string) (Modulator, error) {
	m, ok := r.modulators[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModulator, name)
	}
	return m, nil
}

// GeneratorNames returns the registered waveform names, sorted.
func (r *Registry) GeneratorNames() []string {
	names := make([]string, 0, len(r.generators))
	for name := range r.generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModulatorNames returns the registered modulator names, sorted.
func (r *Registry) ModulatorNames() []string {
	names := make([]string, 0, len(r.modulators))
	for name := range r.modulators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

package notes

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Semitone offsets of the natural notes within an octave.
var noteOffsets = map[byte]int{
	'c': 0, 'd': 2, 'e': 4, 'f': 5, 'g': 7, 'a': 9, 'b': 11,
}

// Frequency converts a note name like "a4", "c#3" or "eb5" to its equal
// temperament frequency in Hz, tuned to A4 = 440. Sharps are written # or +,
// flats b or -; accidentals stack. Octaves run 0-9.
func Frequency(name string) (float64, error) {
	n, err := midiNote(name)
	if err != nil {
		return 0, err
	}
	return 440 * math.Pow(2, float64(n-69)/12), nil
}

// midiNote parses a note name into its MIDI note number (0-127).
func midiNote(name string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "" {
		return 0, fmt.Errorf("notes: empty note name")
	}
	base, ok := noteOffsets[s[0]]
	if !ok {
		return 0, fmt.Errorf("notes: invalid note %q", name)
	}
	i := 1
	shift := 0
	for i < len(s) {
		c := s[i]
		if c == '#' || c == '+' {
			shift++
		} else if c == 'b' || c == '-' {
			shift--
		} else {
			break
		}
		i++
	}
	if i >= len(s) {
		return 0, fmt.Errorf("notes: missing octave in %q", name)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fmt.Errorf("notes: invalid octave in %q", name)
	}
	n := (octave+1)*12 + base + shift
	if n < 0 || n > 127 {
		return 0, fmt.Errorf("notes: %q out of range", name)
	}
	return n, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/cbegin/addsynth-go"
	"github.com/cbegin/addsynth-go/internal/notes"
)

const defaultNotes = "c4 e4 g4"

func main() {
	var (
		sampleRate  = flag.Int("sample-rate", 44100, "output sample rate")
		seconds     = flag.Float64("seconds", 2.0, "tone duration in seconds")
		ceiling     = flag.Float64("ceiling", 0.8, "peak amplitude as a fraction of full scale (0,1]")
		waveName    = flag.String("wave", "sine", "waveform: sine|square|sawtooth|triangle")
		envName     = flag.String("env", "ramp", "volume envelope: constant|ramp|expdecay")
		noteList    = flag.String("notes", defaultNotes, "space-separated note names, e.g. \"c4 e4 g4\"")
		freqList    = flag.String("freqs", "", "comma-separated frequencies in Hz (overrides -notes)")
		amp         = flag.Float64("amp", 1.0, "relative amplitude per chord component")
		backendName = flag.String("backend", "ebiten", "playback backend: ebiten|portaudio|beep|null")
		analyze     = flag.Bool("analyze", false, "print the dominant frequency before playing")
	)
	flag.Parse()

	freqs, err := resolveFrequencies(*freqList, *noteList)
	if err != nil {
		log.Fatal(err)
	}
	backend, err := parseBackend(*backendName)
	if err != nil {
		log.Fatal(err)
	}

	syn, err := addsynth.New(*sampleRate,
		addsynth.WithCeiling(*ceiling),
		addsynth.WithBackend(backend),
	)
	if err != nil {
		log.Fatal(err)
	}
	gen, err := syn.Registry().Generator(*waveName)
	if err != nil {
		log.Fatal(err)
	}
	if err := syn.BuildTime(*seconds); err != nil {
		log.Fatal(err)
	}
	for _, f := range freqs {
		if err := syn.AddWave(gen, f, *amp); err != nil {
			log.Fatal(err)
		}
	}
	if *analyze {
		f, err := syn.DominantFrequency()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("dominant frequency: %.1f Hz\n", f)
	}
	if err := syn.PlayNamed(*envName); err != nil {
		log.Fatal(err)
	}
	fmt.Println("playback completed")
}

func resolveFrequencies(freqList, noteList string) ([]float64, error) {
	if strings.TrimSpace(freqList) != "" {
		parts := strings.Split(freqList, ",")
		out := make([]float64, 0, len(parts))
		for _, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid frequency %q", strings.TrimSpace(p))
			}
			out = append(out, v)
		}
		return out, nil
	}
	var out []float64
	for _, name := range strings.Fields(noteList) {
		f, err := notes.Frequency(name)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New("no notes or frequencies given")
	}
	return out, nil
}

func parseBackend(name string) (addsynth.Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ebiten":
		return addsynth.BackendEbiten, nil
	case "portaudio":
		return addsynth.BackendPortAudio, nil
	case "beep":
		return addsynth.BackendBeep, nil
	case "null":
		return addsynth.BackendNull, nil
	default:
		return "", fmt.Errorf("invalid -backend %q (expected ebiten|portaudio|beep|null)", name)
	}
}

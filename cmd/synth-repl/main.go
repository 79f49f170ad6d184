package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/cbegin/addsynth-go"
	"github.com/cbegin/addsynth-go/internal/notes"
	"github.com/chzyer/readline"
)

func main() {
	var (
		sampleRate  = flag.Int("sample-rate", 44100, "output sample rate")
		ceiling     = flag.Float64("ceiling", 0.8, "peak amplitude as a fraction of full scale (0,1]")
		backendName = flag.String("backend", "ebiten", "playback backend: ebiten|portaudio|beep|null")
	)
	flag.Parse()

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
	fmt.Printf("additive synth at %d Hz; type help for commands\n", *sampleRate)
	if err := repl(&env{syn: syn}); err != nil && err != io.EOF {
		log.Fatal(err)
	}
}

type env struct {
	syn *addsynth.Synth
}

func repl(e *env) error {
	rl, err := readline.New("synth> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			return err
		}
		if err != nil {
			fmt.Println(err)
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if fields[0] == "help" {
			fmt.Println(usage())
			continue
		}
		if result, err := e.eval(fields[0], fields[1:]); err != nil {
			fmt.Println(err)
		} else if result != "" {
			fmt.Println(result)
		}
	}
}

func (e *env) eval(name string, args []string) (string, error) {
	for _, cmd := range commands {
		if name != cmd.name {
			continue
		}
		if cmd.arity < 0 {
			arity := -cmd.arity
			if len(args) < arity {
				return "", fmt.Errorf("%s: wrong number of arguments: need at least %v, got %v",
					cmd.name, arity, len(args))
			}
		} else if len(args) != cmd.arity {
			return "", fmt.Errorf("%s: wrong number of arguments: want %v, got %v",
				cmd.name, cmd.arity, len(args))
		}
		result, err := cmd.run(e, args)
		if err != nil {
			return result, fmt.Errorf("%s error: %w", cmd.name, err)
		}
		return result, nil
	}
	return "", fmt.Errorf("unknown command: %s (try help)", name)
}

type command struct {
	name  string
	usage string
	run   func(*env, []string) (string, error)
	arity int // -n means len(args) must be >= n
}

var commands = []command{
	{"build", "build <seconds>", buildCommand, 1},
	{"add", "add <wave> <note|hz> [amp]", addCommand, -2},
	{"shape", "shape <wave> <env> <note|hz> <start> <stop> [amp]", shapeCommand, -5},
	{"insert", "insert <file.wav> [start [stop]]", insertCommand, -1},
	{"play", "play <env>", playCommand, 1},
	{"peak", "peak", peakCommand, 0},
	{"analyze", "analyze", analyzeCommand, 0},
	{"waves", "waves", wavesCommand, 0},
	{"envs", "envs", envsCommand, 0},
	{"clear", "clear", clearCommand, 0},
}

func buildCommand(e *env, args []string) (string, error) {
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("invalid duration %q", args[0])
	}
	if err := e.syn.BuildTime(seconds); err != nil {
		return "", err
	}
	return fmt.Sprintf("time axis: %d samples (%.3fs at %d Hz)",
		e.syn.Len(), e.syn.Duration(), e.syn.SampleRate()), nil
}

func addCommand(e *env, args []string) (string, error) {
	freq, err := parsePitch(args[1])
	if err != nil {
		return "", err
	}
	amp := 1.0
	if len(args) > 2 {
		if amp, err = strconv.ParseFloat(args[2], 64); err != nil {
			return "", fmt.Errorf("invalid amplitude %q", args[2])
		}
	}
	if err := e.syn.AddWaveNamed(args[0], freq, amp); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s at %.2f Hz, peak now %.4f", args[0], freq, e.syn.Peak()), nil
}

func shapeCommand(e *env, args []string) (string, error) {
	gen, err := e.syn.Registry().Generator(args[0])
	if err != nil {
		return "", err
	}
	mod, err := e.syn.Registry().Modulator(args[1])
	if err != nil {
		return "", err
	}
	freq, err := parsePitch(args[2])
	if err != nil {
		return "", err
	}
	start, err := strconv.Atoi(args[3])
	if err != nil {
		return "", fmt.Errorf("invalid start offset %q", args[3])
	}
	stop, err := strconv.Atoi(args[4])
	if err != nil {
		return "", fmt.Errorf("invalid stop offset %q", args[4])
	}
	amp := 1.0
	if len(args) > 5 {
		if amp, err = strconv.ParseFloat(args[5], 64); err != nil {
			return "", fmt.Errorf("invalid amplitude %q", args[5])
		}
	}
	if err := e.syn.AddShapedWave(gen, mod, freq, amp, start, stop); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s over [%d, %d], peak now %.4f", args[0], args[1], start, stop, e.syn.Peak()), nil
}

func insertCommand(e *env, args []string) (string, error) {
	samples, rate, err := addsynth.LoadWAV(args[0])
	if err != nil {
		return "", err
	}
	if rate != e.syn.SampleRate() {
		log.Printf("file rate %d Hz differs from session rate %d Hz; playback will shift pitch", rate, e.syn.SampleRate())
	}
	start, stop := 0, -1
	if len(args) > 1 {
		if start, err = strconv.Atoi(args[1]); err != nil {
			return "", fmt.Errorf("invalid start offset %q", args[1])
		}
	}
	if len(args) > 2 {
		if stop, err = strconv.Atoi(args[2]); err != nil {
			return "", fmt.Errorf("invalid stop offset %q", args[2])
		}
	}
	if err := e.syn.InsertSamples(samples, nil, start, stop); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d samples from %s, peak now %.4f", len(samples), args[0], e.syn.Peak()), nil
}

func playCommand(e *env, args []string) (string, error) {
	if err := e.syn.PlayNamed(args[0]); err != nil {
		return "", err
	}
	return "playback completed", nil
}

func peakCommand(e *env, args []string) (string, error) {
	return fmt.Sprintf("peak %.4f", e.syn.Peak()), nil
}

func analyzeCommand(e *env, args []string) (string, error) {
	f, err := e.syn.DominantFrequency()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("dominant frequency: %.1f Hz", f), nil
}

func wavesCommand(e *env, args []string) (string, error) {
	return strings.Join(e.syn.Registry().GeneratorNames(), " "), nil
}

func envsCommand(e *env, args []string) (string, error) {
	return strings.Join(e.syn.Registry().ModulatorNames(), " "), nil
}

func clearCommand(e *env, args []string) (string, error) {
	if e.syn.Len() == 0 {
		return "", fmt.Errorf("no time axis to clear; build one first")
	}
	if err := e.syn.BuildTime(e.syn.Duration()); err != nil {
		return "", err
	}
	return "accumulated signal cleared", nil
}

// usage stays out of the command table: a help entry there would make the
// table's initializer depend on a function that ranges over the table.
func usage() string {
	var b strings.Builder
	for _, cmd := range commands {
		fmt.Fprintf(&b, "  %s\n", cmd.usage)
	}
	b.WriteString("  help\n  quit")
	return b.String()
}

func parsePitch(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	return notes.Frequency(s)
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

package main

import (
	"strings"
	"testing"

	"github.com/cbegin/addsynth-go"
)

func newReplEnv(t *testing.T) *env {
	t.Helper()
	syn, err := addsynth.New(100, addsynth.WithBackend(addsynth.BackendNull))
	if err != nil {
		t.Fatalf("new synth: %v", err)
	}
	return &env{syn: syn}
}

func TestUsageListsEveryCommand(t *testing.T) {
	help := usage()
	for _, cmd := range commands {
		if !strings.Contains(help, cmd.usage) {
			t.Errorf("usage is missing %q", cmd.usage)
		}
	}
	// help and quit are loop commands, not table entries, but still listed.
	if !strings.Contains(help, "help") || !strings.Contains(help, "quit") {
		t.Errorf("usage is missing the loop commands:\n%s", help)
	}
}

func TestEvalArityErrors(t *testing.T) {
	e := newReplEnv(t)
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"play", nil, "play: wrong number of arguments: want 1, got 0"},
		{"add", []string{"sine"}, "add: wrong number of arguments: need at least 2, got 1"},
		{"warble", nil, "unknown command: warble (try help)"},
	}
	for _, tc := range cases {
		_, err := e.eval(tc.name, tc.args)
		if err == nil || err.Error() != tc.want {
			t.Errorf("eval(%s, %v): got %v, want %q", tc.name, tc.args, err, tc.want)
		}
	}
}

func TestEvalDrivesSynth(t *testing.T) {
	e := newReplEnv(t)
	result, err := e.eval("build", []string{"1.0"})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if result != "time axis: 100 samples (1.000s at 100 Hz)" {
		t.Errorf("build result = %q", result)
	}
	// A 5 Hz unit sine at 100 Hz hits its quarter-period peak exactly.
	result, err = e.eval("add", []string{"sine", "5"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if result != "sine at 5.00 Hz, peak now 1.0000" {
		t.Errorf("add result = %q", result)
	}
	result, err = e.eval("analyze", nil)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if result != "dominant frequency: 5.0 Hz" {
		t.Errorf("analyze result = %q", result)
	}
	result, err = e.eval("play", []string{"constant"})
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if result != "playback completed" {
		t.Errorf("play result = %q", result)
	}
}

func TestParseBackendNames(t *testing.T) {
	cases := []struct {
		name string
		want addsynth.Backend
	}{
		{"ebiten", addsynth.BackendEbiten},
		{"PortAudio", addsynth.BackendPortAudio},
		{" beep ", addsynth.BackendBeep},
		{"null", addsynth.BackendNull},
	}
	for _, tc := range cases {
		got, err := parseBackend(tc.name)
		if err != nil {
			t.Errorf("parseBackend(%q): %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseBackend(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
	if _, err := parseBackend("opl3"); err == nil {
		t.Error("expected an error for an unknown backend name")
	}
}

package notes

import (
	"math"
	"testing"
)

func TestFrequencyKnownNotes(t *testing.T) {
	cases := []struct {
		name string
		want float64
	}{
		{"a4", 440},
		{"c4", 261.63},
		{"b3", 246.94},
		{"c#3", 138.59},
		{"eb4", 311.13},
		{"bb2", 116.54},
		{"g7", 3135.96},
		{"c0", 16.35},
	}
	for _, tc := range cases {
		got, err := Frequency(tc.name)
		if err != nil {
			t.Errorf("%s: %v", tc.name, err)
			continue
		}
		if math.Abs(got-tc.want) > 0.01 {
			t.Errorf("%s = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestFrequencyNormalizesInput(t *testing.T) {
	base, err := Frequency("a4")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"A4", " a4 ", "A4 "} {
		got, err := Frequency(name)
		if err != nil {
			t.Errorf("%q: %v", name, err)
			continue
		}
		if got != base {
			t.Errorf("%q = %v, want %v", name, got, base)
		}
	}
}

func TestFrequencyAccidentalSpellings(t *testing.T) {
	sharp, err := Frequency("c#4")
	if err != nil {
		t.Fatal(err)
	}
	plus, err := Frequency("c+4")
	if err != nil {
		t.Fatal(err)
	}
	if sharp != plus {
		t.Errorf("c#4 = %v but c+4 = %v", sharp, plus)
	}
	flat, err := Frequency("db4")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(sharp-flat) > 1e-9 {
		t.Errorf("c#4 = %v but db4 = %v", sharp, flat)
	}
	minus, err := Frequency("d-4")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(flat-minus) > 1e-9 {
		t.Errorf("db4 = %v but d-4 = %v", flat, minus)
	}
}

func TestFrequencyStackedAccidentals(t *testing.T) {
	double, err := Frequency("c##4")
	if err != nil {
		t.Fatal(err)
	}
	d, err := Frequency("d4")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(double-d) > 1e-9 {
		t.Errorf("c##4 = %v, want d4 = %v", double, d)
	}
}

func TestFrequencyRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "h4", "c", "c#", "cx4", "c9999", "4c"} {
		if _, err := Frequency(name); err == nil {
			t.Errorf("%q: expected an error", name)
		}
	}
}

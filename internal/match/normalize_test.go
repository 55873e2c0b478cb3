package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"Mitochondria", "mitochondria"},
		{"  The   Krebs Cycle  ", "the krebs cycle"},
		{"don’t", "don t"},
		{"“quoted”", "quoted"},
		{"a)", "a"},
		{"!!!???", ""},
		{"H2O + CO2", "h2o co2"},
		{"café", "caf"},
		{"3.5", "3 5"},
		{"１２", "12"}, // fullwidth digits fold via NFKC
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Mitochondria!",
		"  a)  option   text ",
		"don’t “stop”",
		"twenty one",
		"H2O + CO2 -> C6H12O6",
	}

	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestOptionToken(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a)", "a"},
		{"A.", "a"},
		{"1.", "1"},
		{"b", "b"},
		{"B) the cell wall", "b"},
		{"mitochondria", "mitochondria"},
		{"the cell wall", "the cell wall"},
		{"", ""},
		{"!!", ""},
	}

	for _, tc := range tests {
		got := OptionToken(tc.input)
		if got != tc.want {
			t.Errorf("OptionToken(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

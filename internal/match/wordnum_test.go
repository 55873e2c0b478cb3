package match

import "testing"

func TestWordNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"zero", 0, true},
		{"three", 3, true},
		{"nineteen", 19, true},
		{"twenty", 20, true},
		{"twenty one", 21, true},
		{"ninety nine", 99, true},
		{"Twenty-One", 21, true}, // hyphen strips to a space
		{"forty two", 42, true},
		{"one two", 3, true}, // greedy left-to-right, no positional notation
		{"hundred", 0, false},
		{"twenty hundred", 0, false},
		{"three apples", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := WordNumber(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("WordNumber(%q) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNumericValue(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"3", 3, true},
		{" 42 ", 42, true},
		{"three", 3, true},
		{"twenty one", 21, true},
		{"zero", 0, true},
		{"abc", 0, false},
		{"", 0, false},
		{"3.5", 0, false}, // the decimal point is stripped by normalization
	}

	for _, tc := range tests {
		got, ok := NumericValue(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("NumericValue(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

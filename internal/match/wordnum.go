package match

import (
	"strconv"
	"strings"
)

// wordValues maps the English number words the matcher understands: zero
// through twenty plus the multiples of ten. No "hundred", ordinals or
// fractions.
var wordValues = map[string]int{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// WordNumber parses a string as a sequence of English number words.
// A tens word (>= 20) followed by a units word (< 10) combines additively,
// so "twenty one" parses to 21. Any token outside the known words makes the
// whole string unparsable: the second return value is false and no partial
// total is reported.
func WordNumber(s string) (int, bool) {
	n := Normalize(s)
	if n == "" {
		return 0, false
	}
	parts := strings.Fields(n)
	total := 0
	for i := 0; i < len(parts); {
		val, ok := wordValues[parts[i]]
		if !ok {
			return 0, false
		}
		if val >= 20 && i+1 < len(parts) {
			if next, ok := wordValues[parts[i+1]]; ok && next < 10 {
				total += val + next
				i += 2
				continue
			}
		}
		total += val
		i++
	}
	return total, true
}

// NumericValue coerces a string to a number: the normalized form is tried as
// a float literal first, then as a word number. The second return value is
// false when neither parse succeeds.
func NumericValue(s string) (float64, bool) {
	n := Normalize(s)
	if n == "" {
		return 0, false
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f, true
	}
	if wn, ok := WordNumber(n); ok {
		return float64(wn), true
	}
	return 0, false
}

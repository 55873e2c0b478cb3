package bank

import (
	"math/rand"
	"sort"
)

// Difficulties returns the difficulty labels present in qs, prefixed by
// "Any". Easy/Medium/Hard come first in that order when present; anything
// else follows alphabetically.
func Difficulties(qs []Question) []string {
	present := make(map[string]bool)
	for _, q := range qs {
		if q.Difficulty != "" {
			present[q.Difficulty] = true
		}
	}

	options := []string{"Any"}
	for _, d := range []string{"Easy", "Medium", "Hard"} {
		if present[d] {
			options = append(options, d)
			delete(present, d)
		}
	}
	rest := make([]string, 0, len(present))
	for d := range present {
		rest = append(rest, d)
	}
	sort.Strings(rest)
	return append(options, rest...)
}

// FilterDifficulty returns the questions with the given difficulty.
// "Any" keeps everything.
func FilterDifficulty(qs []Question, difficulty string) []Question {
	if difficulty == "Any" {
		return append([]Question(nil), qs...)
	}
	var out []Question
	for _, q := range qs {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// FilterMarks returns the questions whose marks fall within [lo, hi]
// inclusive. Bounds are swapped if given in reverse.
func FilterMarks(qs []Question, lo, hi int) []Question {
	if lo > hi {
		lo, hi = hi, lo
	}
	var out []Question
	for _, q := range qs {
		if q.Marks >= lo && q.Marks <= hi {
			out = append(out, q)
		}
	}
	return out
}

// Sample returns count questions drawn randomly from qs without replacement.
// When count >= len(qs) the full set is returned shuffled. Selection is
// plain random sampling; there is no adaptive weighting.
func Sample(qs []Question, count int, rng *rand.Rand) []Question {
	shuffled := append([]Question(nil), qs...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count >= len(shuffled) || count < 0 {
		return shuffled
	}
	return shuffled[:count]
}

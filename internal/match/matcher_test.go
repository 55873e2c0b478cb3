package match

import "testing"

func newTestMatcher() *Matcher {
	return New(DefaultConfig())
}

func TestMatchEmptyResponse(t *testing.T) {
	m := newTestMatcher()

	for _, input := range []string{"", "   ", "!!!", "”’"} {
		res := m.Match(input, []string{"anything", "42"})
		if res.Accepted {
			t.Errorf("Match(%q) accepted, want rejected", input)
		}
		if res.Matched != "" {
			t.Errorf("Match(%q).Matched = %q, want empty", input, res.Matched)
		}
	}
}

func TestMatchEmptyCanonical(t *testing.T) {
	m := newTestMatcher()
	if res := m.Match("something", nil); res.Accepted {
		t.Error("Match with no canonical answers accepted, want rejected")
	}
	if res := m.Match("something", []string{"", "  "}); res.Accepted {
		t.Error("Match with blank canonical answers accepted, want rejected")
	}
}

func TestMatchExact(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		response  string
		canonical string
	}{
		{"Mitochondria", "mitochondria"},
		{"  the krebs cycle ", "The Krebs Cycle"},
		{"don’t know", "don't know"},
	}

	for _, tc := range tests {
		res := m.Match(tc.response, []string{tc.canonical})
		if !res.Accepted || res.Rule != RuleExact {
			t.Errorf("Match(%q, [%q]) = %+v, want exact accept", tc.response, tc.canonical, res)
		}
		if res.Matched != tc.canonical {
			t.Errorf("Matched = %q, want %q", res.Matched, tc.canonical)
		}
	}
}

func TestMatchOptionToken(t *testing.T) {
	m := newTestMatcher()

	// Single-letter equivalence is case-insensitive and tolerant of "." / ")".
	res := m.Match("A", []string{"a"})
	if !res.Accepted {
		t.Fatalf("Match(A, [a]) rejected")
	}

	// Option letter followed by the choice text still matches the bare letter.
	res = m.Match("b) the cell wall", []string{"b"})
	if !res.Accepted || res.Rule != RuleOption {
		t.Errorf("Match(b) the cell wall, [b]) = %+v, want option accept", res)
	}

	res = m.Match("1.", []string{"1) Paris"})
	if !res.Accepted || res.Rule != RuleOption {
		t.Errorf("Match(1., [1) Paris]) = %+v, want option accept", res)
	}

	if res := m.Match("b", []string{"a"}); res.Accepted {
		t.Errorf("Match(b, [a]) accepted, want rejected")
	}
}

func TestMatchNumeric(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		response  string
		canonical string
	}{
		{"3", "three"},
		{"three", "3"},
		{"twenty one", "21"},
		{"21", "twenty one"},
		{"0", "zero"},
	}

	for _, tc := range tests {
		res := m.Match(tc.response, []string{tc.canonical})
		if !res.Accepted || res.Rule != RuleNumeric {
			t.Errorf("Match(%q, [%q]) = %+v, want numeric accept", tc.response, tc.canonical, res)
		}
	}

	if res := m.Match("22", []string{"twenty one"}); res.Accepted {
		t.Error("Match(22, [twenty one]) accepted, want rejected")
	}
}

func TestMatchContainment(t *testing.T) {
	m := newTestMatcher()

	res := m.Match("the answer is mitochondria for sure", []string{"mitochondria"})
	if !res.Accepted || res.Rule != RuleContainment {
		t.Errorf("containment = %+v, want containment accept", res)
	}

	// Containment runs canonical-in-response only, not the reverse.
	if res := m.Match("mito", []string{"mitochondria"}); res.Accepted {
		t.Errorf("Match(mito, [mitochondria]) = %+v, want rejected", res)
	}
}

func TestMatchFuzzy(t *testing.T) {
	m := newTestMatcher()

	res := m.Match("mitocondria", []string{"mitochondria"})
	if !res.Accepted || res.Rule != RuleFuzzy {
		t.Errorf("Match(mitocondria) = %+v, want fuzzy accept", res)
	}

	if res := m.Match("cell", []string{"mitochondria"}); res.Accepted {
		t.Errorf("Match(cell, [mitochondria]) = %+v, want rejected", res)
	}
}

func TestMatchFuzzyUsesFallbackScorer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Scorer = &resilientScorer{preferred: panickyScorer{}, fallback: MatchingBlocksScorer{}}
	m := New(cfg)

	res := m.Match("mitocondria", []string{"mitochondria"})
	if !res.Accepted || res.Rule != RuleFuzzy {
		t.Errorf("fallback fuzzy = %+v, want fuzzy accept", res)
	}
}

// The cascade is per-candidate: every rule is tried for a canonical answer
// before the next one is considered, so an earlier candidate accepted by
// fuzzy wins over a later candidate that would match exactly.
func TestMatchRulePriority(t *testing.T) {
	m := newTestMatcher()

	// Exact beats fuzzy on the same candidate list when it comes first.
	res := m.Match("mitochondria", []string{"mitochondria", "mitocondria"})
	if !res.Accepted || res.Rule != RuleExact || res.Matched != "mitochondria" {
		t.Errorf("got %+v, want exact match on first candidate", res)
	}

	// An earlier candidate's fuzzy hit short-circuits a later exact one.
	res = m.Match("photosynthesis", []string{"photosynthesiss", "photosynthesis"})
	if !res.Accepted || res.Rule != RuleFuzzy || res.Matched != "photosynthesiss" {
		t.Errorf("got %+v, want fuzzy match on first candidate", res)
	}

	// Containment beats fuzzy within a single candidate.
	res = m.Match("it is the mitochondria", []string{"mitochondria"})
	if res.Rule != RuleContainment {
		t.Errorf("rule = %v, want containment", res.Rule)
	}
}

func TestMatchDeterministic(t *testing.T) {
	m := newTestMatcher()
	canonical := []string{"twenty one", "b)", "the krebs cycle"}

	first := m.Match("21", canonical)
	for i := 0; i < 5; i++ {
		if got := m.Match("21", canonical); got != first {
			t.Fatalf("Match not deterministic: %+v != %+v", got, first)
		}
	}
}

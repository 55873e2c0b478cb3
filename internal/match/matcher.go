// Package match decides whether a free-text response should be accepted
// against one or more canonical answers. Both sides go through the same
// normalization pipeline, then a fixed cascade of equivalence rules is tried:
// exact, option token, numeric, containment, fuzzy similarity.
package match

import (
	"math"
	"strings"
)

// Rule identifies which equivalence rule accepted a response.
type Rule int

const (
	RuleNone Rule = iota
	RuleExact
	RuleOption
	RuleNumeric
	RuleContainment
	RuleFuzzy
)

func (r Rule) String() string {
	switch r {
	case RuleExact:
		return "exact"
	case RuleOption:
		return "option"
	case RuleNumeric:
		return "numeric"
	case RuleContainment:
		return "containment"
	case RuleFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Result is the outcome of a Match call. Matched holds the canonical answer
// string (as given, not normalized) that triggered acceptance; it is empty
// when the response is rejected.
type Result struct {
	Accepted bool
	Matched  string
	Rule     Rule
}

// Config holds the tunable constants of the matcher. Values are fixed at
// construction; the matcher itself carries no mutable state.
type Config struct {
	// FuzzyThreshold is the minimum 0-100 similarity for the last-resort
	// fuzzy rule.
	FuzzyThreshold float64

	// Epsilon bounds the absolute difference for numeric equality. It
	// guards float representation artifacts, not pedagogical closeness.
	Epsilon float64

	// Scorer computes fuzzy similarity. Nil selects NewScorer().
	Scorer Scorer
}

// DefaultConfig returns the standard matcher constants.
func DefaultConfig() Config {
	return Config{
		FuzzyThreshold: 88.0,
		Epsilon:        1e-9,
	}
}

// Matcher checks responses against canonical answers. Safe for concurrent
// use: Match is a pure function of its inputs and the fixed config.
type Matcher struct {
	cfg    Config
	scorer Scorer
}

// New creates a Matcher with the given config.
func New(cfg Config) *Matcher {
	scorer := cfg.Scorer
	if scorer == nil {
		scorer = NewScorer()
	}
	return &Matcher{cfg: cfg, scorer: scorer}
}

// Match reports whether response should be accepted against any of the
// canonical answers. Candidates are scanned in the order given and each
// candidate runs the full rule cascade (exact, option token, numeric,
// containment, fuzzy) before the next candidate is considered; the first
// rule to succeed ends the call. Empty input never matches and never errors.
func (m *Matcher) Match(response string, canonical []string) Result {
	userNorm := Normalize(response)
	userOpt := OptionToken(response)
	userNum, userIsNum := NumericValue(response)

	for _, ca := range canonical {
		caNorm := Normalize(ca)
		caOpt := OptionToken(ca)

		if userNorm != "" && caNorm != "" && userNorm == caNorm {
			return Result{Accepted: true, Matched: ca, Rule: RuleExact}
		}

		if userOpt != "" && caOpt != "" && userOpt == caOpt {
			return Result{Accepted: true, Matched: ca, Rule: RuleOption}
		}

		if userIsNum {
			if caNum, ok := NumericValue(ca); ok && math.Abs(userNum-caNum) < m.cfg.Epsilon {
				return Result{Accepted: true, Matched: ca, Rule: RuleNumeric}
			}
		}

		if caNorm != "" && strings.Contains(userNorm, caNorm) {
			return Result{Accepted: true, Matched: ca, Rule: RuleContainment}
		}

		if userNorm != "" && caNorm != "" {
			if m.scorer.Score(userNorm, caNorm) >= m.cfg.FuzzyThreshold {
				return Result{Accepted: true, Matched: ca, Rule: RuleFuzzy}
			}
		}
	}

	return Result{}
}

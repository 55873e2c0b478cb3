package match

import (
	"math"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/pmezard/go-difflib/difflib"
)

// Scorer computes a similarity score between two normalized strings on a
// 0-100 scale.
type Scorer interface {
	Score(a, b string) float64
}

// TokenSortScorer is the preferred similarity strategy: tokens are sorted
// before comparison, making the score insensitive to word order, then the
// joined forms are compared with a Levenshtein-based ratio.
type TokenSortScorer struct {
	params *levenshtein.Params
}

// NewTokenSortScorer returns a TokenSortScorer with default Levenshtein
// parameters.
func NewTokenSortScorer() *TokenSortScorer {
	return &TokenSortScorer{params: levenshtein.NewParams()}
}

func (t *TokenSortScorer) Score(a, b string) float64 {
	return levenshtein.Similarity(sortTokens(a), sortTokens(b), t.params) * 100.0
}

func sortTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

// MatchingBlocksScorer is the fallback strategy: a character-level
// longest-matching-blocks ratio, scaled to 0-100.
type MatchingBlocksScorer struct{}

func (MatchingBlocksScorer) Score(a, b string) float64 {
	m := difflib.NewMatcher(explode(a), explode(b))
	return m.Ratio() * 100.0
}

func explode(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// resilientScorer runs the preferred strategy and substitutes the fallback
// whenever the preferred one panics or produces a score outside 0-100. The
// caller never sees an error from a misbehaving strategy.
type resilientScorer struct {
	preferred Scorer
	fallback  Scorer
}

func (r *resilientScorer) Score(a, b string) (score float64) {
	defer func() {
		if recover() != nil {
			score = r.fallback.Score(a, b)
		}
	}()
	score = r.preferred.Score(a, b)
	if math.IsNaN(score) || score < 0 || score > 100 {
		score = r.fallback.Score(a, b)
	}
	return score
}

// NewScorer binds the default similarity strategy: token-sort ratio when
// usable, longest-matching-blocks otherwise.
func NewScorer() Scorer {
	return &resilientScorer{
		preferred: NewTokenSortScorer(),
		fallback:  MatchingBlocksScorer{},
	}
}

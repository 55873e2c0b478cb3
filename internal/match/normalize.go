package match

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Smart quotes are folded to their ASCII forms before stripping so that
	// "don’t" and "don't" normalize identically.
	quoteReplacer = strings.NewReplacer(
		"’", "'",
		"‘", "'",
		"“", `"`,
		"”", `"`,
	)

	nonAlnumRe    = regexp.MustCompile(`[^0-9a-z\s]`)
	multiSpaceRe  = regexp.MustCompile(`\s+`)
	optionTokenRe = regexp.MustCompile(`^([a-z0-9])[.)]?$`)
)

// Normalize applies the text-cleanup pipeline used on both sides of every
// comparison: NFKC fold, smart-quote replacement, lowercasing, stripping of
// everything but ASCII letters, digits and whitespace, then whitespace
// collapse and trim. The pipeline is idempotent; normalizing an empty or
// punctuation-only string yields "".
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = quoteReplacer.Replace(s)
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonAlnumRe.ReplaceAllString(s, " ")
	s = multiSpaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// OptionToken reduces a response to its multiple-choice option token when it
// has one. "a)", "A." and "1." all reduce to "a" / "1". When the first token
// is not a single alphanumeric character the full normalized text is
// returned, so OptionToken equality degenerates to exact equality for
// free-text answers.
func OptionToken(s string) string {
	n := Normalize(s)
	if n == "" {
		return ""
	}
	first := strings.Fields(n)[0]
	if m := optionTokenRe.FindStringSubmatch(first); m != nil {
		return m[1]
	}
	return n
}

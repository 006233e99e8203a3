package keyword

import (
	"strings"

	"github.com/speechmetrics/commscore/internal/text"
)

const DefaultFuzzyThreshold = 85.0

// Result partitions a criterion's keyword set: every keyword lands in exactly
// one of Found or Missing, both in criterion order with original casing.
type Result struct {
	Found    []string
	Missing  []string
	Coverage float64
}

// Matcher checks criterion keywords against a normalized transcript.
type Matcher struct {
	fuzzyThreshold float64
}

type Option func(*Matcher)

// WithFuzzyThreshold sets the minimum similarity ratio (0-100] for the fuzzy
// fallback on single-word keywords. Zero disables the fallback entirely.
func WithFuzzyThreshold(threshold float64) Option {
	return func(m *Matcher) {
		m.fuzzyThreshold = threshold
	}
}

func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{fuzzyThreshold: DefaultFuzzyThreshold}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Match reports which keywords appear in the transcript. tokens and normText
// must both derive from the same transcript via text.Tokens and
// text.Normalize. Single-word keywords require an exact token hit (or a fuzzy
// one when enabled); multi-word keywords match as a space-boundary contiguous
// run in normText. Coverage is |found|/|keywords|, or 1.0 for an empty
// keyword set since nothing expected means nothing can be missing.
func (m *Matcher) Match(tokens []string, normText string, keywords []string) Result {
	if len(keywords) == 0 {
		return Result{Coverage: 1.0}
	}

	var res Result
	for _, kw := range keywords {
		if m.matches(tokens, normText, text.Normalize(kw)) {
			res.Found = append(res.Found, kw)
		} else {
			res.Missing = append(res.Missing, kw)
		}
	}
	res.Coverage = float64(len(res.Found)) / float64(len(keywords))

	return res
}

func (m *Matcher) matches(tokens []string, normText, normKw string) bool {
	if normKw == "" {
		return false
	}

	if strings.Contains(normKw, " ") {
		return containsPhrase(normText, normKw)
	}

	for _, tok := range tokens {
		if tok == normKw {
			return true
		}
	}

	if m.fuzzyThreshold <= 0 {
		return false
	}
	for _, tok := range tokens {
		if Ratio(normKw, tok) >= m.fuzzyThreshold {
			return true
		}
	}

	return false
}

// containsPhrase reports whether phrase occurs in s on word boundaries. Both
// arguments must already be normalized, so a boundary is either a space or an
// end of the string.
func containsPhrase(s, phrase string) bool {
	if s == phrase {
		return true
	}

	return strings.HasPrefix(s, phrase+" ") ||
		strings.HasSuffix(s, " "+phrase) ||
		strings.Contains(s, " "+phrase+" ")
}

package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/speechmetrics/commscore/internal/text"
)

func matchText(t *testing.T, m *Matcher, transcript string, keywords []string) Result {
	t.Helper()
	return m.Match(text.Tokens(transcript), text.Normalize(transcript), keywords)
}

func TestMatcher_Match(t *testing.T) {
	tests := []struct {
		name         string
		transcript   string
		keywords     []string
		wantFound    []string
		wantMissing  []string
		wantCoverage float64
	}{
		{
			name:         "exact token hit",
			transcript:   "The delivery was clear and well paced",
			keywords:     []string{"clear", "concise"},
			wantFound:    []string{"clear"},
			wantMissing:  []string{"concise"},
			wantCoverage: 0.5,
		},
		{
			name:         "case insensitive",
			transcript:   "CLEAR structure throughout",
			keywords:     []string{"clear"},
			wantFound:    []string{"clear"},
			wantMissing:  nil,
			wantCoverage: 1.0,
		},
		{
			name:         "no substring false positive",
			transcript:   "we should start early",
			keywords:     []string{"art"},
			wantFound:    nil,
			wantMissing:  []string{"art"},
			wantCoverage: 0.0,
		},
		{
			name:         "phrase matched contiguously",
			transcript:   "She maintained eye contact with the audience.",
			keywords:     []string{"eye contact"},
			wantFound:    []string{"eye contact"},
			wantMissing:  nil,
			wantCoverage: 1.0,
		},
		{
			name:         "phrase words present but apart",
			transcript:   "her eye caught the contact lens",
			keywords:     []string{"eye contact"},
			wantFound:    nil,
			wantMissing:  []string{"eye contact"},
			wantCoverage: 0.0,
		},
		{
			name:         "phrase at text boundaries",
			transcript:   "body language matters",
			keywords:     []string{"body language"},
			wantFound:    []string{"body language"},
			wantMissing:  nil,
			wantCoverage: 1.0,
		},
		{
			name:         "phrase across punctuation",
			transcript:   "strong body, language aside",
			keywords:     []string{"body language"},
			wantFound:    []string{"body language"},
			wantMissing:  nil,
			wantCoverage: 1.0,
		},
		{
			name:         "zero keywords gives full credit",
			transcript:   "anything at all",
			keywords:     nil,
			wantFound:    nil,
			wantMissing:  nil,
			wantCoverage: 1.0,
		},
		{
			name:         "original casing preserved in criterion order",
			transcript:   "vocabulary and grammar were fine",
			keywords:     []string{"Grammar", "Vocabulary", "Fluency"},
			wantFound:    []string{"Grammar", "Vocabulary"},
			wantMissing:  []string{"Fluency"},
			wantCoverage: 2.0 / 3.0,
		},
		{
			name:         "unmatchable punctuation keyword stays missing",
			transcript:   "some words here",
			keywords:     []string{"!!!"},
			wantFound:    nil,
			wantMissing:  []string{"!!!"},
			wantCoverage: 0.0,
		},
	}

	m := NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := matchText(t, m, tt.transcript, tt.keywords)

			assert.Equal(t, tt.wantFound, res.Found)
			assert.Equal(t, tt.wantMissing, res.Missing)
			assert.InDelta(t, tt.wantCoverage, res.Coverage, 1e-9)
			assert.Len(t, append(res.Found, res.Missing...), len(tt.keywords))
		})
	}
}

func TestMatcher_FuzzyFallback(t *testing.T) {
	t.Run("near miss counts as found", func(t *testing.T) {
		m := NewMatcher()
		res := matchText(t, m, "their comunication style improved", []string{"communication"})

		assert.Equal(t, []string{"communication"}, res.Found)
		assert.InDelta(t, 1.0, res.Coverage, 1e-9)
	})

	t.Run("distant word stays missing", func(t *testing.T) {
		m := NewMatcher()
		res := matchText(t, m, "the cloud hung low", []string{"clear"})

		assert.Equal(t, []string{"clear"}, res.Missing)
	})

	t.Run("threshold zero disables fallback", func(t *testing.T) {
		m := NewMatcher(WithFuzzyThreshold(0))
		res := matchText(t, m, "their comunication style improved", []string{"communication"})

		assert.Equal(t, []string{"communication"}, res.Missing)
		assert.InDelta(t, 0.0, res.Coverage, 1e-9)
	})

	t.Run("stricter threshold rejects near miss", func(t *testing.T) {
		m := NewMatcher(WithFuzzyThreshold(99))
		res := matchText(t, m, "their comunication style improved", []string{"communication"})

		assert.Equal(t, []string{"communication"}, res.Missing)
	})
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "clear", b: "clear", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "clear", b: "", want: 0},
		{name: "single deletion", a: "communication", b: "comunication", want: 100 * (1 - 1.0/13.0)},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 100 * (1 - 3.0/7.0)},
		{name: "completely different", a: "ab", b: "xy", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Ratio(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, Ratio(tt.b, tt.a), 1e-9)
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "empty to word", a: "", b: "word", want: 4},
		{name: "substitution", a: "flaw", b: "flow", want: 1},
		{name: "insertion", a: "pace", b: "space", want: 1},
		{name: "unicode runes", a: "café", b: "cafe", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, levenshtein(tt.a, tt.b))
		})
	}
}

package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases s, replaces every rune that is not a letter, digit or
// underscore with a space and collapses whitespace runs. "Well-known FACT!"
// becomes "well known fact". The result is the canonical form keyword
// matching operates on.
func Normalize(s string) string {
	out := make([]rune, 0, len(s))
	sep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			if sep && len(out) > 0 {
				out = append(out, ' ')
			}
			sep = false
			out = append(out, unicode.ToLower(r))
		default:
			sep = true
		}
	}

	return string(out)
}

// Tokens returns the normalized words of s in order.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// WordCount counts whitespace-separated words in the raw text. Punctuation
// stays attached to its word, so "Hello, world!" counts two words. Length
// limits and length scoring both use this count.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

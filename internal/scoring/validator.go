package scoring

import (
	"fmt"

	"github.com/speechmetrics/commscore/internal/apperr"
	"github.com/speechmetrics/commscore/internal/text"
)

// Default transcript bounds, counted in whitespace-separated words.
const (
	DefaultMinTranscriptWords = 10
	DefaultMaxTranscriptWords = 500
)

// Bounds is the accepted transcript word range. Transcripts outside it are
// rejected before any criterion work starts.
type Bounds struct {
	MinWords int
	MaxWords int
}

func DefaultBounds() Bounds {
	return Bounds{
		MinWords: DefaultMinTranscriptWords,
		MaxWords: DefaultMaxTranscriptWords,
	}
}

// Validate counts the transcript's words and checks them against the bounds.
// The count is returned either way so callers that pass validation reuse it
// instead of recounting per criterion.
func (b Bounds) Validate(transcript string) (int, error) {
	wordCount := text.WordCount(transcript)

	if wordCount < b.MinWords {
		return wordCount, apperr.NewValidation(
			fmt.Sprintf("Transcript must contain at least %d words", b.MinWords))
	}
	if wordCount > b.MaxWords {
		return wordCount, apperr.NewValidation(
			fmt.Sprintf("Transcript exceeds maximum length of %d words", b.MaxWords))
	}

	return wordCount, nil
}

package scoring

import (
	"fmt"

	"github.com/speechmetrics/commscore/pkg/utils"
)

// DefaultOverrunWindow sizes the over-length penalty band as a multiple of a
// criterion's max_words. With 1.0 the score falls linearly from 1.0 at
// max_words to 0.0 at 2*max_words.
const DefaultOverrunWindow = 1.0

// LengthEvaluator scores word-count conformance against a criterion's
// recommended range. Inside the range the score is 1.0; outside it decays
// linearly instead of dropping off a cliff, so a transcript one word over
// the limit is barely penalized.
type LengthEvaluator struct {
	overrunWindow float64
}

type LengthOption func(*LengthEvaluator)

// WithOverrunWindow overrides the over-length decay band. The window is the
// fraction of max_words past the limit at which the score reaches zero.
func WithOverrunWindow(window float64) LengthOption {
	return func(le *LengthEvaluator) {
		if window > 0 {
			le.overrunWindow = window
		}
	}
}

func NewLengthEvaluator(opts ...LengthOption) LengthEvaluator {
	le := LengthEvaluator{overrunWindow: DefaultOverrunWindow}
	for _, opt := range opts {
		opt(&le)
	}

	return le
}

// Evaluate returns a conformance score in [0,1] and a feedback line for the
// result. Below min_words the score is wordCount/min_words; above max_words
// it decays across the overrun window and floors at zero.
func (le LengthEvaluator) Evaluate(wordCount, minWords, maxWords int) (float64, string) {
	if wordCount < minWords {
		score := utils.Clamp01(float64(wordCount) / float64(minWords))
		feedback := fmt.Sprintf(
			"Transcript is shorter than recommended (%d/%d words). Consider adding more detail.",
			wordCount, minWords)
		return score, feedback
	}

	if wordCount > maxWords {
		excess := float64(wordCount - maxWords)
		window := le.overrunWindow * float64(maxWords)
		score := utils.Clamp01(1 - excess/window)
		feedback := fmt.Sprintf(
			"Transcript exceeds recommended length (%d/%d words). Consider being more concise.",
			wordCount, maxWords)
		return score, feedback
	}

	return 1.0, "Good length - within recommended range."
}

package scoring

// CriterionResult is the scored breakdown for one rubric criterion. Scores
// are integers in [0,100]. Degraded marks results where the semantic signal
// was unavailable and the neutral fallback stood in for it.
type CriterionResult struct {
	Name               string
	Description        string
	Score              int
	Weight             float64
	SemanticSimilarity int
	KeywordsFound      []string
	KeywordsMissing    []string
	LengthFeedback     string
	Degraded           bool
}

// Result is the engine's output for one transcript. Criteria keep the
// rubric's declaration order; nothing is re-sorted by score.
type Result struct {
	OverallScore int
	TotalWords   int
	Criteria     []CriterionResult
}

// Degraded reports whether any criterion scored without its semantic signal.
func (r *Result) Degraded() bool {
	for _, c := range r.Criteria {
		if c.Degraded {
			return true
		}
	}

	return false
}

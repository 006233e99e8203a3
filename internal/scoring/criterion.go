package scoring

import (
	"context"
	"log/slog"

	"github.com/speechmetrics/commscore/internal/rubric"
	"github.com/speechmetrics/commscore/pkg/utils"
)

// Sub-score weights combining the keyword, semantic and length signals into
// one criterion score. They are engine constants rather than rubric fields
// so the aggregation formula stays auditable across rubrics.
const (
	KeywordWeight  = 0.40
	SemanticWeight = 0.50
	LengthWeight   = 0.10
)

// DefaultNeutralSimilarity stands in for the semantic signal when the
// provider fails. Halfway keeps the keyword and length signals useful
// without rewarding or punishing the outage.
const DefaultNeutralSimilarity = 0.5

func (e *Engine) scoreCriterion(ctx context.Context, c rubric.Criterion, transcript string, tokens []string, normText string, wordCount int) CriterionResult {
	kw := e.matcher.Match(tokens, normText, c.Keywords)
	lengthScore, lengthFeedback := e.length.Evaluate(wordCount, c.MinWords, c.MaxWords)
	similarity, degraded := e.similarity(ctx, transcript, c)

	combined := KeywordWeight*kw.Coverage + SemanticWeight*similarity + LengthWeight*lengthScore

	return CriterionResult{
		Name:               c.Name,
		Description:        c.Description,
		Score:              utils.RoundInt(100 * utils.Clamp01(combined)),
		Weight:             c.Weight,
		SemanticSimilarity: utils.RoundInt(100 * similarity),
		KeywordsFound:      kw.Found,
		KeywordsMissing:    kw.Missing,
		LengthFeedback:     lengthFeedback,
		Degraded:           degraded,
	}
}

// similarity resolves the semantic sub-score for one criterion. Provider
// failures degrade to the neutral fallback instead of failing the scoring
// call; the result carries the degraded flag so callers can tell.
func (e *Engine) similarity(ctx context.Context, transcript string, c rubric.Criterion) (float64, bool) {
	sim, err := e.provider.Similarity(ctx, transcript, c.ReferenceText())
	if err != nil {
		slog.Warn("Semantic similarity unavailable, falling back to neutral",
			"criterion", c.Name, "error", err)
		return e.neutralSimilarity, true
	}

	return utils.Clamp01(sim), false
}

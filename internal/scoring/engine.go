package scoring

import (
	"context"
	"strings"
	"sync"

	"github.com/speechmetrics/commscore/internal/keyword"
	"github.com/speechmetrics/commscore/internal/rubric"
	"github.com/speechmetrics/commscore/internal/semantic"
	"github.com/speechmetrics/commscore/internal/text"
	"github.com/speechmetrics/commscore/pkg/utils"
)

// Engine scores transcripts against one validated rubric. It is safe for
// concurrent use: the rubric is read-only after construction and every call
// works on its own transcript state.
type Engine struct {
	rubric   rubric.Rubric
	provider semantic.Provider
	matcher  *keyword.Matcher
	length   LengthEvaluator
	bounds   Bounds

	neutralSimilarity float64
}

type Option func(*Engine)

// WithBounds overrides the accepted transcript word range.
func WithBounds(b Bounds) Option {
	return func(e *Engine) {
		e.bounds = b
	}
}

// WithMatcher swaps the keyword matcher, e.g. to change the fuzzy threshold.
func WithMatcher(m *keyword.Matcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithLengthEvaluator swaps the length evaluator, e.g. to widen the
// over-length decay window.
func WithLengthEvaluator(le LengthEvaluator) Option {
	return func(e *Engine) {
		e.length = le
	}
}

// WithNeutralSimilarity overrides the fallback similarity used for degraded
// criteria.
func WithNeutralSimilarity(sim float64) Option {
	return func(e *Engine) {
		e.neutralSimilarity = utils.Clamp01(sim)
	}
}

// NewEngine validates the rubric and builds an engine around it. A rubric
// that fails validation never produces an engine, so scoring calls can trust
// criterion weights and word bounds unconditionally.
func NewEngine(rb rubric.Rubric, provider semantic.Provider, opts ...Option) (*Engine, error) {
	if err := rb.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		rubric:            rb,
		provider:          provider,
		matcher:           keyword.NewMatcher(),
		length:            NewLengthEvaluator(),
		bounds:            DefaultBounds(),
		neutralSimilarity: DefaultNeutralSimilarity,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Rubric returns the rubric the engine scores against.
func (e *Engine) Rubric() rubric.Rubric {
	return e.rubric
}

// Score evaluates one transcript against every rubric criterion and returns
// the weighted overall result. Criteria are independent, so each one scores
// on its own goroutine; a slow or failing similarity call degrades that
// criterion alone and never blocks or cancels its siblings.
func (e *Engine) Score(ctx context.Context, transcript string) (*Result, error) {
	transcript = strings.TrimSpace(transcript)

	wordCount, err := e.bounds.Validate(transcript)
	if err != nil {
		return nil, err
	}

	tokens := text.Tokens(transcript)
	normText := text.Normalize(transcript)

	criteria := make([]CriterionResult, len(e.rubric.Criteria))
	var wg sync.WaitGroup
	wg.Add(len(e.rubric.Criteria))
	for i, c := range e.rubric.Criteria {
		go func() {
			defer wg.Done()
			criteria[i] = e.scoreCriterion(ctx, c, transcript, tokens, normText, wordCount)
		}()
	}
	wg.Wait()

	return e.aggregate(wordCount, criteria), nil
}

// aggregate folds the per-criterion scores into the overall weighted score.
// Criterion order mirrors the rubric; the word count was computed once
// during validation and is reused here.
func (e *Engine) aggregate(wordCount int, criteria []CriterionResult) *Result {
	var overall float64
	for _, cr := range criteria {
		overall += float64(cr.Score) * cr.Weight
	}

	return &Result{
		OverallScore: utils.RoundInt(utils.Clamp(overall, 0, 100)),
		TotalWords:   wordCount,
		Criteria:     criteria,
	}
}

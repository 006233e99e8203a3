package dto

import (
	"github.com/speechmetrics/commscore/internal/scoring"
)

// ScoreRequest is the body of POST /score.
type ScoreRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
}

// CriterionResult mirrors scoring.CriterionResult with the snake_case field
// names the transport contract promises. Keyword lists serialize as [] rather
// than null so consumers can iterate without a nil check.
type CriterionResult struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Score              int      `json:"score"`
	Weight             float64  `json:"weight"`
	SemanticSimilarity int      `json:"semantic_similarity"`
	KeywordsFound      []string `json:"keywords_found"`
	KeywordsMissing    []string `json:"keywords_missing"`
	LengthFeedback     string   `json:"length_feedback"`
	Degraded           bool     `json:"degraded,omitempty"`
}

type ScoringResponse struct {
	OverallScore int               `json:"overall_score"`
	TotalWords   int               `json:"total_words"`
	Criteria     []CriterionResult `json:"criteria"`
}

// FromScoringResult maps the engine's canonical result onto the wire shape.
// The mapping owns the case style; the engine model stays format-agnostic.
func FromScoringResult(res *scoring.Result) ScoringResponse {
	criteria := make([]CriterionResult, len(res.Criteria))
	for i, cr := range res.Criteria {
		criteria[i] = CriterionResult{
			Name:               cr.Name,
			Description:        cr.Description,
			Score:              cr.Score,
			Weight:             cr.Weight,
			SemanticSimilarity: cr.SemanticSimilarity,
			KeywordsFound:      orEmpty(cr.KeywordsFound),
			KeywordsMissing:    orEmpty(cr.KeywordsMissing),
			LengthFeedback:     cr.LengthFeedback,
			Degraded:           cr.Degraded,
		}
	}

	return ScoringResponse{
		OverallScore: res.OverallScore,
		TotalWords:   res.TotalWords,
		Criteria:     criteria,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}

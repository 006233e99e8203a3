package dto

import (
	"github.com/speechmetrics/commscore/internal/rubric"
)

// Criterion is the wire form of one rubric criterion, as served by
// GET /rubric.
type Criterion struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Weight      float64  `json:"weight"`
	MinWords    int      `json:"min_words"`
	MaxWords    int      `json:"max_words"`
}

type RubricResponse struct {
	Rubric []Criterion `json:"rubric"`
}

func FromRubric(rb rubric.Rubric) RubricResponse {
	criteria := make([]Criterion, len(rb.Criteria))
	for i, c := range rb.Criteria {
		criteria[i] = Criterion{
			Name:        c.Name,
			Description: c.Description,
			Keywords:    orEmpty(c.Keywords),
			Weight:      c.Weight,
			MinWords:    c.MinWords,
			MaxWords:    c.MaxWords,
		}
	}

	return RubricResponse{Rubric: criteria}
}

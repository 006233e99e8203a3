package rubric

import (
	"fmt"
	"math"
	"strings"

	"github.com/speechmetrics/commscore/internal/apperr"
)

// WeightTolerance is the numerical slack allowed when criterion weights are
// checked against a total of 1.0.
const WeightTolerance = 1e-3

// Criterion is one scored dimension of a rubric: its reference description,
// the keywords evidence is expected to contain, its share of the overall
// score and the recommended word range.
type Criterion struct {
	Name        string
	Description string
	Keywords    []string
	Weight      float64
	MinWords    int
	MaxWords    int
}

// ReferenceText builds the comparison text used for semantic similarity: the
// description followed by the keyword list, or the description alone when
// the criterion has no keywords.
func (c Criterion) ReferenceText() string {
	if len(c.Keywords) == 0 {
		return c.Description
	}

	return c.Description + ". Keywords: " + strings.Join(c.Keywords, ", ")
}

// Rubric is an ordered sequence of criteria sharing one weight budget. It is
// constructed once at startup and read concurrently without locking after
// that; nothing mutates it post-load.
type Rubric struct {
	Criteria []Criterion
}

// ReferenceTexts collects every criterion's reference text in rubric order,
// ready for batch embedding at startup.
func (r Rubric) ReferenceTexts() []string {
	refs := make([]string, len(r.Criteria))
	for i, c := range r.Criteria {
		refs[i] = c.ReferenceText()
	}

	return refs
}

// Validate rejects rubrics the engine must never score against and reports
// the first violation found. Loaders call it after parsing and the engine
// calls it again at construction, so a bad rubric can never reach a scoring
// request.
func (r Rubric) Validate() error {
	if len(r.Criteria) == 0 {
		return apperr.NewRubric("rubric has no criteria")
	}

	seen := make(map[string]struct{}, len(r.Criteria))
	total := 0.0
	for i, c := range r.Criteria {
		if c.Name == "" {
			return apperr.NewRubric(fmt.Sprintf("criterion at index %d has no name", i))
		}
		if _, ok := seen[c.Name]; ok {
			return apperr.NewRubric(fmt.Sprintf("duplicate criterion name %q", c.Name))
		}
		seen[c.Name] = struct{}{}

		if c.Weight < 0 || c.Weight > 1 {
			return apperr.NewRubric(fmt.Sprintf("criterion %q: weight %v outside [0,1]", c.Name, c.Weight))
		}
		if c.MinWords < 0 {
			return apperr.NewRubric(fmt.Sprintf("criterion %q: min_words %d is negative", c.Name, c.MinWords))
		}
		if c.MaxWords < 1 {
			return apperr.NewRubric(fmt.Sprintf("criterion %q: max_words %d must be positive", c.Name, c.MaxWords))
		}
		if c.MinWords > c.MaxWords {
			return apperr.NewRubric(fmt.Sprintf("criterion %q: min_words %d exceeds max_words %d", c.Name, c.MinWords, c.MaxWords))
		}
		total += c.Weight
	}

	if math.Abs(total-1.0) > WeightTolerance {
		return apperr.NewRubric(fmt.Sprintf("criterion weights sum to %.3f, expected 1.0", total))
	}

	return nil
}

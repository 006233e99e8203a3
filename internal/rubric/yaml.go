package rubric

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/speechmetrics/commscore/internal/apperr"
)

type yamlCriterion struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
	Weight      float64  `yaml:"weight"`
	MinWords    *int     `yaml:"min_words"`
	MaxWords    *int     `yaml:"max_words"`
}

type yamlRubric struct {
	Criteria []yamlCriterion `yaml:"criteria"`
}

func LoadYAMLFile(path string) (Rubric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rubric{}, apperr.NewRubricWrap("failed to read rubric file", err)
	}

	return ParseYAML(data)
}

// ParseYAML reads a rubric document with a top-level criteria list. Absent
// min_words/max_words fields default to 50/500; an explicit zero does not.
func ParseYAML(data []byte) (Rubric, error) {
	var doc yamlRubric
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Rubric{}, apperr.NewRubricWrap("failed to parse rubric YAML", err)
	}

	criteria := make([]Criterion, 0, len(doc.Criteria))
	for i, yc := range doc.Criteria {
		c := Criterion{
			Name:        yc.Name,
			Description: yc.Description,
			Keywords:    yc.Keywords,
			Weight:      yc.Weight,
			MinWords:    DefaultMinWords,
			MaxWords:    DefaultMaxWords,
		}
		if yc.MinWords != nil {
			c.MinWords = *yc.MinWords
		}
		if yc.MaxWords != nil {
			c.MaxWords = *yc.MaxWords
		}
		if c.Name == "" {
			return Rubric{}, apperr.NewRubric(fmt.Sprintf("criterion at index %d has no name", i))
		}
		criteria = append(criteria, c)
	}

	rb := Rubric{Criteria: criteria}
	if err := rb.Validate(); err != nil {
		return Rubric{}, err
	}

	return rb, nil
}

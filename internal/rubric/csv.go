package rubric

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/speechmetrics/commscore/internal/apperr"
	"github.com/speechmetrics/commscore/pkg/utils"
)

// Blank min_words/max_words cells fall back to these bounds.
const (
	DefaultMinWords = 50
	DefaultMaxWords = 500
)

func LoadCSVFile(path string) (Rubric, error) {
	f, err := os.Open(path)
	if err != nil {
		return Rubric{}, apperr.NewRubricWrap("failed to open rubric file", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads a header-mapped rubric table with columns name, description,
// keywords, weight, min_words and max_words. Keywords live comma-separated in
// a single cell. A rubric that parses but fails validation is rejected, never
// repaired.
func ParseCSV(r io.Reader) (Rubric, error) {
	cr := csv.NewReader(r)

	headers, err := cr.Read()
	if err != nil {
		return Rubric{}, apperr.NewRubricWrap("failed to read rubric header row", err)
	}
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var criteria []Criterion
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Rubric{}, apperr.NewRubricWrap("failed to read rubric row", err)
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(row) {
				record[h] = strings.TrimSpace(row[i])
			}
		}

		c, err := criterionFromRecord(record)
		if err != nil {
			return Rubric{}, err
		}
		criteria = append(criteria, c)
	}

	rb := Rubric{Criteria: criteria}
	if err := rb.Validate(); err != nil {
		return Rubric{}, err
	}

	return rb, nil
}

func criterionFromRecord(record map[string]string) (Criterion, error) {
	weight, err := strconv.ParseFloat(record["weight"], 64)
	if err != nil {
		return Criterion{}, apperr.NewRubricWrap(
			fmt.Sprintf("criterion %q: invalid weight %q", record["name"], record["weight"]), err)
	}

	minWords := DefaultMinWords
	if v := record["min_words"]; v != "" {
		minWords, err = strconv.Atoi(v)
		if err != nil {
			return Criterion{}, apperr.NewRubricWrap(
				fmt.Sprintf("criterion %q: invalid min_words %q", record["name"], v), err)
		}
	}

	maxWords := DefaultMaxWords
	if v := record["max_words"]; v != "" {
		maxWords, err = strconv.Atoi(v)
		if err != nil {
			return Criterion{}, apperr.NewRubricWrap(
				fmt.Sprintf("criterion %q: invalid max_words %q", record["name"], v), err)
		}
	}

	return Criterion{
		Name:        record["name"],
		Description: record["description"],
		Keywords:    utils.SplitAndTrim(record["keywords"], ","),
		Weight:      weight,
		MinWords:    minWords,
		MaxWords:    maxWords,
	}, nil
}

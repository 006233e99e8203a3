package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/speechmetrics/commscore/internal/dto"
	"github.com/speechmetrics/commscore/internal/scoring"
)

// WriteJSON writes the result to path in the same snake_case shape the HTTP
// API serves, so downstream tooling can consume either interchangeably.
func WriteJSON(res *scoring.Result, path string) error {
	data, err := json.MarshalIndent(dto.FromScoringResult(res), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}

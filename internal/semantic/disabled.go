package semantic

import (
	"context"

	"github.com/speechmetrics/commscore/internal/apperr"
)

// Disabled is the provider used when no embedding backend is configured.
// Every call reports unavailable, so each criterion scores with the neutral
// fallback and carries the degraded flag.
type Disabled struct{}

func NewDisabled() Disabled {
	return Disabled{}
}

func (Disabled) Similarity(context.Context, string, string) (float64, error) {
	return 0, apperr.NewUnavailable("semantic similarity is disabled")
}

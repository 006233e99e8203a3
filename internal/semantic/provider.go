package semantic

import "context"

// Provider scores how semantically related a transcript is to a criterion's
// reference text, in [0,1]. Implementations must be deterministic for
// identical inputs within one process lifetime, and should report failures
// as apperr.UnavailableError so the scorer can degrade instead of failing
// the whole call.
type Provider interface {
	Similarity(ctx context.Context, transcript, reference string) (float64, error)
}

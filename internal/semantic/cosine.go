package semantic

import (
	"math"

	"github.com/speechmetrics/commscore/pkg/utils"
)

// Cosine returns the cosine similarity of two vectors clamped to [0,1].
// Anti-correlated vectors clamp to 0 rather than going negative; mismatched
// lengths and zero vectors also yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return utils.Clamp01(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

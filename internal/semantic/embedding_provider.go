package semantic

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/speechmetrics/commscore/internal/apperr"
	"github.com/speechmetrics/commscore/internal/embedding"
)

// DefaultCallTimeout bounds one similarity call against the embedding
// backend. A hung backend resolves to an unavailable error instead of
// stalling the scoring request.
const DefaultCallTimeout = 10 * time.Second

// EmbeddingProvider computes similarity as the cosine of embedding vectors.
// Criterion reference texts repeat on every request, so their vectors are
// cached after the first embedding; transcripts are ephemeral and embedded
// fresh each call.
type EmbeddingProvider struct {
	embedder    *embedding.Embedder
	callTimeout time.Duration

	mu   sync.RWMutex
	refs map[string][]float32
}

type ProviderOption func(*EmbeddingProvider)

// WithCallTimeout overrides the per-call deadline. Zero disables it and
// leaves cancellation to the caller's context.
func WithCallTimeout(timeout time.Duration) ProviderOption {
	return func(p *EmbeddingProvider) {
		p.callTimeout = timeout
	}
}

func NewEmbeddingProvider(embedder *embedding.Embedder, opts ...ProviderOption) *EmbeddingProvider {
	p := &EmbeddingProvider{
		embedder:    embedder,
		callTimeout: DefaultCallTimeout,
		refs:        make(map[string][]float32),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WarmReferences embeds the given reference texts in one batch and caches
// their vectors, so the first scoring request does not pay one embedding
// round trip per criterion. Failing to warm is not fatal; vectors are
// fetched lazily on first use instead.
func (p *EmbeddingProvider) WarmReferences(ctx context.Context, refs []string) error {
	if len(refs) == 0 {
		return nil
	}

	ctx, cancel := p.callContext(ctx)
	defer cancel()

	vecs, err := p.embedder.EmbedTexts(ctx, refs)
	if err != nil {
		return apperr.NewUnavailableWrap("failed to warm reference embeddings", err)
	}

	p.mu.Lock()
	for i, ref := range refs {
		p.refs[ref] = vecs[i].Embedding
	}
	p.mu.Unlock()

	slog.Info("Reference embeddings warmed", "count", len(refs))

	return nil
}

// Similarity embeds both texts and returns their cosine similarity in [0,1].
// Any backend failure, including the per-call timeout, surfaces as an
// unavailable error for the scorer's degrade policy.
func (p *EmbeddingProvider) Similarity(ctx context.Context, transcript, reference string) (float64, error) {
	ctx, cancel := p.callContext(ctx)
	defer cancel()

	refVec, err := p.referenceVector(ctx, reference)
	if err != nil {
		return 0, err
	}

	vec, err := p.embedder.EmbedText(ctx, transcript)
	if err != nil {
		return 0, apperr.NewUnavailableWrap("failed to embed transcript", err)
	}

	return Cosine(vec.Embedding, refVec), nil
}

func (p *EmbeddingProvider) referenceVector(ctx context.Context, reference string) ([]float32, error) {
	p.mu.RLock()
	vec, ok := p.refs[reference]
	p.mu.RUnlock()
	if ok {
		return vec, nil
	}

	embedded, err := p.embedder.EmbedText(ctx, reference)
	if err != nil {
		return nil, apperr.NewUnavailableWrap("failed to embed reference text", err)
	}

	p.mu.Lock()
	p.refs[reference] = embedded.Embedding
	p.mu.Unlock()

	return embedded.Embedding, nil
}

func (p *EmbeddingProvider) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.callTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, p.callTimeout)
}

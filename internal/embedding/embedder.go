package embedding

import (
	"fmt"
	"log/slog"
	"strings"

	"context"
)

// Embedder turns transcript and reference texts into vectors through a
// backing Client.
type Embedder struct {
	model string

	client Client
}

type Vec struct {
	Embedding []float32
	Model     string
}

type EmbedderOption func(e *Embedder)

func NewEmbedder(client Client, opts ...EmbedderOption) *Embedder {
	base := &Embedder{
		model:  defaultModel,
		client: client,
	}

	for _, opt := range opts {
		opt(base)
	}

	return base
}

func WithModel(model string) EmbedderOption {
	return func(e *Embedder) {
		if model != "" {
			e.model = model
		}
	}
}

func (e *Embedder) EmbedText(ctx context.Context, text string) (*Vec, error) {
	prompt := strings.TrimSpace(text)

	slog.Debug("Embedding text", "length", len(prompt), "model", e.model)

	embed, err := e.client.Generate(ctx, Request{
		Model:  e.model,
		Prompt: prompt,
	})
	if err != nil {
		return nil, err
	}

	return &Vec{
		Embedding: embed.Embedding,
		Model:     e.model,
	}, nil
}

// EmbedTexts embeds a batch in one round trip. Reference texts are warmed
// this way at startup so the first scoring request does not pay for every
// criterion's reference embedding.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([]Vec, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	prompts := make([]string, len(texts))
	for i, t := range texts {
		prompts[i] = strings.TrimSpace(t)
	}

	slog.Debug("Bulk embedding texts", "count", len(prompts))

	resp, err := e.client.GenerateBatch(ctx, BatchRequest{
		Model:   e.model,
		Prompts: prompts,
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Embeddings))
	}

	vecs := make([]Vec, len(texts))
	for i, emb := range resp.Embeddings {
		vecs[i] = Vec{
			Embedding: emb,
			Model:     e.model,
		}
	}

	return vecs, nil
}

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/speechmetrics/commscore/internal/embedding"
	"github.com/speechmetrics/commscore/internal/keyword"
	"github.com/speechmetrics/commscore/internal/report"
	"github.com/speechmetrics/commscore/internal/rubric"
	"github.com/speechmetrics/commscore/internal/scoring"
	"github.com/speechmetrics/commscore/internal/semantic"
)

func main() {
	cfg := parseFlags()
	ctx := context.Background()

	transcript, err := readTranscript(cfg.TranscriptPath)
	if err != nil {
		slog.Error("Failed to read transcript", "path", cfg.TranscriptPath, "error", err)
		os.Exit(1)
	}

	rb, err := loadRubric(cfg.RubricPath)
	if err != nil {
		slog.Error("Failed to load rubric", "path", cfg.RubricPath, "error", err)
		os.Exit(1)
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		slog.Error("Failed to create semantic provider", "error", err)
		os.Exit(1)
	}

	matcher := keyword.NewMatcher(keyword.WithFuzzyThreshold(cfg.FuzzyThreshold))
	engine, err := scoring.NewEngine(rb, provider, scoring.WithMatcher(matcher))
	if err != nil {
		slog.Error("Failed to create scoring engine", "error", err)
		os.Exit(1)
	}

	result, err := engine.Score(ctx, transcript)
	if err != nil {
		slog.Error("Scoring failed", "error", err)
		os.Exit(1)
	}

	report.WriteTable(result, os.Stdout)

	if cfg.Output != "" {
		if err := report.WriteJSON(result, cfg.Output); err != nil {
			slog.Error("Failed to write JSON result", "error", err)
			os.Exit(1)
		}
		slog.Info("Result written", "path", cfg.Output)
	}
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func loadRubric(path string) (rubric.Rubric, error) {
	if path == "" {
		return rubric.Default(), nil
	}
	return rubric.LoadFile(path)
}

func buildProvider(cfg cliConfig) (semantic.Provider, error) {
	if cfg.EmbeddingURL == "" {
		return semantic.NewDisabled(), nil
	}

	client, err := embedding.NewOllamaClient(cfg.EmbeddingURL)
	if err != nil {
		return nil, err
	}

	embedder := embedding.NewEmbedder(client, embedding.WithModel(cfg.EmbeddingModel))
	return semantic.NewEmbeddingProvider(embedder), nil
}

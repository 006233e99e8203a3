package main

import (
	"log/slog"
	"os"

	"github.com/speechmetrics/commscore/internal/embedding"
	"github.com/speechmetrics/commscore/internal/rubric/factory"
	"github.com/speechmetrics/commscore/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ScoringApiConfig struct {
	RubricConfig    factory.Config
	EmbeddingConfig embedding.Config
}

func (as *AppConfig) Load() (*ScoringApiConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/scoring_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	rubricCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load rubric configuration from environment", "error", err)
		return nil, err
	}

	embeddingCfg, err := embedding.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load embedding configuration from environment", "error", err)
		return nil, err
	}

	return &ScoringApiConfig{
		RubricConfig:    *rubricCfg,
		EmbeddingConfig: *embeddingCfg,
	}, nil
}

// Package main CommScore API
// @title CommScore API
// @version 1.0
// @description A rubric-based scoring engine for communication-skill transcripts
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@speechmetrics.io
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/speechmetrics/commscore/docs"
	"github.com/speechmetrics/commscore/internal/embedding"
	"github.com/speechmetrics/commscore/internal/router"
	"github.com/speechmetrics/commscore/internal/rubric/factory"
	"github.com/speechmetrics/commscore/internal/scoring"
	"github.com/speechmetrics/commscore/internal/semantic"
	server2 "github.com/speechmetrics/commscore/internal/server"
	pkgserver "github.com/speechmetrics/commscore/pkg/server"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server2.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	var embedClient *embedding.OllamaClient
	if cfg.EmbeddingConfig.Enabled {
		embedClient, err = embedding.NewOllamaClient(cfg.EmbeddingConfig.BaseURL)
		if err != nil {
			slog.Error("Failed to create embedding client", "error", err)
			os.Exit(1)
			return
		}
	}

	// When embeddings are on, /health tracks the backend so a dead embedding
	// host is visible even though scoring itself degrades gracefully.
	var healthChecker pkgserver.HealthChecker = pkgserver.NewOkHealthChecker()
	if embedClient != nil {
		healthChecker = pkgserver.HealthCheckerFunc(func(ctx context.Context) bool {
			return embedClient.Ping(ctx) == nil
		})
	}

	s := server2.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	rb, err := factory.Load(s.Context(), &cfg.RubricConfig)
	if err != nil {
		slog.Error("Failed to load rubric", "error", err)
		os.Exit(1)
		return
	}

	var provider semantic.Provider
	if embedClient != nil {
		embedder := embedding.NewEmbedder(embedClient, embedding.WithModel(cfg.EmbeddingConfig.Model))

		var providerOpts []semantic.ProviderOption
		if cfg.EmbeddingConfig.Timeout > 0 {
			providerOpts = append(providerOpts, semantic.WithCallTimeout(cfg.EmbeddingConfig.Timeout))
		}
		embeddingProvider := semantic.NewEmbeddingProvider(embedder, providerOpts...)

		if err := embeddingProvider.WarmReferences(s.Context(), rb.ReferenceTexts()); err != nil {
			slog.Warn("Failed to warm reference embeddings, they will be embedded on first use", "error", err)
		}

		provider = embeddingProvider
		slog.Info("Semantic similarity enabled", "model", cfg.EmbeddingConfig.Model)
	} else {
		provider = semantic.NewDisabled()
		slog.Info("Semantic similarity disabled, criteria score with the neutral fallback")
	}

	engine, err := scoring.NewEngine(rb, provider)
	if err != nil {
		slog.Error("Failed to create scoring engine", "error", err)
		os.Exit(1)
		return
	}

	scoreRouter := router.NewScoreRouter(s.Echo, engine)
	scoreRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

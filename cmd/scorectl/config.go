package main

import (
	"flag"

	"github.com/speechmetrics/commscore/internal/keyword"
)

type cliConfig struct {
	TranscriptPath string
	RubricPath     string
	Output         string
	FuzzyThreshold float64
	EmbeddingURL   string
	EmbeddingModel string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.TranscriptPath, "transcript", "-", "Path to transcript text file, or - for stdin")
	flag.StringVar(&cfg.RubricPath, "rubric", "", "Path to rubric file (YAML or CSV); uses the built-in rubric when empty")
	flag.StringVar(&cfg.Output, "output", "", "Output path for the result JSON")
	flag.Float64Var(&cfg.FuzzyThreshold, "fuzzy-threshold", keyword.DefaultFuzzyThreshold, "Fuzzy keyword threshold in [0,100], 0 matches exact only")
	flag.StringVar(&cfg.EmbeddingURL, "embedding-url", "", "Embedding backend URL; semantic scoring degrades to neutral when empty")
	flag.StringVar(&cfg.EmbeddingModel, "embedding-model", "", "Embedding model name")

	flag.Parse()
	return cfg
}

package embedding

import (
	"errors"
	"os"
	"time"
)

type Config struct {
	Enabled bool
	Model   string
	BaseURL string
	Timeout time.Duration
}

// LoadConfigFromEnv reads the embedding backend settings. EMBEDDING_BASE_URL
// is only required when embeddings are enabled; a disabled backend needs no
// address and every criterion scores with the neutral fallback.
func LoadConfigFromEnv() (*Config, error) {
	enabled := os.Getenv("EMBEDDING_ENABLED") == "true"
	model := os.Getenv("EMBEDDING_MODEL")
	baseUrl := os.Getenv("EMBEDDING_BASE_URL")
	timeout := os.Getenv("EMBEDDING_TIMEOUT")

	if enabled && baseUrl == "" {
		return nil, errors.New("EMBEDDING_BASE_URL environment variable not set")
	}

	cfg := &Config{
		Enabled: enabled,
		Model:   model,
		BaseURL: baseUrl,
	}

	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return nil, errors.New("EMBEDDING_TIMEOUT must be a duration such as 10s or 1m")
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

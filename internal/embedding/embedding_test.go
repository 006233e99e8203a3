package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/speechmetrics/commscore/internal/apperr"
)

type stubClient struct {
	generateCalls int
	batchCalls    int
	embedding     []float32
	batch         [][]float32
	err           error
}

func (s *stubClient) Generate(ctx context.Context, req Request) (*Response, error) {
	s.generateCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &Response{Embedding: s.embedding}, nil
}

func (s *stubClient) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResponse, error) {
	s.batchCalls++
	if s.err != nil {
		return nil, s.err
	}
	return &BatchResponse{Embeddings: s.batch}, nil
}

func TestOllamaClient_Generate(t *testing.T) {
	var gotPath string
	var gotReq OllamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(Response{Embedding: []float32{0.1, 0.2, 0.3}})
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), Request{
		Model:  "qwen3-embedding:0.6b",
		Prompt: "the quick brown fox",
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/embeddings", gotPath)
	assert.Equal(t, "qwen3-embedding:0.6b", gotReq.Model)
	assert.Equal(t, "the quick brown fox", gotReq.Prompt)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, resp.Embedding)
}

func TestOllamaClient_Generate_RequiresPromptAndModel(t *testing.T) {
	client, err := NewOllamaClient("http://localhost:11434")
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{Model: "m"})
	var ve *apperr.ValidationError
	require.True(t, errors.As(err, &ve))

	_, err = client.Generate(context.Background(), Request{Prompt: "text"})
	require.True(t, errors.As(err, &ve))
}

func TestOllamaClient_GenerateBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embed", r.URL.Path)
		_ = json.NewEncoder(w).Encode(BatchResponse{Embeddings: [][]float32{{1}, {2}}})
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)

	resp, err := client.GenerateBatch(context.Background(), BatchRequest{
		Model:   "m",
		Prompts: []string{"a", "b"},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Embeddings, 2)
}

func TestOllamaClient_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client, err := NewOllamaClient(srv.URL)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), Request{Model: "m", Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestOllamaClient_Ping(t *testing.T) {
	t.Run("healthy backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/version", r.URL.Path)
			_, _ = w.Write([]byte(`{"version":"0.5.1"}`))
		}))
		defer srv.Close()

		client, err := NewOllamaClient(srv.URL)
		require.NoError(t, err)

		assert.NoError(t, client.Ping(context.Background()))
	})

	t.Run("erroring backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := NewOllamaClient(srv.URL)
		require.NoError(t, err)

		assert.Error(t, client.Ping(context.Background()))
	})
}

func TestEmbedder_EmbedText(t *testing.T) {
	stub := &stubClient{embedding: []float32{0.5, 0.5}}
	e := NewEmbedder(stub, WithModel("custom-model"))

	vec, err := e.EmbedText(context.Background(), "  some transcript  ")

	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 0.5}, vec.Embedding)
	assert.Equal(t, "custom-model", vec.Model)
	assert.Equal(t, 1, stub.generateCalls)
}

func TestEmbedder_EmptyModelOptionKeepsDefault(t *testing.T) {
	e := NewEmbedder(&stubClient{}, WithModel(""))

	assert.Equal(t, defaultModel, e.model)
}

func TestEmbedder_EmbedTexts(t *testing.T) {
	t.Run("batch round trip", func(t *testing.T) {
		stub := &stubClient{batch: [][]float32{{1}, {2}, {3}}}
		e := NewEmbedder(stub)

		vecs, err := e.EmbedTexts(context.Background(), []string{"a", "b", "c"})

		require.NoError(t, err)
		require.Len(t, vecs, 3)
		assert.Equal(t, 1, stub.batchCalls)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		stub := &stubClient{}
		e := NewEmbedder(stub)

		vecs, err := e.EmbedTexts(context.Background(), nil)

		require.NoError(t, err)
		assert.Nil(t, vecs)
		assert.Zero(t, stub.batchCalls)
	})

	t.Run("count mismatch is an error", func(t *testing.T) {
		stub := &stubClient{batch: [][]float32{{1}}}
		e := NewEmbedder(stub)

		_, err := e.EmbedTexts(context.Background(), []string{"a", "b"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 2 embeddings, got 1")
	})
}

func TestLoadConfigFromEnv(t *testing.T) {
	clear := func(t *testing.T) {
		t.Setenv("EMBEDDING_ENABLED", "")
		t.Setenv("EMBEDDING_BASE_URL", "")
		t.Setenv("EMBEDDING_MODEL", "")
		t.Setenv("EMBEDDING_TIMEOUT", "")
	}

	t.Run("enabled requires base url", func(t *testing.T) {
		clear(t)
		t.Setenv("EMBEDDING_ENABLED", "true")

		_, err := LoadConfigFromEnv()

		require.Error(t, err)
	})

	t.Run("disabled needs nothing", func(t *testing.T) {
		clear(t)

		cfg, err := LoadConfigFromEnv()

		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
	})

	t.Run("full configuration", func(t *testing.T) {
		clear(t)
		t.Setenv("EMBEDDING_ENABLED", "true")
		t.Setenv("EMBEDDING_BASE_URL", "http://localhost:11434")
		t.Setenv("EMBEDDING_MODEL", "nomic-embed-text")
		t.Setenv("EMBEDDING_TIMEOUT", "15s")

		cfg, err := LoadConfigFromEnv()

		require.NoError(t, err)
		assert.True(t, cfg.Enabled)
		assert.Equal(t, "http://localhost:11434", cfg.BaseURL)
		assert.Equal(t, "nomic-embed-text", cfg.Model)
		assert.Equal(t, 15*time.Second, cfg.Timeout)
	})

	t.Run("bad timeout rejected", func(t *testing.T) {
		clear(t)
		t.Setenv("EMBEDDING_ENABLED", "true")
		t.Setenv("EMBEDDING_BASE_URL", "http://localhost:11434")
		t.Setenv("EMBEDDING_TIMEOUT", "soon")

		_, err := LoadConfigFromEnv()

		require.Error(t, err)
	})
}

// Package embeddings is the single entry point for text-to-vector
// conversion. Callers never see the provider: the gateway truncates input,
// normalizes dimensions, and degrades to nil instead of failing.
package embeddings

import (
	"context"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	// Dimension is the only vector size the gateway ever returns.
	Dimension = 1536

	// maxInputChars truncates oversized inputs before submission.
	maxInputChars = 8000

	// ProviderPause is the minimum delay between provider requests in
	// batch and backfill paths.
	ProviderPause = 500 * time.Millisecond
)

// Provider is the slice of the OpenAI-compatible API the gateway needs.
type Provider interface {
	CreateEmbeddings(ctx context.Context, conv openai.EmbeddingRequestConverter) (openai.EmbeddingResponse, error)
}

// Config selects the provider at runtime. An explicit BaseURL points the
// client at a local OpenAI-compatible embedder.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Gateway provides Embed and EmbedBatch. A gateway without a configured
// provider returns nil vectors for everything (degraded mode).
type Gateway struct {
	provider Provider
	model    openai.EmbeddingModel
}

// New builds a gateway from config. Credentials resolved from the
// environment win over persisted ones; that resolution happens in the
// config layer before this point.
func New(cfg Config) *Gateway {
	g := &Gateway{model: openai.SmallEmbedding3}
	if cfg.Model != "" {
		g.model = openai.EmbeddingModel(cfg.Model)
	}

	if cfg.APIKey == "" && cfg.BaseURL == "" {
		slog.Warn("No embedding provider configured, embeddings disabled")
		return g
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	g.provider = openai.NewClientWithConfig(clientCfg)
	return g
}

// NewWithProvider wires an explicit provider (used by tests).
func NewWithProvider(p Provider, model string) *Gateway {
	return &Gateway{provider: p, model: openai.EmbeddingModel(model)}
}

// Enabled reports whether a provider is configured.
func (g *Gateway) Enabled() bool {
	return g.provider != nil
}

// Embed converts text to a 1536-dim vector. Empty or whitespace-only text
// returns nil without contacting the provider; provider errors are logged
// and also return nil so callers fall back to "no embedding".
func (g *Gateway) Embed(ctx context.Context, text string) []float32 {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if g.provider == nil {
		return nil
	}

	resp, err := g.provider.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{truncate(text)},
		Model: g.model,
	})
	if err != nil {
		slog.Error("Embedding request failed", "error", err)
		return nil
	}
	if len(resp.Data) == 0 {
		slog.Error("Embedding response was empty")
		return nil
	}

	return normalize(resp.Data[0].Embedding)
}

// EmbedBatch converts texts in order. Blank inputs and per-item provider
// failures become nil entries; ordering is always preserved.
func (g *Gateway) EmbedBatch(ctx context.Context, texts []string) [][]float32 {
	out := make([][]float32, len(texts))
	if g.provider == nil {
		return out
	}

	// Submit only the non-blank items, then scatter results back to the
	// original positions.
	var inputs []string
	var positions []int
	for i, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		inputs = append(inputs, truncate(t))
		positions = append(positions, i)
	}
	if len(inputs) == 0 {
		return out
	}

	resp, err := g.provider.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: inputs,
		Model: g.model,
	})
	if err != nil {
		slog.Error("Batch embedding request failed", "count", len(inputs), "error", err)
		return out
	}

	for j, item := range resp.Data {
		if j >= len(positions) {
			break
		}
		out[positions[j]] = normalize(item.Embedding)
	}
	return out
}

func truncate(text string) string {
	if len(text) > maxInputChars {
		return text[:maxInputChars]
	}
	return text
}

// normalize zero-pads shorter provider outputs (e.g. 768-dim local models)
// to the fixed 1536 dimension. Longer outputs are truncated.
func normalize(vec []float32) []float32 {
	switch {
	case len(vec) == Dimension:
		return vec
	case len(vec) < Dimension:
		padded := make([]float32, Dimension)
		copy(padded, vec)
		return padded
	default:
		return vec[:Dimension]
	}
}

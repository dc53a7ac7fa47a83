// Package embedding provides text embedding generation with multiple
// backend support. The scoring pipeline depends on it only through the
// Provider contract: given text, return a fixed-length numeric vector.
package embedding

import (
	"context"
	"fmt"
)

// Provider is the injected embedding capability.
type Provider interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Model returns the name of the embedding model being used.
	Model() string
}

// Config holds configuration for creating a Provider.
type Config struct {
	// Provider selects the backend: "gemini", "ollama", or "none".
	Provider string

	// Gemini-specific.
	GeminiAPIKey string
	GeminiModel  string

	// Ollama-specific (uses OLLAMA_HOST env var for the server URL).
	OllamaModel string
}

// New creates a Provider from the configuration. Provider "none" returns
// nil without error: the pipeline treats a nil provider as the capability
// being absent and degrades the similarity score to zero.
func New(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "gemini", "":
		return NewGeminiProvider(cfg.GeminiAPIKey, cfg.GeminiModel)

	case "ollama":
		return NewOllamaProvider(cfg.OllamaModel)

	case "none":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Provider)
	}
}

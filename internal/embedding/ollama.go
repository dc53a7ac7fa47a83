package embedding

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"
)

// DefaultOllamaModel is the local embedding model used when none is configured.
const DefaultOllamaModel = "all-minilm:l6-v2"

// OllamaProvider generates embeddings through a local Ollama server.
type OllamaProvider struct {
	client *api.Client
	model  string
}

var _ Provider = (*OllamaProvider)(nil)

// NewOllamaProvider creates an Ollama-backed provider. The server URL comes
// from the OLLAMA_HOST environment variable (default http://localhost:11434).
func NewOllamaProvider(model string) (*OllamaProvider, error) {
	if model == "" {
		model = DefaultOllamaModel
	}

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return &OllamaProvider{client: client, model: model}, nil
}

// Model implements Provider.
func (o *OllamaProvider) Model() string {
	return o.model
}

// Embed implements Provider.
func (o *OllamaProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := o.client.Embed(ctx, &api.EmbedRequest{
		Model: o.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	return resp.Embeddings[0], nil
}

package generator

import "context"

// Prompt is one system+user message pair sent to the model.
type Prompt struct {
	System string
	User   string
}

// LLMClient abstracts the model provider so the pipeline stays
// provider-agnostic and tests can substitute a scripted client.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings holds the per-provider configuration passed to a concrete
// client implementation.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

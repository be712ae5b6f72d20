package llm

import "context"

// Provider defines the interface for chat completion providers.
type Provider interface {
	// Complete sends a single-message completion request and returns the reply text.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name returns the name of this provider.
	Name() string
}

// CompletionRequest contains the parameters for a completion request.
type CompletionRequest struct {
	Model       string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

package llm

import (
	"fmt"
	"os"
)

// NewProvider creates a chat completion provider based on the given provider
// type and model. Supported provider types: "openai", "google", "ollama".
// ollamaHost is the configured Ollama base URL; the OLLAMA_HOST environment
// variable overrides it, and localhost is the final fallback.
func NewProvider(providerType string, model string, ollamaHost string) (Provider, error) {
	switch providerType {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is not set")
		}
		return NewGoogleProvider(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = ollamaHost
		}
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

package llm

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingAPIKey is returned when the selected provider needs a
// credential that is not present in the environment. Callers can tell
// this apart from a transient provider failure.
var ErrMissingAPIKey = errors.New("llm: API key not configured")

// NewProvider builds a Provider for the given backend, reading the
// credential from the conventional environment variable. Supported
// backends: "openai", "anthropic", "google", "ollama".
func NewProvider(providerType, model string) (Provider, error) {
	switch providerType {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("%w: set OPENAI_API_KEY", ErrMissingAPIKey)
		}
		return NewOpenAIProvider(apiKey, model), nil

	case "anthropic":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("%w: set ANTHROPIC_API_KEY", ErrMissingAPIKey)
		}
		return NewAnthropicProvider(apiKey, model), nil

	case "google":
		apiKey := os.Getenv("GOOGLE_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("%w: set GOOGLE_API_KEY", ErrMissingAPIKey)
		}
		return NewGoogleProvider(apiKey, model), nil

	case "ollama":
		host := os.Getenv("OLLAMA_HOST")
		if host == "" {
			host = "http://localhost:11434"
		}
		return NewOllamaProvider(host, model), nil

	default:
		return nil, fmt.Errorf("unsupported provider type: %s", providerType)
	}
}

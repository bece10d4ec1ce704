package config

// ProviderType identifies an LLM backend.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderGoogle    ProviderType = "google"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level legisclaro configuration, corresponding to
// .legisclaro.yml. It is built once at startup and shared read-only by
// every pipeline invocation.
type Config struct {
	// Provider and Model select the language-model backend for both the
	// verification and the simplification calls.
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`

	// PortalBaseURL points at the legislation portal used for statute
	// retrieval.
	PortalBaseURL string `yaml:"portal_base_url" koanf:"portal_base_url"`

	// Port is where the HTTP API listens.
	Port int `yaml:"port" koanf:"port"`

	// CORSAllowAll opens the API to any origin (dev mode).
	CORSAllowAll bool `yaml:"cors_allow_all" koanf:"cors_allow_all"`

	// MaxRequestsPerMinute rate-limits model calls across concurrent
	// analyses; 0 disables the limiter.
	MaxRequestsPerMinute int `yaml:"max_requests_per_minute" koanf:"max_requests_per_minute"`
}

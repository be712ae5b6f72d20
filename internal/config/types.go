package config

// ProviderType identifies a chat completion provider.
type ProviderType string

const (
	ProviderOpenAI ProviderType = "openai"
	ProviderGoogle ProviderType = "google"
	ProviderOllama ProviderType = "ollama"
)

// Config is the top-level simengine configuration, corresponding to
// .simengine.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`

	// ImageModel is the hosted text-to-image model for the primary image
	// path; it must support 512x512 output.
	ImageModel string `yaml:"image_model" koanf:"image_model"`

	// OCRLanguage is the Tesseract language code for scanned documents.
	OCRLanguage string `yaml:"ocr_language" koanf:"ocr_language"`

	// OllamaHost is the Ollama base URL when provider is "ollama". The
	// OLLAMA_HOST environment variable takes precedence when set.
	OllamaHost string `yaml:"ollama_host" koanf:"ollama_host"`

	Port int `yaml:"port" koanf:"port"`

	// AllowAllOrigins opens CORS to any origin (dev mode).
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

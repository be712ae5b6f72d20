package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider:        ProviderOpenAI,
		Model:           "gpt-4o-mini",
		ImageModel:      "dall-e-2",
		OCRLanguage:     "eng",
		OllamaHost:      "http://localhost:11434",
		Port:            8000,
		AllowAllOrigins: true,
	}
}

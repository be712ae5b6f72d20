package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Provider != ProviderOpenAI {
		t.Errorf("expected default provider %q, got %q", ProviderOpenAI, cfg.Provider)
	}
	if cfg.ImageModel != "dall-e-2" {
		t.Errorf("expected default image_model %q, got %q", "dall-e-2", cfg.ImageModel)
	}
	if cfg.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Port)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.simengine.yml")

	original := DefaultConfig()
	original.Provider = ProviderOllama
	original.Model = "llama3"
	original.Port = 9000
	original.OCRLanguage = "deu"
	original.OllamaHost = "http://gpu-box:11434"

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Provider != original.Provider {
		t.Errorf("provider: got %q, want %q", loaded.Provider, original.Provider)
	}
	if loaded.Model != original.Model {
		t.Errorf("model: got %q, want %q", loaded.Model, original.Model)
	}
	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.OCRLanguage != original.OCRLanguage {
		t.Errorf("ocr_language: got %q, want %q", loaded.OCRLanguage, original.OCRLanguage)
	}
	if loaded.OllamaHost != original.OllamaHost {
		t.Errorf("ollama_host: got %q, want %q", loaded.OllamaHost, original.OllamaHost)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Provider != ProviderOpenAI || cfg.Port != 8000 {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestEnvOverride(t *testing.T) {
	os.Setenv("SIMENGINE_MODEL", "gpt-4o")
	defer os.Unsetenv("SIMENGINE_MODEL")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("expected env override, got %q", cfg.Model)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty provider", func(c *Config) { c.Provider = "" }},
		{"unknown provider", func(c *Config) { c.Provider = "erniebot" }},
		{"empty model", func(c *Config) { c.Model = "" }},
		{"empty image model", func(c *Config) { c.ImageModel = "" }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"huge port", func(c *Config) { c.Port = 70000 }},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

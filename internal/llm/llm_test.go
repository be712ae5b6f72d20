package llm

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
)

// MockProvider is a test provider that records calls and returns canned replies.
type MockProvider struct {
	mu       sync.Mutex
	Calls    []CompletionRequest
	Reply    string
	Err      error
	ProvName string
}

func NewMockProvider(name string) *MockProvider {
	return &MockProvider{ProvName: name, Reply: "mock reply"}
}

func (m *MockProvider) Name() string {
	return m.ProvName
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func TestMockProviderRecordsCalls(t *testing.T) {
	mock := NewMockProvider("test")
	ctx := context.Background()

	reply, err := mock.Complete(ctx, CompletionRequest{Model: "test-model", Prompt: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "mock reply" {
		t.Errorf("expected 'mock reply', got %q", reply)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].Model != "test-model" {
		t.Errorf("expected model 'test-model', got %q", mock.Calls[0].Model)
	}
}

func TestMockProviderReturnsError(t *testing.T) {
	mock := NewMockProvider("test")
	mock.Err = errors.New("quota exceeded")

	_, err := mock.Complete(context.Background(), CompletionRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestNewProviderUnsupported(t *testing.T) {
	_, err := NewProvider("erniebot", "ernie-3.5", "")
	if err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}

func TestNewProviderOllamaNeedsNoKey(t *testing.T) {
	p, err := NewProvider("ollama", "llama3", "")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.Name() != "ollama" {
		t.Errorf("expected name 'ollama', got %q", p.Name())
	}
}

func TestNewProviderOllamaUsesConfiguredHost(t *testing.T) {
	os.Unsetenv("OLLAMA_HOST")

	p, err := NewProvider("ollama", "llama3", "http://ollama.internal:11434")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	op, ok := p.(*OllamaProvider)
	if !ok {
		t.Fatalf("expected *OllamaProvider, got %T", p)
	}
	if op.baseURL != "http://ollama.internal:11434" {
		t.Errorf("expected configured host, got %q", op.baseURL)
	}
}

func TestNewProviderOllamaEnvOverridesConfig(t *testing.T) {
	os.Setenv("OLLAMA_HOST", "http://env-host:11434")
	defer os.Unsetenv("OLLAMA_HOST")

	p, err := NewProvider("ollama", "llama3", "http://config-host:11434")
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.(*OllamaProvider).baseURL != "http://env-host:11434" {
		t.Errorf("env var must win over configured host, got %q", p.(*OllamaProvider).baseURL)
	}
}

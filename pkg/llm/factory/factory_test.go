package factory

import (
	"context"
	"testing"

	"paperspace-be/pkg/llm/groq"
	"paperspace-be/pkg/llm/ollama"
)

func TestNewLLMProvider(t *testing.T) {
	t.Run("ollama", func(t *testing.T) {
		provider, err := NewLLMProvider("ollama", "llama3", "", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := provider.(*ollama.OllamaProvider); !ok {
			t.Errorf("provider type = %T, want *ollama.OllamaProvider", provider)
		}
	})

	t.Run("groq", func(t *testing.T) {
		provider, err := NewLLMProvider("groq", "", "", "gsk_test")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		gp, ok := provider.(*groq.GroqProvider)
		if !ok {
			t.Fatalf("provider type = %T, want *groq.GroqProvider", provider)
		}
		if gp.ModelName != "llama-3.3-70b-versatile" {
			t.Errorf("default model = %q", gp.ModelName)
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := NewLLMProvider("openai", "", "", "")
		if err == nil {
			t.Fatal("expected error for unsupported provider")
		}
	})
}

func TestGroqRequiresApiKey(t *testing.T) {
	provider, err := NewLLMProvider("groq", "", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = provider.Generate(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error when api key is missing")
	}
}

package generation

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"moodline/internal/config"
	"moodline/internal/services"
)

func TestNewDukeGPTBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/proxy/llm" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"soft rain"}}]}`))
	}))
	defer server.Close()

	gen := New(config.Generation{Backend: "dukegpt", BaseURL: server.URL, TimeoutSeconds: 5})
	got, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "soft rain" {
		t.Fatalf("content = %q", got)
	}
}

func TestNewOpenAIBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"bright wind"}}]}`))
	}))
	defer server.Close()

	gen := New(config.Generation{Backend: "openai", BaseURL: server.URL, APIKey: "sk-test", TimeoutSeconds: 5})
	got, err := gen.Generate(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "bright wind" {
		t.Fatalf("content = %q", got)
	}
}

func TestNewUnknownBackendFailsPerCall(t *testing.T) {
	gen := New(config.Generation{Backend: "oracle"})
	_, err := gen.Generate(context.Background(), "prompt")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

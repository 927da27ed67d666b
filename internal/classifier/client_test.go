package classifier

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"moodline/internal/emotion"
	"moodline/internal/services"
)

func TestClassifySendsFrameAndParsesLabel(t *testing.T) {
	frame := []byte{0xFF, 0xD8, 0xFF, 0xE0}

	var gotPath string
	var gotReq analyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"dominant_emotion":"Happy"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL, Detector: "opencv"})
	label, err := client.Classify(context.Background(), frame)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if label != emotion.Happy {
		t.Fatalf("label = %q", label)
	}
	if gotPath != "/analyze" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotReq.Detector != "opencv" {
		t.Fatalf("detector = %q", gotReq.Detector)
	}
	decoded, err := base64.StdEncoding.DecodeString(gotReq.Image)
	if err != nil {
		t.Fatalf("image is not base64: %v", err)
	}
	if string(decoded) != string(frame) {
		t.Fatalf("frame bytes changed in transit")
	}
}

func TestClassifySidecarError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"no face detected"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	_, err := client.Classify(context.Background(), []byte{1})
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if !strings.Contains(err.Error(), "no face detected") {
		t.Fatalf("error should carry sidecar message: %v", err)
	}
}

func TestClassifyHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	_, err := client.Classify(context.Background(), []byte{1})
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

func TestClassifyUnrecognizedLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dominant_emotion":"confused"}`))
	}))
	defer server.Close()

	client := NewClient(Config{Endpoint: server.URL})
	_, err := client.Classify(context.Background(), []byte{1})
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if !strings.Contains(err.Error(), "confused") {
		t.Fatalf("error should name the label: %v", err)
	}
}

func TestClassifyEmptyFrame(t *testing.T) {
	client := NewClient(Config{Endpoint: "http://127.0.0.1:1"})
	_, err := client.Classify(context.Background(), nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
}

func TestClassifyUnreachableSidecar(t *testing.T) {
	client := NewClient(Config{Endpoint: "http://127.0.0.1:1"})
	_, err := client.Classify(context.Background(), []byte{1})
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
}

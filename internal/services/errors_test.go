package services

import (
	"errors"
	"testing"
)

func TestWrapTagsSentinel(t *testing.T) {
	base := errors.New("connection refused")
	err := Wrap(ErrExternalService, "generator", "generate", "endpoint unreachable", base)
	if !errors.Is(err, ErrExternalService) {
		t.Fatalf("expected sentinel to survive wrapping: %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected cause to survive wrapping: %v", err)
	}
	want := "external service error: generator: generate: endpoint unreachable: connection refused"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrConfiguration, "generator", "", "api key required", nil)
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected configuration sentinel: %v", err)
	}
	if err.Error() != "configuration error: generator: api key required" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := Wrap(nil, "", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient default: %v", err)
	}
	if err.Error() != "transient failure: service failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestFatal(t *testing.T) {
	if Fatal(Wrap(ErrTransient, "classifier", "classify", "", nil)) {
		t.Fatal("transient errors must not be fatal")
	}
	if !Fatal(Wrap(ErrSourceFatal, "capture", "read", "device gone", nil)) {
		t.Fatal("source failures must be fatal")
	}
}

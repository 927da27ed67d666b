// Package testsupport provides helpers for constructing test fixtures.
package testsupport

import (
	"testing"

	"moodline/internal/config"
)

// NewConfig returns a validated configuration rooted in temp directories.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Logging.Dir = t.TempDir()
	cfg.Generation.Backend = "dukegpt"
	cfg.Generation.BaseURL = "http://127.0.0.1:1"
	cfg.Classifier.Endpoint = "http://127.0.0.1:1"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config should validate: %v", err)
	}
	return &cfg
}

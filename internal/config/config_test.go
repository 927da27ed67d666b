package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for absent file")
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Capture.Device != "/dev/video0" {
		t.Fatalf("capture.device = %q", cfg.Capture.Device)
	}
	if cfg.History.Capacity != 5 {
		t.Fatalf("history.capacity = %d", cfg.History.Capacity)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[capture]
device = "/dev/video2"

[classifier]
interval_ms = 250

[structure]
mode = "Grammatical"

[generation]
backend = "openai"
api_key = "sk-test"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists {
		t.Fatal("expected exists=true")
	}
	if cfg.Capture.Device != "/dev/video2" {
		t.Fatalf("capture.device = %q", cfg.Capture.Device)
	}
	if cfg.Classifier.IntervalMS != 250 {
		t.Fatalf("classifier.interval_ms = %d", cfg.Classifier.IntervalMS)
	}
	if cfg.Structure.Mode != "grammatical" {
		t.Fatalf("structure.mode = %q, want lowercased", cfg.Structure.Mode)
	}
	if cfg.Generation.Backend != "openai" {
		t.Fatalf("generation.backend = %q", cfg.Generation.Backend)
	}
	// Untouched sections keep defaults.
	if cfg.Generation.IntervalMS != 2000 {
		t.Fatalf("generation.interval_ms = %d", cfg.Generation.IntervalMS)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "negative capacity",
			content: "[history]\ncapacity = -1\n",
			field:   "history.capacity",
		},
		{
			name:    "unknown mode",
			content: "[structure]\nmode = \"lexical\"\n",
			field:   "structure.mode",
		},
		{
			name:    "zero fps",
			content: "[capture]\nfps = 0.0\n",
			field:   "capture.fps",
		},
		{
			name:    "relative endpoint",
			content: "[classifier]\nendpoint = \"localhost:8484\"\n",
			field:   "classifier.endpoint",
		},
		{
			name:    "unknown detector",
			content: "[classifier]\ndetector = \"dlib\"\n",
			field:   "classifier.detector",
		},
		{
			name:    "bad log format",
			content: "[logging]\nformat = \"xml\"\n",
			field:   "logging.format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error %q does not name field %s", err, tc.field)
			}
		})
	}
}

func TestNormalizeAppliesEnvFallbacks(t *testing.T) {
	t.Setenv("DUKEGPT_API_URL", "http://gpt.internal:3001")
	t.Setenv("DUKEGPT_API_KEY", "duke-key")

	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Generation.BaseURL != "http://gpt.internal:3001" {
		t.Fatalf("base_url = %q", cfg.Generation.BaseURL)
	}
	if cfg.Generation.APIKey != "duke-key" {
		t.Fatalf("api_key = %q", cfg.Generation.APIKey)
	}
}

func TestNormalizeOpenAIKeyFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	cfg := Default()
	cfg.Generation.Backend = "openai"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Generation.APIKey != "sk-env" {
		t.Fatalf("api_key = %q", cfg.Generation.APIKey)
	}
}

func TestNormalizeConfigValueWinsOverEnv(t *testing.T) {
	t.Setenv("DUKEGPT_API_KEY", "env-key")

	cfg := Default()
	cfg.Generation.APIKey = "file-key"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Generation.APIKey != "file-key" {
		t.Fatalf("api_key = %q, want file value to win", cfg.Generation.APIKey)
	}
}

func TestNormalizeTrimsEndpointSlash(t *testing.T) {
	cfg := Default()
	cfg.Classifier.Endpoint = "http://127.0.0.1:8484/"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Classifier.Endpoint != "http://127.0.0.1:8484" {
		t.Fatalf("endpoint = %q", cfg.Classifier.Endpoint)
	}
}

func TestIntervalHelpers(t *testing.T) {
	cfg := Default()
	cfg.Classifier.IntervalMS = 500
	cfg.Generation.IntervalMS = 2000

	if got := cfg.ClassificationInterval(); got != 500*time.Millisecond {
		t.Fatalf("ClassificationInterval = %v", got)
	}
	if got := cfg.GenerationInterval(); got != 2*time.Second {
		t.Fatalf("GenerationInterval = %v", got)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ExpandPath("~/logs")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "logs") {
		t.Fatalf("ExpandPath = %q", got)
	}
}

func TestCreateSampleWritesParseableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file should exist")
	}
	if cfg.Structure.Mode != "functional" {
		t.Fatalf("sample mode = %q", cfg.Structure.Mode)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs", "moodline")
	cfg := Default()
	cfg.Logging.Dir = dir
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("log dir missing: %v", err)
	}
}

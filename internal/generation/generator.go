package generation

import (
	"context"
	"time"

	"moodline/internal/config"
	"moodline/internal/services"
	"moodline/internal/services/dukegpt"
	"moodline/internal/services/openai"
)

// Generator produces one sentence for a structure prompt. Implementations
// must treat an empty result string as valid output.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds a Generator for the configured backend. An unknown backend
// does not fail construction; it yields a generator whose every call
// reports the misconfiguration, so the pipeline keeps running and the
// problem is visible on screen.
func New(cfg config.Generation) Generator {
	switch cfg.Backend {
	case "dukegpt":
		return dukegpt.NewClient(dukegpt.Config{
			BaseURL:        cfg.BaseURL,
			APIKey:         cfg.APIKey,
			Model:          cfg.Model,
			TimeoutSeconds: cfg.TimeoutSeconds,
		})
	case "openai":
		opts := []openai.Option{}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.TimeoutSeconds > 0 {
			opts = append(opts, openai.WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
		}
		return openai.NewClient(cfg.APIKey, opts...)
	default:
		return errorGenerator{backend: cfg.Backend}
	}
}

type errorGenerator struct {
	backend string
}

func (g errorGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", services.Wrap(services.ErrConfiguration, "generation", "generate",
		"unknown backend "+g.backend, nil)
}

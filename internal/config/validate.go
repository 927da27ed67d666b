package config

import (
	"fmt"
	"net/url"
	"strings"

	"moodline/internal/emotion"
)

// ValidationError describes a configuration problem for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates all problems found in a single pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "configuration invalid"
	}
	parts := make([]string, 0, len(e))
	for _, item := range e {
		parts = append(parts, item.Error())
	}
	return "configuration invalid: " + strings.Join(parts, "; ")
}

// Validate checks the configuration and returns every problem found.
// Generation credentials are deliberately not checked here: a missing key
// or unreachable endpoint surfaces per call as a generation failure, not as
// a startup error.
func (c *Config) Validate() error {
	var errs ValidationErrors

	errs = append(errs, c.Capture.validate()...)
	errs = append(errs, c.Classifier.validate()...)
	errs = append(errs, c.History.validate()...)
	errs = append(errs, c.Structure.validate()...)
	errs = append(errs, c.Generation.validate()...)
	errs = append(errs, c.Logging.validate()...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (c Capture) validate() ValidationErrors {
	var errs ValidationErrors
	if c.Device == "" {
		errs = append(errs, ValidationError{Field: "capture.device", Message: "must not be empty"})
	}
	if c.Width <= 0 {
		errs = append(errs, ValidationError{Field: "capture.width", Message: "must be positive"})
	}
	if c.Height <= 0 {
		errs = append(errs, ValidationError{Field: "capture.height", Message: "must be positive"})
	}
	if c.FPS <= 0 {
		errs = append(errs, ValidationError{Field: "capture.fps", Message: "must be positive"})
	}
	return errs
}

func (c Classifier) validate() ValidationErrors {
	var errs ValidationErrors
	if c.Endpoint == "" {
		errs = append(errs, ValidationError{Field: "classifier.endpoint", Message: "must not be empty"})
	} else if parsed, err := url.Parse(c.Endpoint); err != nil || parsed.Scheme == "" || parsed.Host == "" {
		errs = append(errs, ValidationError{Field: "classifier.endpoint", Message: "must be an absolute URL"})
	}
	switch c.Detector {
	case "opencv", "mediapipe", "ssd", "retinaface", "mtcnn":
	case "":
		errs = append(errs, ValidationError{Field: "classifier.detector", Message: "must not be empty"})
	default:
		errs = append(errs, ValidationError{Field: "classifier.detector",
			Message: "must be one of opencv, mediapipe, ssd, retinaface, mtcnn"})
	}
	if c.IntervalMS <= 0 {
		errs = append(errs, ValidationError{Field: "classifier.interval_ms", Message: "must be positive"})
	}
	if c.TimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{Field: "classifier.timeout_seconds", Message: "must be positive"})
	}
	return errs
}

func (h History) validate() ValidationErrors {
	if h.Capacity <= 0 {
		return ValidationErrors{{Field: "history.capacity", Message: "must be positive"}}
	}
	return nil
}

func (s Structure) validate() ValidationErrors {
	if _, err := emotion.ParseMode(s.Mode); err != nil {
		return ValidationErrors{{Field: "structure.mode", Message: err.Error()}}
	}
	return nil
}

func (g Generation) validate() ValidationErrors {
	var errs ValidationErrors
	if g.Backend == "" {
		errs = append(errs, ValidationError{Field: "generation.backend", Message: "must not be empty"})
	}
	if g.IntervalMS <= 0 {
		errs = append(errs, ValidationError{Field: "generation.interval_ms", Message: "must be positive"})
	}
	if g.TimeoutSeconds <= 0 {
		errs = append(errs, ValidationError{Field: "generation.timeout_seconds", Message: "must be positive"})
	}
	return errs
}

func (l Logging) validate() ValidationErrors {
	var errs ValidationErrors
	switch l.Format {
	case "console", "json":
	default:
		errs = append(errs, ValidationError{Field: "logging.format", Message: "must be console or json"})
	}
	switch l.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{Field: "logging.level", Message: "must be debug, info, warn, or error"})
	}
	return errs
}

package config

import (
	"os"
	"strings"
)

// normalize trims string fields, expands paths, and applies environment
// fallbacks. Environment variables are read here, once, so the rest of the
// program never consults the environment.
func (c *Config) normalize() error {
	c.Capture.Device = strings.TrimSpace(c.Capture.Device)

	c.Classifier.Endpoint = strings.TrimRight(strings.TrimSpace(c.Classifier.Endpoint), "/")
	c.Classifier.Detector = strings.ToLower(strings.TrimSpace(c.Classifier.Detector))

	c.Structure.Mode = strings.ToLower(strings.TrimSpace(c.Structure.Mode))

	c.Generation.Backend = strings.ToLower(strings.TrimSpace(c.Generation.Backend))
	c.Generation.Model = strings.TrimSpace(c.Generation.Model)
	c.Generation.BaseURL = strings.TrimSpace(c.Generation.BaseURL)
	c.Generation.APIKey = strings.TrimSpace(c.Generation.APIKey)

	if c.Generation.BaseURL == "" && c.Generation.Backend == "dukegpt" {
		c.Generation.BaseURL = strings.TrimSpace(os.Getenv("DUKEGPT_API_URL"))
	}
	if c.Generation.APIKey == "" {
		switch c.Generation.Backend {
		case "dukegpt":
			c.Generation.APIKey = strings.TrimSpace(os.Getenv("DUKEGPT_API_KEY"))
		case "openai":
			c.Generation.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		}
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if dir := strings.TrimSpace(c.Logging.Dir); dir != "" {
		expanded, err := expandPath(dir)
		if err != nil {
			return err
		}
		c.Logging.Dir = expanded
	}

	return nil
}

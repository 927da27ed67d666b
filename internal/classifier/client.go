package classifier

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"moodline/internal/emotion"
	"moodline/internal/services"
)

const (
	analyzePath        = "/analyze"
	defaultHTTPTimeout = 10 * time.Second
)

// Classifier turns one captured frame into a dominant emotion label.
type Classifier interface {
	Classify(ctx context.Context, image []byte) (emotion.Label, error)
}

// Config captures the settings for the analysis sidecar.
type Config struct {
	Endpoint       string
	Detector       string
	TimeoutSeconds int
}

// Client speaks to the emotion-analysis sidecar over HTTP.
type Client struct {
	endpoint   string
	detector   string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a sidecar client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		endpoint:   strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/"),
		detector:   strings.TrimSpace(cfg.Detector),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return client
}

type analyzeRequest struct {
	Image    string `json:"image"`
	Detector string `json:"detector,omitempty"`
}

type analyzeResponse struct {
	DominantEmotion string `json:"dominant_emotion"`
	Error           string `json:"error"`
}

// Classify submits a JPEG frame for analysis and returns the dominant
// emotion. A frame without a detectable face is an error; callers keep
// their previous history.
func (c *Client) Classify(ctx context.Context, image []byte) (emotion.Label, error) {
	if len(image) == 0 {
		return "", services.Wrap(services.ErrTransient, "classifier", "classify", "empty frame", nil)
	}

	encoded, err := json.Marshal(analyzeRequest{
		Image:    base64.StdEncoding.EncodeToString(image),
		Detector: c.detector,
	})
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "classifier", "classify", "encode request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+analyzePath, bytes.NewReader(encoded))
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "classifier", "classify", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", services.Wrap(services.ErrTimeout, "classifier", "classify", "request deadline exceeded", err)
		}
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify", "sidecar unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify", "read body", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify",
			fmt.Sprintf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(body))), nil)
	}

	var parsed analyzeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify", "decode response", err)
	}
	if parsed.Error != "" {
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify", parsed.Error, nil)
	}

	label := emotion.Normalize(parsed.DominantEmotion)
	if !emotion.Known(label) {
		return "", services.Wrap(services.ErrExternalService, "classifier", "classify",
			fmt.Sprintf("unrecognized label %q", parsed.DominantEmotion), nil)
	}
	return label, nil
}

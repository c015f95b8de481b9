package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jpalmer/promoboost/internal/logger"
)

var (
	// ErrProviderDisabled is returned when generation is requested while the
	// provider is switched off in settings.
	ErrProviderDisabled = errors.New("ollama is currently disabled, enable it in LLM settings")

	// ErrEmptyCompletion is returned when the provider answers successfully
	// but with no generated text.
	ErrEmptyCompletion = errors.New("no response from ollama")
)

// Client calls an Ollama-compatible completion endpoint. Runtime URL and
// model come from the settings cache on every request, so settings changes
// take effect without a restart.
type Client struct {
	http     *resty.Client
	settings *SettingsCache
}

// NewClient creates an LLM client.
// Parameters:
//   - settings: settings cache resolving URL, model, and the enabled flag.
//   - timeout: per-request timeout.
// Returns:
//   - *Client: initialized client.
func NewClient(settings *SettingsCache, timeout time.Duration) *Client {
	client := resty.New()
	client.SetHeader("Content-Type", "application/json")
	// Generation against local models can be slow, so the timeout is
	// configurable rather than resty's default
	client.SetTimeout(timeout)

	return &Client{
		http:     client,
		settings: settings,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Complete sends a prompt and returns the trimmed completion text.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - prompt: full prompt text.
// Returns:
//   - string: completion with surrounding whitespace removed.
//   - error: ErrProviderDisabled, ErrEmptyCompletion, or a wrapped transport
//     or API error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	settings := c.settings.Get(ctx)
	if !settings.Enabled {
		return "", ErrProviderDisabled
	}

	endpoint := strings.TrimRight(settings.URL, "/") + "/api/generate"

	start := time.Now()
	var resp generateResponse
	httpResp, err := c.http.R().
		SetContext(ctx).
		SetBody(generateRequest{
			Model:  settings.Model,
			Prompt: prompt,
			Stream: false,
		}).
		SetResult(&resp).
		Post(endpoint)

	if err != nil {
		return "", fmt.Errorf("cannot connect to Ollama at %s, make sure Ollama is running and accessible: %w", settings.URL, err)
	}

	if httpResp.StatusCode() < 200 || httpResp.StatusCode() >= 300 {
		errorMsg := string(httpResp.Body())
		if resp.Error != "" {
			errorMsg = resp.Error
		}
		return "", fmt.Errorf("ollama API error: %d - %s", httpResp.StatusCode(), errorMsg)
	}

	completion := strings.TrimSpace(resp.Response)
	if completion == "" {
		return "", ErrEmptyCompletion
	}

	logger.With(logger.Fields{
		logger.FieldComponent:  "llm",
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
		logger.FieldSize:       len(completion),
	}).Debug(ctx, "Completion received from %s model %s", settings.URL, settings.Model)

	return completion, nil
}

// Enabled reports whether the provider is currently enabled in settings.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - bool: true when generation requests will be attempted.
func (c *Client) Enabled(ctx context.Context) bool {
	return c.settings.Get(ctx).Enabled
}

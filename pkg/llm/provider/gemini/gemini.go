// Package gemini implements pkg/llm's Client against the Google
// Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/halfmoonlabs/vinyasa/pkg/llm"
)

const (
	// DefaultBaseURL is the Generative Language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when the request names none.
	DefaultModel = "gemini-2.0-flash"
)

// Config holds configuration for the Gemini client.
type Config struct {
	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string

	// APIKey is required.
	APIKey string

	// Model is the default model. Defaults to DefaultModel if empty.
	Model string
}

// Client calls the Gemini generateContent API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a Gemini client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Name returns "gemini".
func (c *Client) Name() string { return "gemini" }

// Generate sends a generateContent request and returns the joined
// candidate text.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
	}
	if req.System != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.System}}}
	}
	if req.Temperature != 0 {
		body.GenerationConfig = &generationConfig{Temperature: req.Temperature}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini: marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("gemini: creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var envelope apiError
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
			return "", fmt.Errorf("gemini: api returned status %d: %s", resp.StatusCode, envelope.Error.Message)
		}
		return "", fmt.Errorf("gemini: api returned status %d: %s", resp.StatusCode, string(raw))
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decoding response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("gemini: response has no candidates")
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}

// GenerateStream emulates streaming by delivering the full response as
// a single delta.
func (c *Client) GenerateStream(ctx context.Context, req llm.Request, fn func(delta string) error) error {
	text, err := c.Generate(ctx, req)
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return fn(text)
}

var _ llm.Client = (*Client)(nil)

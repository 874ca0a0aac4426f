// Package groq implements pkg/llm's Client against Groq's
// OpenAI-compatible chat completions API.
package groq

import (
	"bufio"
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
	// DefaultBaseURL is Groq's OpenAI-compatible API root.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is used when the request names none.
	DefaultModel = "llama-3.3-70b-versatile"
)

// Config holds configuration for the Groq client.
type Config struct {
	// BaseURL overrides DefaultBaseURL when set.
	BaseURL string

	// APIKey is required.
	APIKey string

	// Model is the default model. Defaults to DefaultModel if empty.
	Model string
}

// Client calls Groq's chat completions API.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a Groq client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: api key is required")
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

// Name returns "groq".
func (c *Client) Name() string { return "groq" }

// Generate sends a blocking completion request.
func (c *Client) Generate(ctx context.Context, req llm.Request) (string, error) {
	resp, err := c.post(ctx, c.buildRequest(req, false))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.apiErr(resp)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("groq: decoding response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("groq: response has no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// GenerateStream sends a streaming completion request and invokes fn for
// every content delta.
func (c *Client) GenerateStream(ctx context.Context, req llm.Request, fn func(delta string) error) error {
	resp, err := c.post(ctx, c.buildRequest(req, true))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.apiErr(resp)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		payload, ok := strings.CutPrefix(scanner.Text(), "data: ")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == "[DONE]" {
			return nil
		}

		var chunk streamChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			continue
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		if delta := chunk.Choices[0].Delta.Content; delta != "" {
			if err := fn(delta); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}

func (c *Client) buildRequest(req llm.Request, stream bool) chatRequest {
	model := req.Model
	if model == "" {
		model = c.model
	}

	var msgs []message
	if req.System != "" {
		msgs = append(msgs, message{Role: "system", Content: req.System})
	}
	msgs = append(msgs, message{Role: "user", Content: req.Prompt})

	out := chatRequest{Model: model, Messages: msgs, Stream: stream}
	if req.Temperature != 0 {
		t := req.Temperature
		out.Temperature = &t
	}
	return out
}

func (c *Client) post(ctx context.Context, body chatRequest) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("groq: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("groq: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("groq: sending request: %w", err)
	}
	return resp, nil
}

func (c *Client) apiErr(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var envelope apiError
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("groq: api returned status %d: %s", resp.StatusCode, envelope.Error.Message)
	}
	return fmt.Errorf("groq: api returned status %d: %s", resp.StatusCode, string(body))
}

var _ llm.Client = (*Client)(nil)

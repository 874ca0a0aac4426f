// Package coach is the client library for a running vinyasa server.
// The non-streaming calls are thin, stateless request/response wrappers;
// StreamChat opens the streaming chat endpoint and drives the
// incremental decoder in pkg/stream over its body.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/halfmoonlabs/vinyasa/pkg/flow"
	"github.com/halfmoonlabs/vinyasa/pkg/stream"
)

// DefaultTarget is the server URL used when none is configured.
const DefaultTarget = "http://localhost:8080"

// defaultTimeout covers slow model-backed replies.
const defaultTimeout = 5 * time.Minute

// ErrNoBody is returned by StreamChat when the server accepted the
// request but the response carried no body to decode.
var ErrNoBody = errors.New("streaming response has no body")

// Config configures a Client.
type Config struct {
	// Target is the server base URL (scheme + host + port).
	Target string

	// HTTPClient overrides the default 5-minute-timeout client.
	HTTPClient *http.Client
}

// Client talks to the vinyasa server. The zero dependencies make it
// safe to construct per command invocation.
type Client struct {
	target string
	http   *http.Client
}

// New builds a Client from cfg.
func New(cfg Config) *Client {
	target := strings.TrimRight(cfg.Target, "/")
	if target == "" {
		target = DefaultTarget
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{target: target, http: httpClient}
}

// Target returns the server base URL the client talks to.
func (c *Client) Target() string { return c.target }

// Health is the server's health report.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// chatRequest is the body of both chat endpoints.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the synchronous chat reply.
type chatResponse struct {
	Reply string `json:"reply"`
}

// errorResponse is the server's JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// Health pings the server's health endpoint.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.target+"/healthz", nil)
	if err != nil {
		return nil, fmt.Errorf("creating health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reaching server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("decoding health response: %w", err)
	}
	return &health, nil
}

// Chat submits one message and returns the full reply synchronously.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	var out chatResponse
	if err := c.postJSON(ctx, "/api/v1/chat", chatRequest{Message: message}, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// PlanFlow submits session parameters and returns the generated plan.
func (c *Client) PlanFlow(ctx context.Context, req flow.Request) (*flow.Plan, error) {
	var plan flow.Plan
	if err := c.postJSON(ctx, "/api/v1/flow", req, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Session fetches one stored session by id.
func (c *Client) Session(ctx context.Context, id string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.target+"/api/v1/sessions/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("creating session request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reaching server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}
	return io.ReadAll(resp.Body)
}

// StreamChat submits one message to the streaming chat endpoint and
// delivers decoded events to sink in arrival order. A rejected request
// surfaces once, before any events, with the server's error message
// when its body carries one. The response body is owned by the decoder
// and closed on every exit path.
func (c *Client) StreamChat(ctx context.Context, message string, sink stream.Sink) error {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.target+"/api/v1/chat/stream", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating stream request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("opening chat stream: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return c.statusError(resp)
	}
	if resp.Body == nil {
		return ErrNoBody
	}

	return stream.NewDecoder(resp.Body).Run(ctx, sink)
}

// postJSON posts body to path and decodes a 200 response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.target+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("reaching server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.statusError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// statusError turns a non-success response into an error carrying the
// server's message when the body parses, else a status-derived one.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}

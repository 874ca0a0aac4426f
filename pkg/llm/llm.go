// Package llm defines the provider-neutral text generation contract.
// Concrete clients live under pkg/llm/provider.
package llm

import "context"

// Request is a single generation request. The zero value of optional
// fields means "use the provider's configured default".
type Request struct {
	// System is the system prompt, empty for none.
	System string

	// Prompt is the user message.
	Prompt string

	// Temperature controls sampling. Zero means the provider default.
	Temperature float64

	// Model overrides the client's configured model when set.
	Model string
}

// Client generates text from a remote or local model.
type Client interface {
	// Name returns the canonical provider name ("groq", "gemini", "ollama").
	Name() string

	// Generate sends the request and returns the full response text.
	Generate(ctx context.Context, req Request) (string, error)

	// GenerateStream sends the request and invokes fn for every text
	// delta as it arrives. Providers without native streaming deliver
	// the full response as a single delta. A non-nil error from fn
	// aborts the stream and is returned.
	GenerateStream(ctx context.Context, req Request, fn func(delta string) error) error
}

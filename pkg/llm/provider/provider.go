// Package provider selects and constructs llm.Client implementations
// from configuration.
package provider

import (
	"errors"
	"fmt"
	"strings"

	"github.com/halfmoonlabs/vinyasa/pkg/llm"
	"github.com/halfmoonlabs/vinyasa/pkg/llm/provider/gemini"
	"github.com/halfmoonlabs/vinyasa/pkg/llm/provider/groq"
	"github.com/halfmoonlabs/vinyasa/pkg/llm/provider/ollama"
)

// ErrNoProvider is returned by Detect when the provider is "auto" and no
// credentials resolve. Callers treat it as non-fatal: flow generation
// falls back to deterministic sequencing and chat answers with a static
// message instead of failing the request.
var ErrNoProvider = errors.New("no llm provider available")

// KeyResolver returns the API key for a provider name, or "" when none
// is configured. credentials.Manager.ResolveKey satisfies it.
type KeyResolver func(provider string) string

// DetectOpts carries the settings Detect needs to construct a client.
type DetectOpts struct {
	// Provider is "auto" (or empty), "groq", "gemini", or "ollama".
	Provider string

	// Model overrides the selected provider's default model when set.
	Model string

	GroqTarget   string
	GeminiTarget string
	OllamaTarget string

	// ResolveKey looks up API keys for groq and gemini.
	ResolveKey KeyResolver
}

// Detect constructs the llm.Client selected by opts.
//
// An explicitly named provider must be constructible: groq and gemini
// error when no key resolves, ollama always constructs since it is
// keyless. In auto mode the first provider with a resolvable key wins,
// checked in the order groq then gemini; when neither has a key Detect
// returns ErrNoProvider. Ollama is never auto-selected because the
// presence of a local daemon cannot be assumed.
func Detect(opts DetectOpts) (llm.Client, error) {
	resolve := opts.ResolveKey
	if resolve == nil {
		resolve = func(string) string { return "" }
	}

	switch strings.ToLower(opts.Provider) {
	case "groq":
		key := resolve("groq")
		if key == "" {
			return nil, fmt.Errorf("provider groq selected but no api key configured")
		}
		return groq.New(groq.Config{BaseURL: opts.GroqTarget, APIKey: key, Model: opts.Model})

	case "gemini":
		key := resolve("gemini")
		if key == "" {
			return nil, fmt.Errorf("provider gemini selected but no api key configured")
		}
		return gemini.New(gemini.Config{BaseURL: opts.GeminiTarget, APIKey: key, Model: opts.Model})

	case "ollama":
		return ollama.New(ollama.Config{BaseURL: opts.OllamaTarget, Model: opts.Model})

	case "", "auto":
		if key := resolve("groq"); key != "" {
			return groq.New(groq.Config{BaseURL: opts.GroqTarget, APIKey: key, Model: opts.Model})
		}
		if key := resolve("gemini"); key != "" {
			return gemini.New(gemini.Config{BaseURL: opts.GeminiTarget, APIKey: key, Model: opts.Model})
		}
		return nil, ErrNoProvider

	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", opts.Provider)
	}
}

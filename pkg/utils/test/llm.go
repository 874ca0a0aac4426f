package testutils

import (
	"context"
	"fmt"

	"github.com/halfmoonlabs/vinyasa/pkg/llm"
)

// MockLLM is a scripted llm.Client. Responses are returned in order;
// after they run out every call returns Fallback. Requests records each
// request received.
type MockLLM struct {
	Responses []string
	Fallback  string
	Requests  []llm.Request

	// FailWith causes every call to return this error.
	FailWith error
}

func NewMockLLM(responses ...string) *MockLLM {
	return &MockLLM{Responses: responses}
}

func (m *MockLLM) Name() string { return "mock" }

func (m *MockLLM) Generate(_ context.Context, req llm.Request) (string, error) {
	m.Requests = append(m.Requests, req)
	if m.FailWith != nil {
		return "", m.FailWith
	}
	return m.next(), nil
}

func (m *MockLLM) GenerateStream(_ context.Context, req llm.Request, fn func(delta string) error) error {
	m.Requests = append(m.Requests, req)
	if m.FailWith != nil {
		return m.FailWith
	}
	return fn(m.next())
}

func (m *MockLLM) next() string {
	if len(m.Responses) == 0 {
		if m.Fallback != "" {
			return m.Fallback
		}
		return fmt.Sprintf("mock response %d", len(m.Requests))
	}
	out := m.Responses[0]
	m.Responses = m.Responses[1:]
	return out
}

var _ llm.Client = (*MockLLM)(nil)

package testutils

import (
	"context"
	"sync"

	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
)

// MockPublisher is a mock implementation of eventstream.Publisher for testing.
// It records published events and can be primed to fail.
type MockPublisher struct {
	mu     sync.Mutex
	events []*eventstream.SessionPlannedEvent

	// FailWith, when set, is returned by every publish.
	FailWith error

	// Closed reports whether Close was called.
	Closed bool
}

// NewMockPublisher creates a new mock publisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// PublishSession records the event. Safe for concurrent use since the flow
// service publishes from worker goroutines.
func (m *MockPublisher) PublishSession(_ context.Context, event *eventstream.SessionPlannedEvent) error {
	if event == nil {
		return eventstream.ErrNilSessionEvent
	}
	if m.FailWith != nil {
		return m.FailWith
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)

	return nil
}

// Events returns a snapshot of the published events.
func (m *MockPublisher) Events() []*eventstream.SessionPlannedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*eventstream.SessionPlannedEvent, len(m.events))
	copy(out, m.events)

	return out
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true

	return nil
}

// Ensure MockPublisher implements the eventstream.Publisher interface
var _ eventstream.Publisher = (*MockPublisher)(nil)

package eventstream

import "context"

// Publisher publishes session events to an event stream backend.
type Publisher interface {
	PublishSession(ctx context.Context, event *SessionPlannedEvent) error
	Close() error
}

package eventstream

import "time"

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeSessionPlanned is emitted after a practice session is planned.
	EventTypeSessionPlanned = "vinyasa.session.planned"
)

// SessionPlannedEvent is a transport-neutral event payload for a planned session.
type SessionPlannedEvent struct {
	SchemaVersion int         `json:"schema_version"`
	EventType     string      `json:"event_type"`
	EventID       string      `json:"event_id"`
	EmittedAt     time.Time   `json:"emitted_at"`
	Source        EventSource `json:"source"`
	Session       SessionMeta `json:"session"`
}

// EventSource identifies where the session was planned.
type EventSource struct {
	Service string `json:"service"`
	Model   string `json:"model,omitempty"`
}

// SessionMeta captures the planned session for the event.
type SessionMeta struct {
	SessionID       string `json:"session_id"`
	UserID          string `json:"user_id,omitempty"`
	Phase           string `json:"cycle_phase"`
	Intensity       int    `json:"intensity"`
	SectionCount    int    `json:"section_count"`
	DurationMinutes int    `json:"duration_minutes"`
}

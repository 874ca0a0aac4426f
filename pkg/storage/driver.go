// Package storage
package storage

import (
	"context"
	"encoding/json"
	"time"
)

// Session is one generated practice: the flow plan that was produced plus
// the cycle context it was produced for.
type Session struct {
	// ID uniquely identifies the session.
	ID string `json:"id"`

	// UserID is the owner of the session. Anonymous sessions leave it empty.
	UserID string `json:"user_id"`

	// Phase is the cycle phase the plan was generated for.
	Phase string `json:"cycle_phase"`

	// DurationMinutes is the requested practice length.
	DurationMinutes int `json:"duration_minutes"`

	// Plan is the generated flow plan, kept as raw JSON so the storage
	// layer stays ignorant of its shape.
	Plan json.RawMessage `json:"plan"`

	// CreatedAt is when the session was stored. Drivers fill it in when
	// the caller leaves it zero.
	CreatedAt time.Time `json:"created_at"`
}

// User is a user's cycle profile.
type User struct {
	// ID uniquely identifies the user.
	ID string `json:"id"`

	// LastPeriodDate is the first day of the last period, YYYY-MM-DD.
	LastPeriodDate string `json:"last_period_date"`

	// CycleLength is the user's cycle length in days.
	CycleLength int `json:"cycle_length"`

	// UpdatedAt is when the profile was last saved. Drivers fill it in
	// when the caller leaves it zero.
	UpdatedAt time.Time `json:"updated_at"`
}

// Driver defines the interface for persisting and retrieving sessions and
// user profiles in a storage backend.
type Driver interface {
	// SaveSession stores a session. Saving an id that already exists
	// replaces the stored session.
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves a session by its id.
	GetSession(ctx context.Context, id string) (*Session, error)

	// ListSessions returns a user's sessions, newest first. A limit of
	// zero or less returns all of them.
	ListSessions(ctx context.Context, userID string, limit int) ([]*Session, error)

	// SaveUser stores a user's cycle profile, replacing any previous one.
	SaveUser(ctx context.Context, user *User) error

	// GetUser retrieves a user's cycle profile by id.
	GetUser(ctx context.Context, id string) (*User, error)

	// Close closes the store and releases any resources.
	Close() error
}

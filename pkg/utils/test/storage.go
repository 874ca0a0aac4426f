package testutils

import (
	"context"
	"sort"
	"time"

	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

// MockStorageDriver is a mock implementation of storage.Driver for testing.
// It records saved sessions and users and can be primed to fail.
type MockStorageDriver struct {
	Sessions map[string]*storage.Session
	Users    map[string]*storage.User

	// FailWith, when set, is returned by every save operation.
	FailWith error

	// Closed reports whether Close was called.
	Closed bool
}

// NewMockStorageDriver creates an empty mock store.
func NewMockStorageDriver() *MockStorageDriver {
	return &MockStorageDriver{
		Sessions: make(map[string]*storage.Session),
		Users:    make(map[string]*storage.User),
	}
}

func (m *MockStorageDriver) SaveSession(_ context.Context, session *storage.Session) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	stored := *session
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	m.Sessions[stored.ID] = &stored
	return nil
}

func (m *MockStorageDriver) GetSession(_ context.Context, id string) (*storage.Session, error) {
	session, ok := m.Sessions[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "session", ID: id}
	}
	out := *session
	return &out, nil
}

func (m *MockStorageDriver) ListSessions(_ context.Context, userID string, limit int) ([]*storage.Session, error) {
	var sessions []*storage.Session
	for _, session := range m.Sessions {
		if session.UserID != userID {
			continue
		}
		out := *session
		sessions = append(sessions, &out)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (m *MockStorageDriver) SaveUser(_ context.Context, user *storage.User) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	stored := *user
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}
	m.Users[stored.ID] = &stored
	return nil
}

func (m *MockStorageDriver) GetUser(_ context.Context, id string) (*storage.User, error) {
	user, ok := m.Users[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "user", ID: id}
	}
	out := *user
	return &out, nil
}

func (m *MockStorageDriver) Close() error {
	m.Closed = true
	return nil
}

var _ storage.Driver = (*MockStorageDriver)(nil)

package inmemory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

// Driver implements storage.Driver using in-memory maps.
type Driver struct {
	// mu is a read write sync mutex guarding both maps and the
	// session insertion order
	mu sync.RWMutex

	// sessions maps session id to the stored session
	sessions map[string]*storage.Session

	// users maps user id to the stored cycle profile
	users map[string]*storage.User

	// order holds session ids oldest first so listings stay
	// deterministic when created timestamps collide
	order []string
}

// NewDriver creates a new in-memory store.
func NewDriver() *Driver {
	return &Driver{
		sessions: make(map[string]*storage.Session),
		users:    make(map[string]*storage.User),
	}
}

// SaveSession stores a copy of the session, replacing any stored session
// with the same id. A zero CreatedAt is filled in with the current time.
func (s *Driver) SaveSession(_ context.Context, session *storage.Session) error {
	if session == nil {
		return errors.New("cannot store nil session")
	}
	if session.ID == "" {
		return errors.New("session id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	if _, ok := s.sessions[stored.ID]; !ok {
		s.order = append(s.order, stored.ID)
	}
	s.sessions[stored.ID] = &stored

	return nil
}

// GetSession retrieves a session by its id.
func (s *Driver) GetSession(_ context.Context, id string) (*storage.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "session", ID: id}
	}

	out := *session
	return &out, nil
}

// ListSessions returns a user's sessions newest first. Ties on the created
// timestamp keep reverse insertion order.
func (s *Driver) ListSessions(_ context.Context, userID string, limit int) ([]*storage.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sessions []*storage.Session
	for i := len(s.order) - 1; i >= 0; i-- {
		session, ok := s.sessions[s.order[i]]
		if !ok || session.UserID != userID {
			continue
		}
		out := *session
		sessions = append(sessions, &out)
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions, nil
}

// SaveUser stores a copy of the user's cycle profile, replacing any
// previous one. A zero UpdatedAt is filled in with the current time.
func (s *Driver) SaveUser(_ context.Context, user *storage.User) error {
	if user == nil {
		return errors.New("cannot store nil user")
	}
	if user.ID == "" {
		return errors.New("user id is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *user
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}
	s.users[stored.ID] = &stored

	return nil
}

// GetUser retrieves a user's cycle profile by id.
func (s *Driver) GetUser(_ context.Context, id string) (*storage.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, storage.NotFoundError{Kind: "user", ID: id}
	}

	out := *user
	return &out, nil
}

// Count returns the number of sessions in the in-memory store.
func (s *Driver) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close is a no-op for the in-memory store.
func (s *Driver) Close() error {
	return nil
}

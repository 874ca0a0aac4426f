// Package sqlite provides a SQLite-backed session store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

// schema is applied on open. Timestamps are stored as unix nanoseconds so
// ordering never depends on string formatting.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id               TEXT PRIMARY KEY,
	last_period_date TEXT NOT NULL DEFAULT '',
	cycle_length     INTEGER NOT NULL DEFAULT 28,
	updated_at       INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	id               TEXT PRIMARY KEY,
	user_id          TEXT NOT NULL DEFAULT '',
	cycle_phase      TEXT NOT NULL DEFAULT '',
	duration_minutes INTEGER NOT NULL DEFAULT 0,
	plan             TEXT NOT NULL DEFAULT '',
	created_at       INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);
CREATE INDEX IF NOT EXISTS idx_sessions_created_at ON sessions(created_at DESC);
`

// SQLiteDriver implements storage.Driver using SQLite.
type SQLiteDriver struct {
	db *sql.DB
}

// NewSQLiteDriver creates a new SQLite-backed store.
// The dbPath can be a file path or ":memory:" for an in-memory database.
func NewSQLiteDriver(dbPath string) (*SQLiteDriver, error) {
	// Open the database using the github.com/mattn/go-sqlite3 driver (registered as "sqlite3")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteDriver{db: db}, nil
}

// SaveSession stores a session, replacing any stored session with the same
// id. A zero CreatedAt is filled in with the current time.
func (s *SQLiteDriver) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return errors.New("cannot store nil session")
	}
	if session.ID == "" {
		return errors.New("session id is required")
	}

	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, cycle_phase, duration_minutes, plan, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id,
			cycle_phase = excluded.cycle_phase,
			duration_minutes = excluded.duration_minutes,
			plan = excluded.plan,
			created_at = excluded.created_at
	`, session.ID, session.UserID, session.Phase, session.DurationMinutes,
		string(session.Plan), createdAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving session %s: %w", session.ID, err)
	}

	return nil
}

// GetSession retrieves a session by its id.
func (s *SQLiteDriver) GetSession(ctx context.Context, id string) (*storage.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, cycle_phase, duration_minutes, plan, created_at
		FROM sessions
		WHERE id = ?
	`, id)

	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.NotFoundError{Kind: "session", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}

	return session, nil
}

// ListSessions returns a user's sessions newest first.
func (s *SQLiteDriver) ListSessions(ctx context.Context, userID string, limit int) ([]*storage.Session, error) {
	query := `
		SELECT id, user_id, cycle_phase, duration_minutes, plan, created_at
		FROM sessions
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sessions for %s: %w", userID, err)
	}
	defer rows.Close()

	var sessions []*storage.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// SaveUser stores a user's cycle profile, replacing any previous one.
// A zero UpdatedAt is filled in with the current time.
func (s *SQLiteDriver) SaveUser(ctx context.Context, user *storage.User) error {
	if user == nil {
		return errors.New("cannot store nil user")
	}
	if user.ID == "" {
		return errors.New("user id is required")
	}

	updatedAt := user.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, last_period_date, cycle_length, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_period_date = excluded.last_period_date,
			cycle_length = excluded.cycle_length,
			updated_at = excluded.updated_at
	`, user.ID, user.LastPeriodDate, user.CycleLength, updatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("saving user %s: %w", user.ID, err)
	}

	return nil
}

// GetUser retrieves a user's cycle profile by id.
func (s *SQLiteDriver) GetUser(ctx context.Context, id string) (*storage.User, error) {
	var (
		user      storage.User
		updatedAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, last_period_date, cycle_length, updated_at
		FROM users
		WHERE id = ?
	`, id).Scan(&user.ID, &user.LastPeriodDate, &user.CycleLength, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.NotFoundError{Kind: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}

	user.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return &user, nil
}

// Close closes the underlying database.
func (s *SQLiteDriver) Close() error {
	return s.db.Close()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*storage.Session, error) {
	var (
		session   storage.Session
		plan      string
		createdAt int64
	)
	if err := row.Scan(&session.ID, &session.UserID, &session.Phase,
		&session.DurationMinutes, &plan, &createdAt); err != nil {
		return nil, err
	}

	if plan != "" {
		session.Plan = json.RawMessage(plan)
	}
	session.CreatedAt = time.Unix(0, createdAt).UTC()

	return &session, nil
}

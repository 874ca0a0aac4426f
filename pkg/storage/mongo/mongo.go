// Package mongo provides a MongoDB-backed session store.
package mongo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

const (
	databaseName   = "vinyasa"
	connectTimeout = 5 * time.Second
)

// Driver implements storage.Driver using MongoDB. Sessions and users live
// in their own collections in the vinyasa database.
type Driver struct {
	client   *mongodriver.Client
	sessions *mongodriver.Collection
	users    *mongodriver.Collection
}

// sessionDoc is the persisted form of a storage.Session. The plan is kept
// as a JSON string so round-trips preserve it byte for byte.
type sessionDoc struct {
	ID              string    `bson:"_id"`
	UserID          string    `bson:"user_id"`
	Phase           string    `bson:"cycle_phase"`
	DurationMinutes int       `bson:"duration_minutes"`
	Plan            string    `bson:"plan,omitempty"`
	CreatedAt       time.Time `bson:"created_at"`
}

type userDoc struct {
	ID             string    `bson:"_id"`
	LastPeriodDate string    `bson:"last_period_date"`
	CycleLength    int       `bson:"cycle_length"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// NewDriver creates a new MongoDB-backed store.
// The uri is a MongoDB connection string, e.g. "mongodb://localhost:27017".
func NewDriver(ctx context.Context, uri string) (*Driver, error) {
	client, err := mongodriver.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// Verify the connection is reachable
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := client.Database(databaseName)
	d := &Driver{
		client:   client,
		sessions: db.Collection("sessions"),
		users:    db.Collection("users"),
	}

	// Index for newest-first listings per user.
	_, err = d.sessions.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return d, nil
}

// SaveSession upserts a session by its id. A zero CreatedAt is filled in
// with the current time.
func (d *Driver) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return errors.New("cannot store nil session")
	}
	if session.ID == "" {
		return errors.New("session id is required")
	}

	doc := sessionDoc{
		ID:              session.ID,
		UserID:          session.UserID,
		Phase:           session.Phase,
		DurationMinutes: session.DurationMinutes,
		Plan:            string(session.Plan),
		CreatedAt:       session.CreatedAt,
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	_, err := d.sessions.ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving session %s: %w", session.ID, err)
	}

	return nil
}

// GetSession retrieves a session by its id.
func (d *Driver) GetSession(ctx context.Context, id string) (*storage.Session, error) {
	var doc sessionDoc
	err := d.sessions.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, storage.NotFoundError{Kind: "session", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting session %s: %w", id, err)
	}

	return doc.session(), nil
}

// ListSessions returns a user's sessions newest first.
func (d *Driver) ListSessions(ctx context.Context, userID string, limit int) ([]*storage.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := d.sessions.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing sessions for %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var sessions []*storage.Session
	for cursor.Next(ctx) {
		var doc sessionDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding session: %w", err)
		}
		sessions = append(sessions, doc.session())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// SaveUser upserts a user's cycle profile by its id. A zero UpdatedAt is
// filled in with the current time.
func (d *Driver) SaveUser(ctx context.Context, user *storage.User) error {
	if user == nil {
		return errors.New("cannot store nil user")
	}
	if user.ID == "" {
		return errors.New("user id is required")
	}

	doc := userDoc{
		ID:             user.ID,
		LastPeriodDate: user.LastPeriodDate,
		CycleLength:    user.CycleLength,
		UpdatedAt:      user.UpdatedAt,
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = time.Now().UTC()
	}

	_, err := d.users.ReplaceOne(ctx,
		bson.M{"_id": doc.ID}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("saving user %s: %w", user.ID, err)
	}

	return nil
}

// GetUser retrieves a user's cycle profile by id.
func (d *Driver) GetUser(ctx context.Context, id string) (*storage.User, error) {
	var doc userDoc
	err := d.users.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return nil, storage.NotFoundError{Kind: "user", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %s: %w", id, err)
	}

	return &storage.User{
		ID:             doc.ID,
		LastPeriodDate: doc.LastPeriodDate,
		CycleLength:    doc.CycleLength,
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}, nil
}

// Drop removes both collections. Used by tests for isolation.
func (d *Driver) Drop(ctx context.Context) error {
	if err := d.sessions.Drop(ctx); err != nil {
		return fmt.Errorf("dropping sessions: %w", err)
	}
	if err := d.users.Drop(ctx); err != nil {
		return fmt.Errorf("dropping users: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (d *Driver) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return d.client.Disconnect(ctx)
}

func (doc sessionDoc) session() *storage.Session {
	session := &storage.Session{
		ID:              doc.ID,
		UserID:          doc.UserID,
		Phase:           doc.Phase,
		DurationMinutes: doc.DurationMinutes,
		CreatedAt:       doc.CreatedAt.UTC(),
	}
	if doc.Plan != "" {
		session.Plan = json.RawMessage(doc.Plan)
	}
	return session
}

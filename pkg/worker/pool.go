// Package worker provides an asynchronous pool that keeps slow side
// effects off the API hot path: persisting planned sessions, publishing
// session events, and indexing ingested knowledge for semantic search.
//
// Enqueue never blocks; when the queue is full the job is dropped and
// logged, so a slow broker or store degrades telemetry, not requests.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
	"github.com/halfmoonlabs/vinyasa/pkg/knowledge"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/rag"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job is a unit of work for the pool. Fields are independent: a job may
// carry a session to persist, a cycle profile to upsert, an event to
// publish, knowledge entries to index, or any combination.
type Job struct {
	// Session is stored via the configured storage driver.
	Session *storage.Session

	// Event is published via the configured publisher.
	Event *eventstream.SessionPlannedEvent

	// User is a cycle profile upserted via the configured storage driver.
	User *storage.User

	// Entries are embedded and indexed via the configured retriever.
	Entries []knowledge.Entry
}

// Config is the configuration options for the worker pool.
type Config struct {
	// Driver persists sessions. Nil skips persistence jobs.
	Driver storage.Driver

	// Publisher publishes session events. Nil skips event jobs.
	Publisher eventstream.Publisher

	// Retriever indexes knowledge entries. Nil skips indexing jobs.
	Retriever *rag.Retriever

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (defaults to 256).
	QueueSize uint

	Logger *slog.Logger
}

// Pool processes jobs asynchronously via a fixed set of workers.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *slog.Logger
}

// NewPool creates a Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}
	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}
	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}

	p := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	p.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go p.worker(i)
	}

	return p, nil
}

// Enqueue submits a job for processing. Returns true if enqueued, false
// if the queue is full and the job was dropped.
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("job queued",
			"has_session", job.Session != nil,
			"has_event", job.Event != nil,
			"has_user", job.User != nil,
			"entries", len(job.Entries),
		)
		return true
	default:
		p.logger.Error("job not queued, queue full, job dropped")
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the HTTP server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", "worker_id", id)

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("worker stopped", "worker_id", id)
}

// processJob runs every side of the job, logging failures instead of
// propagating them: one broken backend must not starve the others.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	if job.Session != nil && p.config.Driver != nil {
		if err := p.config.Driver.SaveSession(ctx, job.Session); err != nil {
			p.logger.Error("async session save failed",
				"session_id", job.Session.ID, "error", err)
		} else {
			p.logger.Info("session stored", "session_id", job.Session.ID)
		}
	}

	if job.User != nil && p.config.Driver != nil {
		if err := p.config.Driver.SaveUser(ctx, job.User); err != nil {
			p.logger.Error("async cycle profile save failed",
				"user_id", job.User.ID, "error", err)
		}
	}

	if job.Event != nil && p.config.Publisher != nil {
		if err := p.config.Publisher.PublishSession(ctx, job.Event); err != nil {
			p.logger.Warn("session event publish failed",
				"event_id", job.Event.EventID, "error", err)
		}
	}

	if len(job.Entries) > 0 && p.config.Retriever != nil {
		if err := p.config.Retriever.IndexEntries(ctx, job.Entries); err != nil {
			p.logger.Warn("knowledge indexing failed",
				"entries", len(job.Entries), "error", err)
		}
	}
}

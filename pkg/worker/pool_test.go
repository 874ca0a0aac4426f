package worker

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
	"github.com/halfmoonlabs/vinyasa/pkg/storage"
	"github.com/halfmoonlabs/vinyasa/pkg/storage/inmemory"
	testutils "github.com/halfmoonlabs/vinyasa/pkg/utils/test"
)

// blockingDriver holds every SaveSession until release is closed, so a
// test can keep a worker busy on demand.
type blockingDriver struct {
	release chan struct{}
	started chan struct{}
}

func (d *blockingDriver) SaveSession(_ context.Context, _ *storage.Session) error {
	select {
	case d.started <- struct{}{}:
	default:
	}
	<-d.release
	return nil
}

func (d *blockingDriver) GetSession(_ context.Context, id string) (*storage.Session, error) {
	return nil, storage.NotFoundError{Kind: "session", ID: id}
}

func (d *blockingDriver) ListSessions(_ context.Context, _ string, _ int) ([]*storage.Session, error) {
	return nil, nil
}

func (d *blockingDriver) SaveUser(_ context.Context, _ *storage.User) error { return nil }

func (d *blockingDriver) GetUser(_ context.Context, id string) (*storage.User, error) {
	return nil, storage.NotFoundError{Kind: "user", ID: id}
}

func (d *blockingDriver) Close() error { return nil }

// newTestPool creates a worker pool backed by an in-memory driver.
// Callers should "wp.Close()" to drain enqueued jobs before asserting
// storage state.
func newTestPool() (*Pool, *inmemory.Driver, *testutils.MockPublisher) {
	driver := inmemory.NewDriver()
	publisher := testutils.NewMockPublisher()

	wp, err := NewPool(&Config{
		Driver:    driver,
		Publisher: publisher,
		Logger:    logger.Nop(),
	})
	Expect(err).NotTo(HaveOccurred())

	return wp, driver, publisher
}

var _ = Describe("Worker Pool", func() {
	var (
		wp        *Pool
		driver    *inmemory.Driver
		publisher *testutils.MockPublisher
		ctx       context.Context
	)

	BeforeEach(func() {
		wp, driver, publisher = newTestPool()
		ctx = context.Background()
	})

	Describe("Enqueue", func() {
		It("returns true when the queue has capacity", func() {
			ok := wp.Enqueue(Job{Session: &storage.Session{ID: "s1"}})
			Expect(ok).To(BeTrue())
			wp.Close()
		})

		It("returns false when the queue is full", func() {
			// Pin the single worker on a blocking save so the one-slot
			// queue genuinely fills up.
			blocking := &blockingDriver{release: make(chan struct{}), started: make(chan struct{}, 1)}
			small, err := NewPool(&Config{
				Driver:     blocking,
				QueueSize:  1,
				NumWorkers: 1,
				Logger:     logger.Nop(),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(small.Enqueue(Job{Session: &storage.Session{ID: "busy"}})).To(BeTrue())
			<-blocking.started

			Expect(small.Enqueue(Job{Session: &storage.Session{ID: "queued"}})).To(BeTrue())
			Expect(small.Enqueue(Job{Session: &storage.Session{ID: "dropped"}})).To(BeFalse())

			close(blocking.release)
			small.Close()
		})
	})

	Describe("processing jobs", func() {
		It("persists the session", func() {
			wp.Enqueue(Job{Session: &storage.Session{ID: "s1", UserID: "ada"}})
			wp.Close()

			session, err := driver.GetSession(ctx, "s1")
			Expect(err).NotTo(HaveOccurred())
			Expect(session.UserID).To(Equal("ada"))
		})

		It("upserts the cycle profile", func() {
			wp.Enqueue(Job{User: &storage.User{ID: "ada", LastPeriodDate: "2026-08-28", CycleLength: 28}})
			wp.Close()

			user, err := driver.GetUser(ctx, "ada")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.LastPeriodDate).To(Equal("2026-08-28"))
		})

		It("publishes the event", func() {
			wp.Enqueue(Job{Event: &eventstream.SessionPlannedEvent{EventID: "e1"}})
			wp.Close()

			events := publisher.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].EventID).To(Equal("e1"))
		})

		It("handles a job carrying both a session and an event", func() {
			wp.Enqueue(Job{
				Session: &storage.Session{ID: "s2"},
				Event:   &eventstream.SessionPlannedEvent{EventID: "e2"},
			})
			wp.Close()

			_, err := driver.GetSession(ctx, "s2")
			Expect(err).NotTo(HaveOccurred())
			Expect(publisher.Events()).To(HaveLen(1))
		})

		It("skips persistence when no driver is configured", func() {
			bare, err := NewPool(&Config{Logger: logger.Nop()})
			Expect(err).NotTo(HaveOccurred())

			Expect(bare.Enqueue(Job{Session: &storage.Session{ID: "s3"}})).To(BeTrue())
			bare.Close()
		})
	})

	Describe("Close", func() {
		It("drains every enqueued job before returning", func() {
			for i := range 20 {
				wp.Enqueue(Job{Session: &storage.Session{ID: string(rune('a' + i))}})
			}
			wp.Close()

			sessions, err := driver.ListSessions(ctx, "", 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(sessions).To(HaveLen(20))
		})
	})
})

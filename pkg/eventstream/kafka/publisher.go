// Package kafka implements the eventstream Publisher on a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/halfmoonlabs/vinyasa/pkg/eventstream"
	"github.com/halfmoonlabs/vinyasa/pkg/logger"
)

// DefaultTopic is the topic session events are written to when none is configured.
const DefaultTopic = "vinyasa.sessions"

// Config holds configuration for the Kafka publisher.
type Config struct {
	// Brokers is the list of Kafka broker addresses (e.g., "localhost:9092").
	Brokers []string

	// Topic is the topic session events are written to.
	// Defaults to DefaultTopic if empty.
	Topic string
}

// Publisher writes session events to a Kafka topic, keyed by session ID so
// events for the same session land on the same partition.
type Publisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewPublisher creates a Kafka-backed eventstream publisher.
func NewPublisher(c Config, log *slog.Logger) (*Publisher, error) {
	if len(c.Brokers) == 0 {
		return nil, fmt.Errorf("at least one kafka broker is required")
	}

	topic := c.Topic
	if topic == "" {
		topic = DefaultTopic
	}
	if log == nil {
		log = logger.Nop()
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireOne,
	}

	return &Publisher{
		writer: writer,
		logger: log,
	}, nil
}

// PublishSession marshals the event to JSON and writes it to the topic.
func (p *Publisher) PublishSession(ctx context.Context, event *eventstream.SessionPlannedEvent) error {
	if event == nil {
		return eventstream.ErrNilSessionEvent
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling session event: %w", err)
	}

	msg := kafkago.Message{
		Key:   []byte(event.Session.SessionID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing session event: %w", err)
	}

	p.logger.Debug("published session event",
		"event_id", event.EventID,
		"session_id", event.Session.SessionID,
		"topic", p.writer.Topic,
	)

	return nil
}

// Close flushes pending messages and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// Ensure Publisher implements the eventstream.Publisher interface
var _ eventstream.Publisher = (*Publisher)(nil)

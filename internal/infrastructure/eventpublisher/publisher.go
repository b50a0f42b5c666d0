package eventpublisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	kafka "github.com/segmentio/kafka-go"
)

// KafkaPublisher implements usecase.EventPublisher on a Kafka topic. Events
// are published after the owning unit of work has committed; a publish
// failure never affects the ledger operation that produced the event.
type KafkaPublisher struct {
	writer      *kafka.Writer
	logger      zerolog.Logger
	maxElapsed  time.Duration
	maxInterval time.Duration
}

// NewKafkaPublisher creates a publisher writing to the given topic.
func NewKafkaPublisher(brokers []string, topic string, logger zerolog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
		},
		logger:      logger,
		maxElapsed:  10 * time.Second,
		maxInterval: 2 * time.Second,
	}
}

// Publish serializes the payload as JSON and writes it to Kafka, retrying
// transient broker errors with exponential backoff. The event type is carried
// both as the message key and as a message header.
func (p *KafkaPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(eventType),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = p.maxInterval
	b.MaxElapsedTime = p.maxElapsed

	return backoff.Retry(func() error {
		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Warn().
				Err(err).
				Str("event_type", eventType).
				Msg("kafka publish failed, retrying")
			return err
		}
		return nil
	}, backoff.WithContext(b, ctx))
}

// Close flushes and closes the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards all events. Used when no broker is configured.
type NopPublisher struct{}

// NewNopPublisher creates a NopPublisher.
func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

// Publish discards the event.
func (p *NopPublisher) Publish(ctx context.Context, eventType string, payload any) error {
	return nil
}

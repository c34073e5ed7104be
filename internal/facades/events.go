package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/idea2context/internal/logger"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaEventPublisher publishes auth events as JSON messages keyed by user ID.
type KafkaEventPublisher struct {
	writer MessageWriter
}

// NewKafkaEventPublisher creates a publisher writing to topic on brokers.
func NewKafkaEventPublisher(brokers []string, topic string) *KafkaEventPublisher {
	return NewKafkaEventPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	})
}

// NewKafkaEventPublisherWithWriter creates a publisher around an existing writer.
func NewKafkaEventPublisherWithWriter(w MessageWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: w}
}

// Publish writes a single event.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event models.AuthEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID.String()),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to write auth event", "type", event.Type, "error", err)
		return err
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

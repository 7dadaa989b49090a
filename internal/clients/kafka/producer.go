package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"voiceorder-server/internal/observability"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes order events.
type Producer struct {
	writer messageWriter
	logger *observability.Logger
}

type ProducerConfig struct {
	Brokers []string
	Topic   string
}

func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{},
		Compression:            kafka.Snappy,
		BatchTimeout:           50 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
	}
}

// EventMessage is the envelope of every published event.
type EventMessage struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Key       string      `json:"key"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType, key string, data interface{}) EventMessage {
	return EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       key,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// PublishEvent writes one event. Events sharing a key land on the same partition.
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "kafka_event_type", Value: event.Type},
		observability.Field{Key: "kafka_event_id", Value: event.ID},
	)

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error(ctx, "failed to marshal event", err)
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.Key),
		Value: eventBytes,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to write message to kafka", err)
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	p.logger.Info(ctx, fmt.Sprintf("published event %s to kafka", event.Type))
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

// Publish wraps data in a new event keyed by key and writes it.
func (p *Producer) Publish(ctx context.Context, eventType, key string, data interface{}) error {
	return p.PublishEvent(ctx, NewEvent(eventType, key, data))
}

package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

// KafkaSink publishes events to a Kafka topic instead of the in-process
// bus, for deployments where listeners run in other processes. Messages
// are keyed by event name and written asynchronously so the request path
// never waits on the broker.
type KafkaSink struct {
	writer *kafka.Writer
}

// NewKafkaSink builds a sink writing to topic on the given brokers.
func NewKafkaSink(brokers []string, topic string) *KafkaSink {
	return &KafkaSink{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			Async:        true,
			RequiredAcks: kafka.RequireOne,
			Completion: func(messages []kafka.Message, err error) {
				if err != nil {
					slog.Error("kafka event publish failed", "error", err, "messages", len(messages))
				}
			},
		},
	}
}

func (s *KafkaSink) Publish(ctx context.Context, e Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		slog.ErrorContext(ctx, "marshal event", "event", e.Name(), "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(e.Name()),
		Value: payload,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(e.Name())},
		},
	}

	// Async writer: WriteMessages only enqueues; errors surface in the
	// Completion callback.
	if err := s.writer.WriteMessages(context.WithoutCancel(ctx), msg); err != nil {
		slog.ErrorContext(ctx, "enqueue event to kafka", "event", e.Name(), "error", err)
	}
}

// Close flushes pending messages and releases the writer.
func (s *KafkaSink) Close() error {
	return s.writer.Close()
}

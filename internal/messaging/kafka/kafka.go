package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ikkim/winecraft-backend/internal/messaging"
	"github.com/ikkim/winecraft-backend/pkg/logger"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	writerMaxAttempts = 3
	writerTimeout     = 5 * time.Second
)

type kafkaPublisher struct {
	writer *kafkaGo.Writer
}

// NewKafkaPublisher returns a publisher backed by one long-lived writer.
// The topic is chosen per message.
func NewKafkaPublisher(brokers []string) messaging.Publisher {
	return &kafkaPublisher{
		writer: &kafkaGo.Writer{
			Addr:         kafkaGo.TCP(brokers...),
			Balancer:     &kafkaGo.LeastBytes{},
			RequiredAcks: kafkaGo.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
			MaxAttempts:  writerMaxAttempts,
			WriteTimeout: writerTimeout,
		},
	}
}

func (k *kafkaPublisher) PublishEvent(ctx context.Context, topic string, key string, event any) error {
	msg, err := encodeMessage(topic, key, event)
	if err != nil {
		return err
	}

	if err := k.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error("Failed to publish event", err, map[string]interface{}{
			"topic": topic,
			"key":   key,
		})
		return fmt.Errorf("failed to publish event: %w", err)
	}

	logger.Debug("Event published", map[string]interface{}{
		"topic": topic,
		"key":   key,
	})
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.writer.Close()
}

func encodeMessage(topic, key string, event any) (kafkaGo.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafkaGo.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: payload,
	}, nil
}

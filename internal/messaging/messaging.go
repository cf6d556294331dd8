package messaging

import (
	"context"

	"github.com/ikkim/winecraft-backend/pkg/logger"
)

// Publisher defines an interface for publishing events to a message broker.
type Publisher interface {
	PublishEvent(ctx context.Context, topic string, key string, event any) error
	Close() error
}

type nopPublisher struct{}

// NewNopPublisher drops every event. Used when no broker is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishEvent(_ context.Context, topic string, key string, _ any) error {
	logger.Debug("Event publishing disabled, dropping event", map[string]interface{}{
		"topic": topic,
		"key":   key,
	})
	return nil
}

func (nopPublisher) Close() error { return nil }

// Package event delivers domain events to Redis pub/sub.
package event

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Luuchoh/Propiedades-premium/internal/domain/event"
	"github.com/Luuchoh/Propiedades-premium/pkg/messaging"
)

// DefaultChannel is used when no channel is configured.
const DefaultChannel = "propiedades:events"

type redisPublisher struct {
	client  messaging.RedisClient
	channel string
	logger  *zap.Logger
}

// NewRedisPublisher publishes events as JSON on channel.
func NewRedisPublisher(client messaging.RedisClient, channel string, logger *zap.Logger) event.Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &redisPublisher{client: client, channel: channel, logger: logger}
}

func (p *redisPublisher) Publish(ctx context.Context, e event.Event) error {
	if err := p.client.Publish(ctx, p.channel, e); err != nil {
		return fmt.Errorf("failed to publish %s on %s: %w", e.Type, p.channel, err)
	}

	p.logger.Debug("Event published",
		zap.String("channel", p.channel),
		zap.String("event_id", e.ID),
		zap.String("event_type", string(e.Type)),
		zap.String("aggregate_id", e.AggregateID))
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when messaging is disabled.
func NewNoopPublisher() event.Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, event.Event) error {
	return nil
}

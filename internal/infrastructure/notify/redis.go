// Package notify implements the realtime notification transport on Redis
// pub/sub. Each publish is a single PUBLISH of a JSON envelope to one
// channel: delivery is at-most-once, subscribers connecting later never
// see the event, and no ordering is guaranteed across channels.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pllumaj/results/internal/api/metrics"
)

// envelope is the wire format broadcast on every channel.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// RedisNotifier publishes events over Redis pub/sub.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Publish broadcasts one event to one channel.
func (n *RedisNotifier) Publish(ctx context.Context, channel, event string, payload any) error {
	body, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		metrics.NotificationErrorsTotal.WithLabelValues(event).Inc()
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := n.client.Publish(ctx, channel, body).Err(); err != nil {
		metrics.NotificationErrorsTotal.WithLabelValues(event).Inc()
		return fmt.Errorf("publish %s to %s: %w", event, channel, err)
	}

	metrics.NotificationsPublishedTotal.WithLabelValues(event).Inc()
	return nil
}

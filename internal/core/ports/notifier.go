package ports

import "context"

// Notifier publishes realtime events to named channels. Delivery is
// best-effort and at-most-once: callers decide whether a failed publish
// matters. Channel names form a flat string namespace (need-{id},
// client-{id}, expert-{id}, offer-{id}).
type Notifier interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

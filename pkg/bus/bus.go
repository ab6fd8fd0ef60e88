// Package bus provides the topic-addressed pub/sub fabric connecting log
// collectors, the event listener, and the SSE streamers. Delivery is
// at-most-once, best-effort fanout with no retention.
package bus

import "context"

// Message is one delivered payload.
type Message struct {
	Topic   string
	Payload []byte
}

// Subscription is a live set of topic subscriptions. Messages() yields
// deliveries until Close is called or the subscribe context ends.
type Subscription interface {
	Messages() <-chan Message
	Close() error
}

// Bus is the pub/sub contract. Publish returns the number of subscribers
// the payload was delivered to at that instant.
type Bus interface {
	Publish(ctx context.Context, topic string, payload []byte) (int64, error)
	Subscribe(ctx context.Context, topics ...string) (Subscription, error)
	Ping(ctx context.Context) error
	Close() error
}

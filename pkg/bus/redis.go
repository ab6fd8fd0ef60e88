package bus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// subscriptionBuffer bounds the per-subscription delivery channel. Slow
// consumers drop messages rather than block the receive loop.
const subscriptionBuffer = 256

// RedisBus implements Bus over Redis pub/sub. PUBLISH returns the receiver
// count, which matches the delivered-count contract directly.
type RedisBus struct {
	client *redis.Client
}

// NewRedisBus connects to the Redis instance at url (redis:// form).
func NewRedisBus(url string) (*RedisBus, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return &RedisBus{client: redis.NewClient(opts)}, nil
}

// NewRedisBusFromClient wraps an existing client (useful for testing).
func NewRedisBusFromClient(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

// Publish sends payload on topic and returns the subscriber count at that
// instant. Failures are returned to the caller, never fatal.
func (b *RedisBus) Publish(ctx context.Context, topic string, payload []byte) (int64, error) {
	n, err := b.client.Publish(ctx, topic, payload).Result()
	if err != nil {
		return 0, fmt.Errorf("publish to %s failed: %w", topic, err)
	}
	return n, nil
}

// Subscribe opens a subscription on the given topics. The receive goroutine
// runs until Close or context cancellation; go-redis handles reconnection
// and resubscription underneath.
func (b *RedisBus) Subscribe(ctx context.Context, topics ...string) (Subscription, error) {
	if len(topics) == 0 {
		return nil, fmt.Errorf("subscribe requires at least one topic")
	}

	ps := b.client.Subscribe(ctx, topics...)

	// Confirm the subscription before handing it out, so that a publish
	// issued after Subscribe returns is actually deliverable.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe to %v failed: %w", topics, err)
	}

	sub := &redisSubscription{
		ps:  ps,
		out: make(chan Message, subscriptionBuffer),
	}
	go sub.receiveLoop(ctx)
	return sub, nil
}

// Ping checks bus connectivity.
func (b *RedisBus) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (b *RedisBus) Close() error {
	return b.client.Close()
}

type redisSubscription struct {
	ps  *redis.PubSub
	out chan Message
}

func (s *redisSubscription) Messages() <-chan Message {
	return s.out
}

func (s *redisSubscription) Close() error {
	return s.ps.Close()
}

// receiveLoop drains the pubsub channel into the bounded delivery channel.
// When the consumer is not keeping up the message is dropped; producers are
// never blocked.
func (s *redisSubscription) receiveLoop(ctx context.Context) {
	defer close(s.out)

	ch := s.ps.Channel()
	for {
		select {
		case <-ctx.Done():
			_ = s.ps.Close()
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			m := Message{Topic: msg.Channel, Payload: []byte(msg.Payload)}
			select {
			case s.out <- m:
			default:
				slog.Warn("Dropping bus message for slow consumer", "topic", msg.Channel)
			}
		}
	}
}

// Package listener consumes task and session events from the bus and feeds
// them through the whiteboard reducer.
package listener

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sergeville/Archon/pkg/bus"
	"github.com/sergeville/Archon/pkg/models"
	"github.com/sergeville/Archon/pkg/whiteboard"
)

// Listener is the single consumer that mutates the whiteboard. Running it
// once serializes all reductions.
type Listener struct {
	bus        bus.Bus
	whiteboard *whiteboard.Service

	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a listener over the given bus and whiteboard.
func New(b bus.Bus, wb *whiteboard.Service) *Listener {
	return &Listener{bus: b, whiteboard: wb}
}

// Start subscribes to the task and session topics and launches the consume
// loop.
func (l *Listener) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	sub, err := l.bus.Subscribe(ctx, models.TopicTaskEvents, models.TopicSessionEvents)
	if err != nil {
		cancel()
		return err
	}

	l.cancel = cancel
	l.done = make(chan struct{})

	go func() {
		defer close(l.done)
		defer func() { _ = sub.Close() }()
		l.consume(ctx, sub)
	}()

	slog.Info("Event listener started",
		"topics", []string{models.TopicTaskEvents, models.TopicSessionEvents})
	return nil
}

// Stop cancels the consume loop and waits for it to drain.
func (l *Listener) Stop() {
	if l.cancel != nil {
		l.cancel()
	}
	if l.done != nil {
		<-l.done
	}
}

// consume applies each event to the whiteboard. A failure on one event is
// logged and the loop continues; the listener must stay alive.
func (l *Listener) consume(ctx context.Context, sub bus.Subscription) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Messages():
			if !ok {
				return
			}

			var event models.Event
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				slog.Error("Discarding malformed event", "topic", msg.Topic, "error", err)
				continue
			}

			if err := l.whiteboard.Apply(ctx, event); err != nil {
				slog.Error("Failed to apply event to whiteboard",
					"event_type", event.EventType,
					"entity_id", event.EntityID,
					"error", err)
			}
		}
	}
}

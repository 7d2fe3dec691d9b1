package workers

import (
	"context"
	"log/slog"
	"time"

	"dm-relay/contract"
	"dm-relay/domain/event"
)

var _ contract.Worker = (*EventFanout)(nil)

// EventFanout delivers outbound events to connection sinks.
//
// It provides best-effort delivery with no guarantees regarding ordering
// across sinks, durability, or retries. EventFanout is not a message
// broker: a sink that cannot take an event within the timeout loses it.
//
// Broadcast events go to every live connection; addressed events are
// resolved against the registry at delivery time, so a recipient that
// went offline after routing simply stops receiving.
type EventFanout struct {
	log         *slog.Logger
	registry    contract.IRegistry
	events      chan event.DomainEvent
	sinkTimeout time.Duration
}

func NewEventFanout(
	log *slog.Logger,
	registry contract.IRegistry,
	events chan event.DomainEvent,
	sinkTimeout time.Duration) *EventFanout {
	return &EventFanout{
		log:         log,
		registry:    registry,
		events:      events,
		sinkTimeout: sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return ctx.Err()
		case evt, ok := <-w.events:
			if !ok {
				w.log.Debug("Event channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout resolves the target sinks for one event and pushes it to each
// of them under the sink timeout.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	var sinks []contract.EventSink
	if recipient := evt.Recipient(); recipient == "" {
		sinks = w.registry.ConnectedSinks()
	} else {
		sink, ok := w.registry.SinkFor(recipient)
		if !ok {
			w.log.Debug("Recipient no longer connected, dropping event",
				"session_id", recipient)
			return
		}
		sinks = append(sinks, sink)
	}

	for _, sink := range sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
		if err := sink.Consume(sinkCtx, evt); err != nil {
			w.log.Warn("Sink rejected event", "error", err)
		}
		cancel()
	}
}

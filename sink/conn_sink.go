package sink

import (
	"context"
	"log/slog"

	"dm-relay/domain/event"
)

// ConnSink buffers outbound events for one transport connection.
// The websocket writer drains Events; the fanout worker fills it.
type ConnSink struct {
	Events chan event.DomainEvent
	log    *slog.Logger
}

func NewConnSink(log *slog.Logger, bufferSize int) *ConnSink {
	return &ConnSink{
		Events: make(chan event.DomainEvent, bufferSize),
		log:    log,
	}
}

// Consume is called by the fanout worker.
// Redirects the event through the channel owned by this connection;
// the websocket writer takes it from there. A full buffer means the
// client is too slow: the fanout's per-sink timeout bounds how long the
// send may wait before the event is lost.
func (s *ConnSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.Events <- e:
		return nil
	case <-ctx.Done():
		s.log.Debug("Connection sink full, dropping event")
		return ctx.Err()
	}
}

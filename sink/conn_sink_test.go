package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dm-relay/domain/event"
)

func TestConnSink_Buffers_Events(t *testing.T) {
	req := require.New(t)
	connSink := NewConnSink(slog.Default(), 2)

	evt := event.TypingDisplayed{Username: "alice", Typing: true}
	req.NoError(connSink.Consume(context.Background(), evt))

	req.Equal(evt, <-connSink.Events)
}

func TestConnSink_Full_Buffer_Honours_Timeout(t *testing.T) {
	req := require.New(t)
	connSink := NewConnSink(slog.Default(), 1)

	first := event.TypingDisplayed{Username: "alice", Typing: true}
	second := event.TypingDisplayed{Username: "alice", Typing: false}

	// Given the buffer is full because the client stopped draining
	req.NoError(connSink.Consume(context.Background(), first))

	// When another event arrives under the fanout's per-sink timeout
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := connSink.Consume(ctx, second)

	// Then the send gives up at the deadline and the event is lost
	req.ErrorIs(err, context.DeadlineExceeded)
	req.Equal(first, <-connSink.Events)
	req.Empty(connSink.Events)
}

func TestConnSink_Full_Buffer_Waits_For_Reader(t *testing.T) {
	req := require.New(t)
	connSink := NewConnSink(slog.Default(), 1)

	first := event.TypingDisplayed{Username: "alice", Typing: true}
	second := event.TypingDisplayed{Username: "alice", Typing: false}

	req.NoError(connSink.Consume(context.Background(), first))

	// Given the writer drains the buffer shortly after
	go func() {
		time.Sleep(20 * time.Millisecond)
		<-connSink.Events
	}()

	// When another event arrives with time left on the clock
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	// Then the send waits for the reader instead of dropping
	req.NoError(connSink.Consume(ctx, second))
	req.Equal(second, <-connSink.Events)
}

package runtime_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dm-relay/domain"
	"dm-relay/domain/event"
	"dm-relay/observability"
	"dm-relay/runtime"
	"dm-relay/runtime/workers"
)

// chanSink exposes everything a connection would receive as a channel.
type chanSink struct {
	events chan event.DomainEvent
}

func newChanSink() chanSink {
	return chanSink{events: make(chan event.DomainEvent, 32)}
}

func (s chanSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.events <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func receive(req *require.Assertions, sink chanSink) event.DomainEvent {
	select {
	case e := <-sink.events:
		return e
	case <-time.After(1 * time.Second):
		req.FailNow("No event received in time")
		return nil
	}
}

func startRelay(t *testing.T) (*runtime.Relay, context.CancelFunc) {
	log := slog.Default()
	sup := workers.NewSupervisor(log, 100*time.Millisecond)
	registry := runtime.NewRegistry("default.png")
	monitor := observability.NewRelayMonitor()
	relay := runtime.NewRelay(log, sup, registry, monitor, 32, 1*time.Second, 0)

	ctx, cancel := context.WithCancel(context.Background())
	err := relay.Start(ctx)
	require.NoError(t, err)
	t.Cleanup(relay.Stop)
	return relay, cancel
}

func Test_Relay_Login_Broadcasts_Presence(t *testing.T) {
	req := require.New(t)
	relay, cancel := startRelay(t)
	defer cancel()

	aliceSink := newChanSink()
	anonymousSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	relay.Attach("conn-anon", anonymousSink)

	// When alice logs in
	session, err := relay.Login(context.Background(), "conn-alice", "alice")
	req.NoError(err)
	req.True(session.Online)
	req.Equal("default.png", session.Picture)

	// Then even the connection that never logged in sees the roster
	for _, sink := range []chanSink{aliceSink, anonymousSink} {
		evt := receive(req, sink)
		roster, ok := evt.(event.RosterUpdated)
		req.True(ok)
		req.Len(roster.Roster, 1)
		req.Equal("alice", roster.Roster[0].Username)
		req.True(roster.Roster[0].Online)
	}
}

func Test_Relay_Routes_Message_To_Online_Recipient(t *testing.T) {
	req := require.New(t)
	relay, cancel := startRelay(t)
	defer cancel()

	aliceSink := newChanSink()
	bobSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	relay.Attach("conn-bob", bobSink)

	alice, err := relay.Login(context.Background(), "conn-alice", "alice")
	req.NoError(err)
	bob, err := relay.Login(context.Background(), "conn-bob", "bob")
	req.NoError(err)

	// Drain the two roster broadcasts caused by the logins
	receive(req, bobSink)
	receive(req, bobSink)
	receive(req, aliceSink)
	receive(req, aliceSink)

	// Given a message addressed to a sessionId nobody owns
	relay.SendMessage(domain.PrivateMessageCommand{
		From: alice.ID, To: "nobody", Message: "lost",
	})
	// When alice then messages bob
	relay.SendMessage(domain.PrivateMessageCommand{
		From: alice.ID, To: bob.ID, Message: "hello bob",
	})

	// Then bob receives only the second message: the first was dropped
	// silently, with no error back to alice either
	evt := receive(req, bobSink)
	msg, ok := evt.(event.MessageReceived)
	req.True(ok)
	req.Equal(alice.ID, msg.From)
	req.Equal("hello bob", msg.Message)
	req.Empty(aliceSink.events)
}

func Test_Relay_Typing_Round_Trip(t *testing.T) {
	req := require.New(t)
	relay, cancel := startRelay(t)
	defer cancel()

	aliceSink := newChanSink()
	bobSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	relay.Attach("conn-bob", bobSink)

	alice, err := relay.Login(context.Background(), "conn-alice", "alice")
	req.NoError(err)
	bob, err := relay.Login(context.Background(), "conn-bob", "bob")
	req.NoError(err)

	receive(req, bobSink)
	receive(req, bobSink)

	// When alice starts then stops composing
	relay.SetTyping(domain.TypingCommand{From: alice.ID, To: bob.ID, Typing: true})
	relay.SetTyping(domain.TypingCommand{From: alice.ID, To: bob.ID, Typing: false})

	// Then bob sees both transitions, in order, under alice's username
	evt := receive(req, bobSink)
	typing, ok := evt.(event.TypingDisplayed)
	req.True(ok)
	req.Equal("alice", typing.Username)
	req.True(typing.Typing)

	evt = receive(req, bobSink)
	typing, ok = evt.(event.TypingDisplayed)
	req.True(ok)
	req.False(typing.Typing)
}

func Test_Relay_Reconnect_Preserves_Identity(t *testing.T) {
	req := require.New(t)
	relay, cancel := startRelay(t)
	defer cancel()

	aliceSink := newChanSink()
	bobSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	relay.Attach("conn-bob", bobSink)

	alice, err := relay.Login(context.Background(), "conn-alice", "alice")
	req.NoError(err)
	_, err = relay.Login(context.Background(), "conn-bob", "bob")
	req.NoError(err)

	receive(req, bobSink)
	receive(req, bobSink)

	// When alice's connection drops
	relay.Disconnect("conn-alice")

	// Then bob sees her offline, still on the roster
	evt := receive(req, bobSink)
	roster, ok := evt.(event.RosterUpdated)
	req.True(ok)
	req.Len(roster.Roster, 2)
	req.Equal("alice", roster.Roster[0].Username)
	req.False(roster.Roster[0].Online)

	// When alice reconnects from a fresh connection with her sessionId
	freshSink := newChanSink()
	relay.Attach("conn-alice-2", freshSink)
	resumed, err := relay.Reconnect(context.Background(), "conn-alice-2", alice.ID)

	// Then the same identity comes back online, no duplicate entry
	req.NoError(err)
	req.Equal(alice.ID, resumed.ID)
	req.Equal("alice", resumed.Username)

	evt = receive(req, bobSink)
	roster, ok = evt.(event.RosterUpdated)
	req.True(ok)
	req.Len(roster.Roster, 2)
	req.True(roster.Roster[0].Online)
}

func Test_Relay_Disconnect_Survives_Full_Command_Channel(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	sup := workers.NewSupervisor(log, 100*time.Millisecond)
	registry := runtime.NewRegistry("")
	monitor := observability.NewRelayMonitor()
	// One command slot, worker not started yet: the channel saturates
	relay := runtime.NewRelay(log, sup, registry, monitor, 1, 1*time.Second, 0)

	aliceSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	session, _, err := registry.Register("alice", "conn-alice")
	req.NoError(err)

	// Given the command channel is already full
	relay.SendMessage(domain.PrivateMessageCommand{From: "nobody", To: "nobody"})

	// When the transport reports the disconnect
	done := make(chan struct{})
	go func() {
		relay.Disconnect("conn-alice")
		close(done)
	}()

	// Then the disconnect waits for the worker instead of vanishing
	select {
	case <-done:
		req.Fail("Disconnect should wait for the worker, not complete while the channel is full")
	case <-time.After(100 * time.Millisecond):
	}

	// And once the worker drains the backlog the session goes offline
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(relay.Start(ctx))
	t.Cleanup(relay.Stop)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.FailNow("Disconnect was never taken by the worker")
	}
	req.Eventually(func() bool {
		current, ok := registry.Session(session.ID)
		return ok && !current.Online
	}, 2*time.Second, 10*time.Millisecond)
}

func Test_Relay_Disconnect_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	relay, cancel := startRelay(t)
	defer cancel()

	aliceSink := newChanSink()
	bobSink := newChanSink()
	relay.Attach("conn-alice", aliceSink)
	relay.Attach("conn-bob", bobSink)

	_, err := relay.Login(context.Background(), "conn-alice", "alice")
	req.NoError(err)
	_, err = relay.Login(context.Background(), "conn-bob", "bob")
	req.NoError(err)

	receive(req, bobSink)
	receive(req, bobSink)

	// When the same connection disconnects twice
	relay.Disconnect("conn-alice")
	relay.Disconnect("conn-alice")

	// Then only one roster broadcast follows
	receive(req, bobSink)
	// Force another observable command through to prove the duplicate
	// disconnect produced nothing in between
	relay.Logout("unknown-session")
	time.Sleep(100 * time.Millisecond)
	req.Empty(bobSink.events)

	roster := relay.Roster()
	req.Len(roster, 2)
	req.False(roster[0].Online)
}

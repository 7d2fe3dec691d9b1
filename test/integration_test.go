package test

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"dm-relay/auth"
	"dm-relay/domain"
	"dm-relay/domain/event"
	"dm-relay/observability"
	"dm-relay/repositories"
	"dm-relay/runtime"
	"dm-relay/runtime/workers"
	"dm-relay/services"
	"dm-relay/sink"
)

func nextEvent(req *require.Assertions, connSink *sink.ConnSink) event.DomainEvent {
	select {
	case e := <-connSink.Events:
		return e
	case <-time.After(2 * time.Second):
		req.FailNow("No event received in time")
		return nil
	}
}

func nextRoster(req *require.Assertions, connSink *sink.ConnSink) event.RosterUpdated {
	evt := nextEvent(req, connSink)
	roster, ok := evt.(event.RosterUpdated)
	req.True(ok, "expected a roster broadcast, got %T", evt)
	return roster
}

func Test_Scenario(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	defer db.Close()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	registry := runtime.NewRegistry("default.png")
	monitor := observability.NewRelayMonitor()
	sessionTTL := 300 * time.Millisecond
	relay := runtime.NewRelay(log, supervisor, registry, monitor, 32, 1*time.Second, sessionTTL)

	tokens := auth.NewTokenIssuer([]byte("test-secret"), 1*time.Hour)
	relayService := services.NewRelayService(relay, tokens, log)
	mediaRepository := repositories.NewMediaRepository(db, log)
	mediaService := services.NewMediaService(
		mediaRepository, relay, monitor, log, t.TempDir(), "http://localhost:8000")

	req.NoError(relay.Start(ctx))
	defer relay.Stop()

	// 1. Two users connect and log in
	aliceSink := sink.NewConnSink(log, 32)
	bobSink := sink.NewConnSink(log, 32)
	relayService.Attach("conn-alice", aliceSink)
	relayService.Attach("conn-bob", bobSink)

	aliceAck, err := relayService.Login(ctx, "conn-alice", "alice")
	req.NoError(err)
	req.NotEmpty(aliceAck.MediaToken)
	bobAck, err := relayService.Login(ctx, "conn-bob", "bob")
	req.NoError(err)

	roster := nextRoster(req, bobSink) // alice's login
	req.Len(roster.Roster, 1)
	roster = nextRoster(req, bobSink) // bob's login
	req.Len(roster.Roster, 2)

	// 2. The media token authorizes an upload tied to alice's session
	sessionID, err := tokens.ValidateMediaToken(aliceAck.MediaToken)
	req.NoError(err)
	req.Equal(aliceAck.Session.ID, sessionID)

	result, err := mediaService.Upload(services.UploadCommand{
		SessionID: aliceAck.Session.ID,
		MediaType: "image",
		Filename:  "cat.png",
		Content:   strings.NewReader("png bytes"),
	})
	req.NoError(err)

	// The upload is parked asynchronously; wait for it to land
	req.Eventually(func() bool {
		session, ok := registry.Session(aliceAck.Session.ID)
		return ok && session.PendingMedia != nil
	}, 2*time.Second, 10*time.Millisecond)

	// 3. Alice's next message to bob carries the parked upload
	relayService.SendMessage(domain.PrivateMessageCommand{
		From:    aliceAck.Session.ID,
		To:      bobAck.Session.ID,
		Message: "look at this",
	})

	evt := nextEvent(req, bobSink)
	msg, ok := evt.(event.MessageReceived)
	req.True(ok, "expected a message, got %T", evt)
	req.Equal("look at this", msg.Message)
	req.Equal("image", msg.MediaType)
	req.Equal(result.FileURL, msg.MediaURL)

	// 4. The upload was indexed for the viewer
	records, err := mediaRepository.ListUploads(10)
	req.NoError(err)
	req.Len(records, 1)
	req.Equal("cat.png", records[0].Filename)
	req.Equal(result.FileURL, records[0].URL)

	// 5. Alice disconnects and stays on the roster, offline
	relayService.Disconnect("conn-alice")
	roster = nextRoster(req, bobSink)
	req.Len(roster.Roster, 2)
	req.False(roster.Roster[0].Online)

	// 6. After the session TTL her session expires for good
	roster = nextRoster(req, bobSink)
	req.Len(roster.Roster, 1)
	req.Equal("bob", roster.Roster[0].Username)

	// 7. The expired sessionId is no longer resumable
	freshSink := sink.NewConnSink(log, 32)
	relayService.Attach("conn-alice-2", freshSink)
	_, err = relayService.Reconnect(ctx, "conn-alice-2", aliceAck.Session.ID)
	req.Error(err)

	stats := monitor.Snapshot()
	req.EqualValues(2, stats.Logins)
	req.EqualValues(1, stats.MessagesRelayed)
	req.EqualValues(1, stats.Uploads)
	req.EqualValues(1, stats.SessionsExpired)
}

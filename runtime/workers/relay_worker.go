package workers

import (
	"context"
	"log/slog"

	"dm-relay/contract"
	"dm-relay/domain"
	"dm-relay/domain/event"
	"dm-relay/observability"
)

// Ensure *RelayWorker implements the contract.Worker interface at compile time.
// This prevents "type mismatch" errors from appearing late in other packages
// and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*RelayWorker)(nil)

// RelayWorker drains the command channel and applies each command to the
// registry to completion before taking the next one. Every mutation of
// session state in the process goes through this single goroutine, so a
// half-registered session can never be observed: the command that creates
// it also emits the roster snapshot that announces it.
type RelayWorker struct {
	registry contract.IRegistry
	expiry   contract.ExpiryPolicy
	commands chan domain.Command
	events   chan event.DomainEvent
	monitor  *observability.RelayMonitor
	log      *slog.Logger
}

func NewRelayWorker(
	registry contract.IRegistry,
	expiry contract.ExpiryPolicy,
	commands chan domain.Command,
	events chan event.DomainEvent,
	monitor *observability.RelayMonitor,
	log *slog.Logger) *RelayWorker {
	return &RelayWorker{
		registry: registry,
		expiry:   expiry,
		commands: commands,
		events:   events,
		monitor:  monitor,
		log:      log,
	}
}

func (w *RelayWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping relay worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Command channel is closed")
				return nil
			}
			w.apply(ctx, cmd)
		}
	}
}

func (w *RelayWorker) apply(ctx context.Context, cmd domain.Command) {
	switch c := cmd.(type) {
	case domain.LoginCommand:
		w.applyLogin(ctx, c)
	case domain.ReconnectCommand:
		w.applyReconnect(ctx, c)
	case domain.PrivateMessageCommand:
		w.applyPrivateMessage(ctx, c)
	case domain.TypingCommand:
		w.applyTyping(ctx, c)
	case domain.DisconnectCommand:
		w.applyDisconnect(ctx, c)
	case domain.LogoutCommand:
		w.applyDestroy(ctx, c.SessionID, false)
	case domain.ExpireSessionCommand:
		w.applyExpiry(ctx, c.SessionID)
	case domain.AttachMediaCommand:
		if !w.registry.AttachPendingMedia(c.SessionID, c.Media) {
			w.log.Debug("Upload for a session that no longer exists",
				"session_id", c.SessionID)
		}
	default:
		w.log.Warn("Unhandled command", "command", cmd.CommandName())
	}
}

func (w *RelayWorker) applyLogin(ctx context.Context, c domain.LoginCommand) {
	session, replaced, err := w.registry.Register(c.Username, c.ConnID)
	if err != nil {
		w.monitor.IncrLoginsRejected()
		w.log.Info("Login rejected", "username", c.Username, "error", err)
		reply(c.Reply, domain.LoginResult{Err: err})
		return
	}
	if replaced != "" {
		w.expiry.Cancel(replaced)
	}
	w.monitor.IncrLogins()
	w.log.Info("User logged in", "username", c.Username, "session_id", session.ID)
	reply(c.Reply, domain.LoginResult{Session: session})
	w.announce(ctx)
}

func (w *RelayWorker) applyReconnect(ctx context.Context, c domain.ReconnectCommand) {
	session, err := w.registry.Resume(c.SessionID, c.ConnID)
	if err != nil {
		w.monitor.IncrReconnectsUnknown()
		w.log.Info("Reconnect rejected", "session_id", c.SessionID, "error", err)
		reply(c.Reply, domain.ReconnectResult{Err: err})
		return
	}
	w.expiry.Cancel(c.SessionID)
	w.monitor.IncrReconnects()
	w.log.Info("User reconnected", "username", session.Username, "session_id", session.ID)
	reply(c.Reply, domain.ReconnectResult{Session: session})
	w.announce(ctx)
}

// applyPrivateMessage routes a message from one session to another. The
// recipient does not need to be online, in which case the message is
// dropped silently: no store-and-forward, no delivery feedback to the
// sender.
func (w *RelayWorker) applyPrivateMessage(ctx context.Context, c domain.PrivateMessageCommand) {
	sender, ok := w.registry.Session(c.From)
	if !ok || !sender.Online {
		w.monitor.IncrMessagesDropped()
		w.log.Debug("Dropping message from unbound sender", "from", c.From)
		return
	}

	msg := event.MessageReceived{
		From:      c.From,
		To:        c.To,
		Message:   c.Message,
		MediaType: c.MediaType,
		MediaURL:  c.MediaURL,
	}
	if msg.MediaType == "" && msg.MediaURL == "" {
		if media, ok := w.registry.TakePendingMedia(c.From); ok {
			msg.MediaType = media.MediaType
			msg.MediaURL = media.MediaURL
		}
	}
	if msg.Message == "" && msg.MediaType == "" && msg.MediaURL == "" {
		// Permissive by design of the relayed protocol: still forwarded,
		// but counted so an abusive client is visible in the stats.
		w.monitor.IncrEmptyRelays()
		w.log.Info("Relaying empty private message", "from", c.From, "to", c.To)
	}

	// Sending ends the composing state.
	w.registry.SetTyping(c.From, false)

	if recipient, ok := w.registry.Session(c.To); !ok || !recipient.Online {
		w.monitor.IncrMessagesDropped()
		w.log.Debug("Recipient unreachable, dropping message", "from", c.From, "to", c.To)
		return
	}
	w.monitor.IncrMessagesRelayed()
	w.emit(ctx, msg)
}

// applyTyping updates the sender's composing flag and relays the signal
// to the addressed peer when online. There is no server-side timeout: the
// sender is responsible for turning the signal off.
func (w *RelayWorker) applyTyping(ctx context.Context, c domain.TypingCommand) {
	sender, ok := w.registry.Session(c.From)
	if !ok {
		return
	}
	w.registry.SetTyping(c.From, c.Typing)

	if recipient, ok := w.registry.Session(c.To); !ok || !recipient.Online {
		return
	}
	w.monitor.IncrTypingRelayed()
	w.emit(ctx, event.TypingDisplayed{
		To:       c.To,
		Username: sender.Username,
		Typing:   c.Typing,
	})
}

// applyDisconnect handles the transport's disconnect signal. The session
// record is retained offline for a future reconnect; only its binding and
// typing flag are cleared. A connection that never authenticated, or a
// repeated disconnect for the same connection, mutates nothing.
func (w *RelayWorker) applyDisconnect(ctx context.Context, c domain.DisconnectCommand) {
	session, wasBound := w.registry.ReleaseConn(c.ConnID)
	if !wasBound {
		return
	}
	w.monitor.IncrDisconnects()
	w.log.Info("User disconnected", "username", session.Username, "session_id", session.ID)
	w.expiry.Schedule(session.ID)
	// The roster broadcast below carries typing=false for this user, so
	// peers never keep a stuck composing indicator.
	w.announce(ctx)
}

func (w *RelayWorker) applyDestroy(ctx context.Context, sessionID domain.SessionID, expired bool) {
	session, ok := w.registry.Destroy(sessionID)
	if !ok {
		return
	}
	if expired {
		w.monitor.IncrSessionsExpired()
	} else {
		w.expiry.Cancel(sessionID)
	}
	w.log.Info("Session destroyed", "username", session.Username,
		"session_id", session.ID, "expired", expired)
	w.announce(ctx)
}

func (w *RelayWorker) applyExpiry(ctx context.Context, sessionID domain.SessionID) {
	session, ok := w.registry.Session(sessionID)
	if !ok || session.Online {
		// Reconnected between eviction and processing. Keep it.
		return
	}
	w.applyDestroy(ctx, sessionID, true)
}

// announce emits a full roster snapshot to every connected transport.
// It runs synchronously inside the command that mutated the state, so
// consecutive snapshots can never be reordered.
func (w *RelayWorker) announce(ctx context.Context) {
	w.monitor.IncrRosterBroadcasts()
	w.emit(ctx, event.RosterUpdated{Roster: w.registry.Roster()})
}

func (w *RelayWorker) emit(ctx context.Context, evt event.DomainEvent) {
	select {
	case <-ctx.Done():
	case w.events <- evt:
	}
}

// reply never blocks: result channels are buffered and read exactly once.
func reply[T any](ch chan T, res T) {
	if ch == nil {
		return
	}
	select {
	case ch <- res:
	default:
	}
}

package runtime

import (
	"context"
	"log/slog"
	"time"

	"dm-relay/contract"
	"dm-relay/domain"
	"dm-relay/domain/event"
	"dm-relay/observability"
	"dm-relay/runtime/workers"
)

var _ contract.IRelay = (*Relay)(nil)

// Relay is the engine behind the connection layer: it feeds every state
// mutation through one command channel drained by a single relay worker,
// and every outbound event through one fanout worker. Both run under the
// supervisor.
type Relay struct {
	log         *slog.Logger
	supervisor  contract.ISupervisor
	registry    *Registry
	monitor     *observability.RelayMonitor
	commands    chan domain.Command
	events      chan event.DomainEvent
	expiry      contract.ExpiryPolicy
	reaper      *SessionReaper
	sinkTimeout time.Duration
}

func NewRelay(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry *Registry,
	monitor *observability.RelayMonitor,
	bufferSize int,
	sinkTimeout, sessionTTL time.Duration) *Relay {
	r := &Relay{
		log:         log,
		supervisor:  supervisor,
		registry:    registry,
		monitor:     monitor,
		commands:    make(chan domain.Command, bufferSize),
		events:      make(chan event.DomainEvent, bufferSize),
		sinkTimeout: sinkTimeout,
	}
	if sessionTTL > 0 {
		r.reaper = NewSessionReaper(sessionTTL, func(id domain.SessionID) {
			r.Dispatch(domain.ExpireSessionCommand{SessionID: id})
		})
		r.expiry = r.reaper
	} else {
		r.expiry = NoExpiry{}
	}
	return r
}

// Start registers the relay and fanout workers and launches supervision.
// It returns once the workers are running; Stop drains them.
func (r *Relay) Start(ctx context.Context) error {
	relayWorker := workers.NewRelayWorker(
		r.registry, r.expiry, r.commands, r.events, r.monitor, r.log)
	fanout := workers.NewEventFanout(r.log, r.registry, r.events, r.sinkTimeout)

	r.supervisor.Add(relayWorker, fanout)

	r.log.Info("Starting relay and all supervised workers")
	go r.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown: workers are cancelled and the
// session reaper's cleanup goroutine is halted.
func (r *Relay) Stop() {
	r.log.Info("Requesting relay shutdown")
	r.supervisor.Stop()
	if r.reaper != nil {
		r.reaper.Stop()
	}
}

// Attach records a freshly opened, not yet authenticated connection so
// that roster broadcasts already reach it.
func (r *Relay) Attach(connID domain.ConnID, sink contract.EventSink) {
	r.registry.AttachConn(connID, sink)
}

// Dispatch queues a fire-and-forget command. A full channel drops the
// command rather than blocking the transport reader.
func (r *Relay) Dispatch(cmd domain.Command) {
	select {
	case r.commands <- cmd:
	default:
		r.log.Warn("Command channel full, dropping command", "command", cmd.CommandName())
	}
}

// Login performs a first login and waits for the outcome.
func (r *Relay) Login(ctx context.Context, connID domain.ConnID, username string) (domain.Session, error) {
	reply := make(chan domain.LoginResult, 1)
	cmd := domain.LoginCommand{ConnID: connID, Username: username, Reply: reply}
	select {
	case r.commands <- cmd:
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.Session, res.Err
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	}
}

// Reconnect rebinds an existing session to this connection and waits for
// the outcome.
func (r *Relay) Reconnect(ctx context.Context, connID domain.ConnID, sessionID domain.SessionID) (domain.Session, error) {
	reply := make(chan domain.ReconnectResult, 1)
	cmd := domain.ReconnectCommand{ConnID: connID, SessionID: sessionID, Reply: reply}
	select {
	case r.commands <- cmd:
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.Session, res.Err
	case <-ctx.Done():
		return domain.Session{}, ctx.Err()
	}
}

func (r *Relay) SendMessage(cmd domain.PrivateMessageCommand) {
	r.Dispatch(cmd)
}

func (r *Relay) SetTyping(cmd domain.TypingCommand) {
	r.Dispatch(cmd)
}

// Disconnect reports a closed connection. Unlike the fire-and-forget
// commands it must never be lost: a dropped disconnect would leave the
// session online forever with no expiry armed, so the send blocks until
// the worker takes it.
func (r *Relay) Disconnect(connID domain.ConnID) {
	r.commands <- domain.DisconnectCommand{ConnID: connID}
}

func (r *Relay) Logout(sessionID domain.SessionID) {
	r.Dispatch(domain.LogoutCommand{SessionID: sessionID})
}

func (r *Relay) AttachMedia(sessionID domain.SessionID, media domain.PendingMedia) {
	r.Dispatch(domain.AttachMediaCommand{SessionID: sessionID, Media: media})
}

// Roster exposes the current snapshot for the debug surface.
func (r *Relay) Roster() []domain.RosterEntry {
	return r.registry.Roster()
}

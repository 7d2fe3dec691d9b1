//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"dm-relay/domain"
	"dm-relay/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives outbound events for one consumer, usually the
// buffered channel feeding a single websocket writer.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry owns both session indices (by username and by sessionId)
// and the reverse connection table behind one synchronization boundary.
// Only the relay worker mutates session state through it.
type IRegistry interface {
	AttachConn(connID domain.ConnID, sink EventSink)
	Register(username string, connID domain.ConnID) (domain.Session, domain.SessionID, error)
	Resume(sessionID domain.SessionID, connID domain.ConnID) (domain.Session, error)
	ReleaseConn(connID domain.ConnID) (domain.Session, bool)
	Destroy(sessionID domain.SessionID) (domain.Session, bool)
	Session(sessionID domain.SessionID) (domain.Session, bool)
	Roster() []domain.RosterEntry
	SetTyping(sessionID domain.SessionID, typing bool) bool
	AttachPendingMedia(sessionID domain.SessionID, media domain.PendingMedia) bool
	TakePendingMedia(sessionID domain.SessionID) (domain.PendingMedia, bool)
	SinkFor(sessionID domain.SessionID) (EventSink, bool)
	ConnectedSinks() []EventSink
}

// ExpiryPolicy decides when an offline session is destroyed for good.
type ExpiryPolicy interface {
	Schedule(sessionID domain.SessionID)
	Cancel(sessionID domain.SessionID)
}

// IRelay is the single entry point for everything the transport layer
// needs: connection lifecycle, message routing and typing relay.
type IRelay interface {
	Attach(connID domain.ConnID, sink EventSink)
	Login(ctx context.Context, connID domain.ConnID, username string) (domain.Session, error)
	Reconnect(ctx context.Context, connID domain.ConnID, sessionID domain.SessionID) (domain.Session, error)
	SendMessage(cmd domain.PrivateMessageCommand)
	SetTyping(cmd domain.TypingCommand)
	Disconnect(connID domain.ConnID)
	Logout(sessionID domain.SessionID)
	AttachMedia(sessionID domain.SessionID, media domain.PendingMedia)
}

// Package runtime handles command serialization, session state, and event
// propagation. It orchestrates the relay without containing transport or
// storage logic.
package runtime

import (
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"dm-relay/contract"
	"dm-relay/domain"
	"dm-relay/errors"
)

// Ensure *Registry implements the contract.IRegistry interface at compile time.
var _ contract.IRegistry = (*Registry)(nil)

type conn struct {
	sink contract.EventSink
	// sessionID stays empty while the connection is unauthenticated.
	sessionID domain.SessionID
}

// Registry owns the two coupled session indices (by sessionId and by
// username) plus the reverse connection table, all behind a single lock.
// A session can therefore never be reachable from one index and not the
// other. Mutations are only ever issued by the relay worker; the lock
// exists for concurrent read snapshots (debug server, stats).
type Registry struct {
	mu         sync.RWMutex
	sessions   map[domain.SessionID]*domain.Session
	byUsername map[string]domain.SessionID
	conns      map[domain.ConnID]*conn
	// order preserves insertion order so the roster stays stable
	// within a process lifetime.
	order   []domain.SessionID
	picture string
}

func NewRegistry(defaultPicture string) *Registry {
	return &Registry{
		sessions:   make(map[domain.SessionID]*domain.Session),
		byUsername: make(map[string]domain.SessionID),
		conns:      make(map[domain.ConnID]*conn),
		picture:    defaultPicture,
	}
}

// AttachConn records a live transport connection before any login.
// The connection starts unauthenticated; roster broadcasts already
// reach it, matching the behaviour of the relayed system.
func (r *Registry) AttachConn(connID domain.ConnID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[connID] = &conn{sink: sink}
}

// Register creates a fresh session for a first login and binds it to the
// connection. It rejects with ErrNameTaken while the username is bound to
// an online session. A leftover offline session under the same name is
// destroyed and replaced: the name frees up exactly like in the relayed
// system, and the stale sessionId stops being reconnectable. The replaced
// sessionId is returned so the caller can cancel its pending expiry.
func (r *Registry) Register(username string, connID domain.ConnID) (domain.Session, domain.SessionID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var replaced domain.SessionID
	if sid, ok := r.byUsername[username]; ok {
		if r.sessions[sid].Online {
			return domain.Session{}, "", errors.ErrNameTaken
		}
		r.destroyLocked(sid)
		replaced = sid
	}

	session := &domain.Session{
		ID:       domain.SessionID(uuid.NewString()),
		Username: username,
		ConnID:   connID,
		Online:   true,
		Picture:  r.picture,
	}
	r.sessions[session.ID] = session
	r.byUsername[username] = session.ID
	r.order = append(r.order, session.ID)
	r.bindLocked(connID, session.ID)
	return *session, replaced, nil
}

// Resume rebinds an existing session to a new connection. The sessionId
// survives, no new ledger entry is created. If the session still appears
// online on another connection, that binding is superseded: the newest
// connection wins and the stale one degrades to unauthenticated.
func (r *Registry) Resume(sessionID domain.SessionID, connID domain.ConnID) (domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, errors.ErrUnknownSession
	}
	if session.ConnID != "" && session.ConnID != connID {
		if old, ok := r.conns[session.ConnID]; ok {
			old.sessionID = ""
		}
	}
	session.ConnID = connID
	session.Online = true
	r.bindLocked(connID, sessionID)
	return *session, nil
}

// ReleaseConn handles a transport-level disconnect. The connection row is
// always removed; the session record is retained with its binding cleared
// so the identity survives for reconnection. A second release for the
// same connection is a no-op, as is releasing a connection that never
// authenticated or whose binding was superseded by a reconnect.
func (r *Registry) ReleaseConn(connID domain.ConnID) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.conns[connID]
	if !ok {
		return domain.Session{}, false
	}
	delete(r.conns, connID)
	if c.sessionID == "" {
		return domain.Session{}, false
	}
	session, ok := r.sessions[c.sessionID]
	if !ok || session.ConnID != connID {
		return domain.Session{}, false
	}
	session.ConnID = ""
	session.Online = false
	session.Typing = false
	return *session, true
}

// Destroy removes the session from both indices permanently.
func (r *Registry) Destroy(sessionID domain.SessionID) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.destroyLocked(sessionID)
}

func (r *Registry) destroyLocked(sessionID domain.SessionID) (domain.Session, bool) {
	session, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, false
	}
	delete(r.sessions, sessionID)
	delete(r.byUsername, session.Username)
	r.order = lo.Without(r.order, sessionID)
	if session.ConnID != "" {
		// The transport connection outlives the session: it falls
		// back to unauthenticated until it logs in again or closes.
		if c, ok := r.conns[session.ConnID]; ok {
			c.sessionID = ""
		}
	}
	return *session, true
}

func (r *Registry) bindLocked(connID domain.ConnID, sessionID domain.SessionID) {
	c, ok := r.conns[connID]
	if !ok {
		c = &conn{}
		r.conns[connID] = c
	}
	if c.sessionID != "" && c.sessionID != sessionID {
		// A connection carries at most one session. The transport rejects
		// a second login on a bound connection, but the ledger must not
		// rely on that: the previous session degrades to offline here, so
		// it can never linger online behind a dangling binding.
		if old, ok := r.sessions[c.sessionID]; ok && old.ConnID == connID {
			old.ConnID = ""
			old.Online = false
			old.Typing = false
		}
	}
	c.sessionID = sessionID
}

// Session returns a snapshot of the session record.
func (r *Registry) Session(sessionID domain.SessionID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return domain.Session{}, false
	}
	return *session, true
}

// Roster snapshots every known session in insertion order.
func (r *Registry) Roster() []domain.RosterEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.order, func(id domain.SessionID, _ int) domain.RosterEntry {
		return r.sessions[id].RosterEntry()
	})
}

func (r *Registry) SetTyping(sessionID domain.SessionID, typing bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	session.Typing = typing
	return true
}

func (r *Registry) AttachPendingMedia(sessionID domain.SessionID, media domain.PendingMedia) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	session.PendingMedia = &media
	return true
}

// TakePendingMedia consumes a parked upload, clearing it from the session.
func (r *Registry) TakePendingMedia(sessionID domain.SessionID) (domain.PendingMedia, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[sessionID]
	if !ok || session.PendingMedia == nil {
		return domain.PendingMedia{}, false
	}
	media := *session.PendingMedia
	session.PendingMedia = nil
	return media, true
}

// SinkFor resolves the sink bound to an online session. Reports false for
// offline or unknown sessions: the caller drops silently in that case.
func (r *Registry) SinkFor(sessionID domain.SessionID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[sessionID]
	if !ok || !session.Online {
		return nil, false
	}
	c, ok := r.conns[session.ConnID]
	if !ok || c.sink == nil {
		return nil, false
	}
	return c.sink, true
}

// ConnectedSinks returns the sink of every live connection, authenticated
// or not. Used for roster broadcasts.
func (r *Registry) ConnectedSinks() []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var sinks []contract.EventSink
	for _, c := range r.conns {
		if c.sink != nil {
			sinks = append(sinks, c.sink)
		}
	}
	return sinks
}

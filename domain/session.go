// Package domain contains core concepts of the relay.
// This file defines the Session record and its projections.
// No runtime, network, or UI logic should be added here.
package domain

// SessionID is the opaque token issued at first login.
// It is stable across reconnects and never reused for another username.
type SessionID string

// ConnID identifies a single live transport connection.
// A session owns at most one connection at a time.
type ConnID string

// PendingMedia holds an upload completed ahead of the message that carries it.
// It is parked on the sender's session and cleared once consumed.
type PendingMedia struct {
	MediaType string
	MediaURL  string
}

// Session binds a display name to a routable identity across reconnects.
// Username is immutable for the session's lifetime. ConnID is non-empty
// exactly while Online is true.
type Session struct {
	ID           SessionID
	Username     string
	ConnID       ConnID
	Online       bool
	Typing       bool
	Picture      string
	PendingMedia *PendingMedia
}

// RosterEntry is the per-session slice of the broadcast user list.
type RosterEntry struct {
	SessionID SessionID `json:"sessionId"`
	Username  string    `json:"username"`
	Online    bool      `json:"online"`
	Typing    bool      `json:"typing"`
	Picture   string    `json:"picture"`
}

func (s Session) RosterEntry() RosterEntry {
	return RosterEntry{
		SessionID: s.ID,
		Username:  s.Username,
		Online:    s.Online,
		Typing:    s.Typing,
		Picture:   s.Picture,
	}
}

package event

import (
	"dm-relay/domain"
)

// DomainEvent is anything the relay pushes out to connected transports.
// Recipient returns the addressed session, or the empty SessionID for
// a broadcast to every connected transport.
type DomainEvent interface {
	Recipient() domain.SessionID
}

// RosterUpdated carries a full roster snapshot. No incremental diffs:
// the server is the sole producer, so a full resend is trivially
// last-write-wins consistent.
type RosterUpdated struct {
	Roster []domain.RosterEntry
}

func (RosterUpdated) Recipient() domain.SessionID { return "" }

// MessageReceived is a point-to-point private message delivery.
type MessageReceived struct {
	From      domain.SessionID
	To        domain.SessionID
	Message   string
	MediaType string
	MediaURL  string
}

func (m MessageReceived) Recipient() domain.SessionID { return m.To }

// TypingDisplayed relays an ephemeral typing on/off signal to one peer.
type TypingDisplayed struct {
	To       domain.SessionID
	Username string
	Typing   bool
}

func (t TypingDisplayed) Recipient() domain.SessionID { return t.To }

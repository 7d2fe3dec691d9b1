package observability

import (
	"sync/atomic"
	"time"
)

// RelayStats aggregates the relay counters for logs and the inspect page.
type RelayStats struct {
	Logins            uint64 `json:"logins"`
	LoginsRejected    uint64 `json:"logins_rejected"`
	Reconnects        uint64 `json:"reconnects"`
	ReconnectsUnknown uint64 `json:"reconnects_unknown"`
	Disconnects       uint64 `json:"disconnects"`
	SessionsExpired   uint64 `json:"sessions_expired"`
	RosterBroadcasts  uint64 `json:"roster_broadcasts"`
	MessagesRelayed   uint64 `json:"messages_relayed"`
	MessagesDropped   uint64 `json:"messages_dropped"`
	EmptyRelays       uint64 `json:"empty_relays"`
	TypingRelayed     uint64 `json:"typing_relayed"`
	Uploads           uint64 `json:"uploads"`
}

// RelayMonitor collects real-time counters with atomic increments.
// It carries no history; the heartbeat worker snapshots it periodically.
type RelayMonitor struct {
	logins            uint64
	loginsRejected    uint64
	reconnects        uint64
	reconnectsUnknown uint64
	disconnects       uint64
	sessionsExpired   uint64
	rosterBroadcasts  uint64
	messagesRelayed   uint64
	messagesDropped   uint64
	emptyRelays       uint64
	typingRelayed     uint64
	uploads           uint64
	startedAt         time.Time
}

func NewRelayMonitor() *RelayMonitor {
	return &RelayMonitor{startedAt: time.Now().UTC()}
}

func (m *RelayMonitor) IncrLogins()            { atomic.AddUint64(&m.logins, 1) }
func (m *RelayMonitor) IncrLoginsRejected()    { atomic.AddUint64(&m.loginsRejected, 1) }
func (m *RelayMonitor) IncrReconnects()        { atomic.AddUint64(&m.reconnects, 1) }
func (m *RelayMonitor) IncrReconnectsUnknown() { atomic.AddUint64(&m.reconnectsUnknown, 1) }
func (m *RelayMonitor) IncrDisconnects()       { atomic.AddUint64(&m.disconnects, 1) }
func (m *RelayMonitor) IncrSessionsExpired()   { atomic.AddUint64(&m.sessionsExpired, 1) }
func (m *RelayMonitor) IncrRosterBroadcasts()  { atomic.AddUint64(&m.rosterBroadcasts, 1) }
func (m *RelayMonitor) IncrMessagesRelayed()   { atomic.AddUint64(&m.messagesRelayed, 1) }
func (m *RelayMonitor) IncrMessagesDropped()   { atomic.AddUint64(&m.messagesDropped, 1) }
func (m *RelayMonitor) IncrEmptyRelays()       { atomic.AddUint64(&m.emptyRelays, 1) }
func (m *RelayMonitor) IncrTypingRelayed()     { atomic.AddUint64(&m.typingRelayed, 1) }
func (m *RelayMonitor) IncrUploads()           { atomic.AddUint64(&m.uploads, 1) }

func (m *RelayMonitor) StartedAt() time.Time { return m.startedAt }

// Snapshot returns a consistent-enough copy for display purposes.
func (m *RelayMonitor) Snapshot() RelayStats {
	return RelayStats{
		Logins:            atomic.LoadUint64(&m.logins),
		LoginsRejected:    atomic.LoadUint64(&m.loginsRejected),
		Reconnects:        atomic.LoadUint64(&m.reconnects),
		ReconnectsUnknown: atomic.LoadUint64(&m.reconnectsUnknown),
		Disconnects:       atomic.LoadUint64(&m.disconnects),
		SessionsExpired:   atomic.LoadUint64(&m.sessionsExpired),
		RosterBroadcasts:  atomic.LoadUint64(&m.rosterBroadcasts),
		MessagesRelayed:   atomic.LoadUint64(&m.messagesRelayed),
		MessagesDropped:   atomic.LoadUint64(&m.messagesDropped),
		EmptyRelays:       atomic.LoadUint64(&m.emptyRelays),
		TypingRelayed:     atomic.LoadUint64(&m.typingRelayed),
		Uploads:           atomic.LoadUint64(&m.uploads),
	}
}

package runtime

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"dm-relay/contract"
	"dm-relay/domain"
)

var _ contract.ExpiryPolicy = (*SessionReaper)(nil)
var _ contract.ExpiryPolicy = NoExpiry{}

// SessionReaper destroys sessions that stayed offline longer than the
// configured TTL. Without it, every unique username ever seen would pin
// a session record for the whole process lifetime.
//
// The eviction callback only dispatches a command: the destruction itself
// runs on the relay worker like any other mutation, so a reconnect racing
// the expiry is resolved there, in serialized order.
type SessionReaper struct {
	cache *ttlcache.Cache[domain.SessionID, struct{}]
}

func NewSessionReaper(ttl time.Duration, onExpired func(domain.SessionID)) *SessionReaper {
	cache := ttlcache.New(
		ttlcache.WithTTL[domain.SessionID, struct{}](ttl),
		ttlcache.WithDisableTouchOnHit[domain.SessionID, struct{}](),
	)
	cache.OnEviction(func(_ context.Context,
		reason ttlcache.EvictionReason, item *ttlcache.Item[domain.SessionID, struct{}]) {
		// Delete and overwrite also surface here; only a real TTL
		// expiration may destroy a session.
		if reason == ttlcache.EvictionReasonExpired {
			onExpired(item.Key())
		}
	})
	go cache.Start()
	return &SessionReaper{cache: cache}
}

// Schedule arms (or re-arms) the expiry countdown for an offline session.
func (r *SessionReaper) Schedule(sessionID domain.SessionID) {
	r.cache.Set(sessionID, struct{}{}, ttlcache.DefaultTTL)
}

// Cancel disarms a pending expiry, typically on reconnect.
func (r *SessionReaper) Cancel(sessionID domain.SessionID) {
	r.cache.Delete(sessionID)
}

// Stop halts the background cleanup goroutine.
func (r *SessionReaper) Stop() {
	r.cache.Stop()
}

// NoExpiry keeps offline sessions forever, matching the relayed system's
// original behaviour. Selected when the session TTL is zero.
type NoExpiry struct{}

func (NoExpiry) Schedule(domain.SessionID) {}
func (NoExpiry) Cancel(domain.SessionID)   {}

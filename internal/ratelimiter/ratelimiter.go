// Package ratelimiter provides per-identity request limiting for form
// submission endpoints (comment/post creation, votes). Identities are
// usually "user_<id>" or a client IP.
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IdentityLimiter manages one token bucket per identity. Buckets idle for
// longer than expiration are dropped by a background sweep.
type IdentityLimiter struct {
	mu         sync.Mutex
	entries    map[string]*entry
	rps        rate.Limit
	burst      int
	expiration time.Duration
	stopSweep  chan struct{}
	sweepOnce  sync.Once
}

func New(rps float64, burst int, expiration time.Duration) *IdentityLimiter {
	l := &IdentityLimiter{
		entries:    make(map[string]*entry),
		rps:        rate.Limit(rps),
		burst:      burst,
		expiration: expiration,
		stopSweep:  make(chan struct{}),
	}
	go l.sweep()
	return l
}

// Allow reports whether the identity may proceed right now.
func (l *IdentityLimiter) Allow(identity string) bool {
	l.mu.Lock()
	e, ok := l.entries[identity]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.entries[identity] = e
	}
	e.lastSeen = time.Now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

// Stop halts the background sweep.
func (l *IdentityLimiter) Stop() {
	l.sweepOnce.Do(func() { close(l.stopSweep) })
}

func (l *IdentityLimiter) sweep() {
	ticker := time.NewTicker(l.expiration)
	defer ticker.Stop()
	for {
		select {
		case <-l.stopSweep:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-l.expiration)
			l.mu.Lock()
			for identity, e := range l.entries {
				if e.lastSeen.Before(cutoff) {
					delete(l.entries, identity)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Package ratelimit implements the per-client-IP request gate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// IPGate budgets requests per client IP: a burst of `requests` replenished
// over `window`. Constructed once at startup and handed to the HTTP
// middleware; there is no package-level instance.
type IPGate struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   rate.Limit
	burst   int
}

func New(requests int, window time.Duration) *IPGate {
	return &IPGate{
		entries: make(map[string]*entry),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
	}
}

// Allow consumes one token for ip, reporting whether the request may
// proceed. Never blocks or queues.
func (g *IPGate) Allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.entries[ip]
	if !ok {
		e = &entry{lim: rate.NewLimiter(g.limit, g.burst)}
		g.entries[ip] = e
	}
	e.lastSeen = time.Now()
	return e.lim.Allow()
}

// Prune drops counters idle for longer than olderThan and returns how many
// were removed. An idle counter is fully replenished anyway, so dropping it
// never grants extra budget.
func (g *IPGate) Prune(olderThan time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	removed := 0
	for ip, e := range g.entries {
		if e.lastSeen.Before(cutoff) {
			delete(g.entries, ip)
			removed++
		}
	}
	return removed
}

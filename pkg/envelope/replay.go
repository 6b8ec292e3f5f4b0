package envelope

import (
	"fmt"
	"sync"
	"time"
)

// Replay guard defaults.
const (
	DefaultReplayWindow   = 60 * time.Second
	DefaultMaxFutureSkew  = 5 * time.Second
	DefaultReplayGuardMax = 10_000
)

// ReplayGuard is a bounded seen-ids cache that makes message verification
// idempotent within its window. Safe for concurrent use.
type ReplayGuard struct {
	mu      sync.Mutex
	seen    map[string]time.Time
	order   []string // insertion order for size-based eviction
	window  time.Duration
	skew    time.Duration
	maxSize int
	now     func() time.Time
}

// NewReplayGuard creates a guard with the given window and max size.
// Non-positive arguments fall back to the defaults.
func NewReplayGuard(window time.Duration, maxSize int) *ReplayGuard {
	if window <= 0 {
		window = DefaultReplayWindow
	}
	if maxSize <= 0 {
		maxSize = DefaultReplayGuardMax
	}
	return &ReplayGuard{
		seen:    make(map[string]time.Time),
		window:  window,
		skew:    DefaultMaxFutureSkew,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Check validates a message id and timestamp against the replay policy
// and, on success, records the id. A message is rejected if its id has
// been seen, its timestamp is older than the window, or its timestamp is
// too far in the future.
func (g *ReplayGuard) Check(messageID string, ts time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if _, ok := g.seen[messageID]; ok {
		return fmt.Errorf("message %s already seen", messageID)
	}
	if now.Sub(ts) > g.window {
		return fmt.Errorf("message %s timestamp outside replay window", messageID)
	}
	if ts.Sub(now) > g.skew {
		return fmt.Errorf("message %s timestamp too far in the future", messageID)
	}

	g.seen[messageID] = now
	g.order = append(g.order, messageID)
	if len(g.seen) > g.maxSize {
		g.evict(now)
	}
	return nil
}

// evict prunes entries older than the window first, then drops the oldest
// remaining entries until the map fits. Caller holds the lock.
func (g *ReplayGuard) evict(now time.Time) {
	kept := g.order[:0]
	for _, id := range g.order {
		arrived, ok := g.seen[id]
		if !ok {
			continue
		}
		if now.Sub(arrived) > g.window {
			delete(g.seen, id)
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept

	for len(g.seen) > g.maxSize && len(g.order) > 0 {
		oldest := g.order[0]
		g.order = g.order[1:]
		delete(g.seen, oldest)
	}
}

// Size returns the number of tracked ids.
func (g *ReplayGuard) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}

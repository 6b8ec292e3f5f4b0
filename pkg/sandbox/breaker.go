package sandbox

import (
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// breakerSet holds one circuit breaker per gear. A gear whose
// executions keep failing is short-circuited to skipped until its
// rolling window elapses.
type breakerSet struct {
	failures int
	window   time.Duration

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker
}

func newBreakerSet(failures int, window time.Duration) *breakerSet {
	return &breakerSet{
		failures: failures,
		window:   window,
		breakers: map[string]*gobreaker.CircuitBreaker{},
	}
}

func (s *breakerSet) get(gearID string) *gobreaker.CircuitBreaker {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cb, ok := s.breakers[gearID]; ok {
		return cb
	}
	threshold := uint32(s.failures)
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        gearID,
		MaxRequests: 1,
		Interval:    s.window,
		Timeout:     s.window,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.TotalFailures >= threshold
		},
	})
	s.breakers[gearID] = cb
	return cb
}

func (s *breakerSet) isOpen(gearID string) bool {
	s.mu.Lock()
	cb, ok := s.breakers[gearID]
	s.mu.Unlock()
	return ok && cb.State() == gobreaker.StateOpen
}

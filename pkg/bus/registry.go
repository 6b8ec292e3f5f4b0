// Package bus implements the in-process message fabric: a component
// registry addressing handlers by logical id, and a synchronous router
// that runs every envelope through a middleware chain before delivery.
package bus

import (
	"context"
	"fmt"
	"sync"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
)

// Handler processes one envelope and returns the response envelope.
type Handler func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error)

// Registry maps component ids to handlers. Exactly one handler is bound
// per id at a time.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty component registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds a handler to a component id. Fails if the id is already
// bound; callers must Unregister first.
func (r *Registry) Register(componentID string, h Handler) error {
	if componentID == "" {
		return fmt.Errorf("component id must not be empty")
	}
	if h == nil {
		return fmt.Errorf("component %s: handler must not be nil", componentID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[componentID]; ok {
		return fmt.Errorf("component %s already registered", componentID)
	}
	r.handlers[componentID] = h
	return nil
}

// Unregister removes the handler bound to a component id.
func (r *Registry) Unregister(componentID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, componentID)
}

// Has reports whether a handler is bound to the id.
func (r *Registry) Has(componentID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[componentID]
	return ok
}

// lookup returns the handler for an id.
func (r *Registry) lookup(componentID string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[componentID]
	return h, ok
}

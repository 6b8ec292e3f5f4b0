package bus

import (
	"context"
	"log/slog"
	"time"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Size guard defaults.
const (
	DefaultMaxMessageSizeBytes  = 1 << 20 // 1 MiB
	DefaultWarnThresholdBytes   = 256 << 10
	DefaultValidatorComponentID = "validator"
)

// Config tunes the router's built-in middleware chain.
type Config struct {
	// MaxMessageSizeBytes rejects payloads above this encoded size.
	MaxMessageSizeBytes int
	// WarnThresholdBytes logs a warning for payloads above this size.
	WarnThresholdBytes int
	// TrustedSigners bypass signature and replay verification. Intended
	// for in-process components that share the router's address space.
	TrustedSigners map[string]bool
	// ValidatorID is the component the information barrier protects.
	ValidatorID string
	// ReplayWindow bounds how old an accepted envelope may be.
	ReplayWindow time.Duration
}

func (c *Config) applyDefaults() {
	if c.MaxMessageSizeBytes <= 0 {
		c.MaxMessageSizeBytes = DefaultMaxMessageSizeBytes
	}
	if c.WarnThresholdBytes <= 0 {
		c.WarnThresholdBytes = DefaultWarnThresholdBytes
	}
	if c.ValidatorID == "" {
		c.ValidatorID = DefaultValidatorComponentID
	}
}

// Router dispatches envelopes to registered components through the
// ordered middleware chain. Dispatch is synchronous from the caller's
// perspective; concurrency is the caller's responsibility.
type Router struct {
	registry *Registry
	keyring  *envelope.Keyring
	guard    *envelope.ReplayGuard
	signer   *envelope.Signer
	config   Config
	chain    dispatchFunc
}

type dispatchFunc func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error)

// NewRouter creates a router. The signer signs router-originated error
// envelopes; the keyring holds the public keys dispatches verify against.
func NewRouter(registry *Registry, keyring *envelope.Keyring, signer *envelope.Signer, cfg Config) *Router {
	cfg.applyDefaults()
	r := &Router{
		registry: registry,
		keyring:  keyring,
		guard:    envelope.NewReplayGuard(cfg.ReplayWindow, 0),
		signer:   signer,
		config:   cfg,
	}
	// Middleware order matters: schema → verify/replay → size → scrub.
	// The error wrapper sits innermost around the handler itself.
	r.chain = r.schemaMiddleware(
		r.verifyMiddleware(
			r.sizeMiddleware(
				r.scrubMiddleware(
					r.errorWrapper(r.deliver)))))
	return r
}

// Dispatch routes an envelope to its addressee and returns the response.
// Failures surface as signed error envelopes, never as dropped messages.
func (r *Router) Dispatch(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	return r.chain(ctx, env)
}

// deliver invokes the addressee's handler.
func (r *Router) deliver(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	handler, ok := r.registry.lookup(env.To)
	if !ok {
		slog.Warn("No handler registered for component", "to", env.To, "type", env.Type)
		return r.errorEnvelope(env, models.CodeComponentNotFound, "no handler registered for "+env.To)
	}
	return handler(ctx, env)
}

// errorEnvelope builds a signed error response for a failed dispatch.
func (r *Router) errorEnvelope(req *envelope.Envelope, code, message string) (*envelope.Envelope, error) {
	return r.signer.NewError(req, code, message)
}

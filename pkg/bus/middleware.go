package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// barrierKeys are payload keys that must never reach the validator. Their
// presence on a validate.request is logged as a barrier violation.
var barrierKeys = []string{
	"userMessage",
	"conversationHistory",
	"journalData",
	"relevantMemories",
	"pluginCatalog",
	"originalMessage",
}

// schemaMiddleware rejects envelopes that fail structural validation.
func (r *Router) schemaMiddleware(next dispatchFunc) dispatchFunc {
	return func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
		if env == nil {
			return nil, fmt.Errorf("nil envelope")
		}
		if err := env.ValidateSchema(); err != nil {
			slog.Warn("Envelope failed schema validation", "error", err)
			return r.errorEnvelope(env, models.CodeInvalidEnvelope, err.Error())
		}
		return next(ctx, env)
	}
}

// verifyMiddleware checks the signature against the keyring and runs the
// replay guard. Trusted in-process signers bypass both checks.
func (r *Router) verifyMiddleware(next dispatchFunc) dispatchFunc {
	return func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
		if r.config.TrustedSigners[env.Signer] {
			return next(ctx, env)
		}

		key, ok := r.keyring.Lookup(env.Signer)
		if !ok {
			slog.Warn("Unknown signer", "signer", env.Signer, "message_id", env.MessageID)
			return r.errorEnvelope(env, models.CodeSignatureInvalid, "unknown signer "+env.Signer)
		}
		if err := envelope.Verify(env, key); err != nil {
			slog.Warn("Signature verification failed",
				"signer", env.Signer, "message_id", env.MessageID, "error", err)
			return r.errorEnvelope(env, models.CodeSignatureInvalid, err.Error())
		}

		ts, err := env.Time()
		if err != nil {
			return r.errorEnvelope(env, models.CodeInvalidEnvelope, err.Error())
		}
		if err := r.guard.Check(env.MessageID, ts); err != nil {
			slog.Warn("Replay guard rejected envelope",
				"message_id", env.MessageID, "error", err)
			return r.errorEnvelope(env, models.CodeReplayRejected, err.Error())
		}
		return next(ctx, env)
	}
}

// sizeMiddleware enforces the payload size cap and warns on large
// payloads below it.
func (r *Router) sizeMiddleware(next dispatchFunc) dispatchFunc {
	return func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
		raw, err := json.Marshal(env.Payload)
		if err != nil {
			return r.errorEnvelope(env, models.CodeInvalidEnvelope, "unencodable payload")
		}
		size := len(raw)
		if size > r.config.MaxMessageSizeBytes {
			slog.Warn("Payload exceeds size limit",
				"message_id", env.MessageID, "size", size, "limit", r.config.MaxMessageSizeBytes)
			return r.errorEnvelope(env, models.CodeMessageTooLarge,
				fmt.Sprintf("payload size %d exceeds limit %d", size, r.config.MaxMessageSizeBytes))
		}
		if size > r.config.WarnThresholdBytes {
			slog.Warn("Large payload", "message_id", env.MessageID, "size", size, "to", env.To)
		}
		return next(ctx, env)
	}
}

// scrubMiddleware enforces the validator's information barrier: every
// payload key except "plan" is stripped from messages addressed to the
// validator, and known barrier-violating keys are logged.
func (r *Router) scrubMiddleware(next dispatchFunc) dispatchFunc {
	return func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
		if env.To != r.config.ValidatorID {
			return next(ctx, env)
		}

		for _, key := range barrierKeys {
			if _, ok := env.Payload[key]; ok {
				slog.Warn("Information barrier violation: payload key stripped before validator delivery",
					"key", key, "from", env.From, "message_id", env.MessageID)
			}
		}

		scrubbed := *env
		scrubbed.Payload = map[string]any{}
		if plan, ok := env.Payload["plan"]; ok {
			scrubbed.Payload["plan"] = plan
		}
		// Metadata must not influence the verdict either; drop it at the
		// boundary so the validator cannot observe it.
		scrubbed.Metadata = nil
		return next(ctx, &scrubbed)
	}
}

// errorWrapper converts any handler failure into a signed error-type
// response with a {code, message} payload.
func (r *Router) errorWrapper(next dispatchFunc) dispatchFunc {
	return func(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
		resp, err := next(ctx, env)
		if err == nil {
			return resp, nil
		}
		slog.Error("Handler failed", "to", env.To, "type", env.Type, "error", err)
		code := models.CodeHandlerFailed
		var coded *models.CodedError
		if errors.As(err, &coded) {
			code = coded.Code
		}
		return r.errorEnvelope(env, code, err.Error())
	}
}

// Package envelope implements the signed inter-component message format:
// Ed25519 signatures over a canonical encoding, a bounded replay guard,
// and the public-key registry components verify against.
package envelope

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Timestamp layout: RFC 3339 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is a signed inter-component message.
type Envelope struct {
	MessageID     string             `json:"messageId"`
	CorrelationID string             `json:"correlationId"`
	ReplyTo       string             `json:"replyTo,omitempty"`
	Timestamp     string             `json:"timestamp"`
	From          string             `json:"from"`
	To            string             `json:"to"`
	Type          models.MessageType `json:"type"`
	Payload       map[string]any     `json:"payload"`
	Metadata      map[string]any     `json:"metadata,omitempty"`
	Signature     string             `json:"signature"`
	Signer        string             `json:"signer"`
}

// Signer holds a component's Ed25519 private key and produces signed
// envelopes. The private key never leaves the signing principal.
type Signer struct {
	id         string
	privateKey ed25519.PrivateKey
}

// NewSigner creates a signer for the given component id.
func NewSigner(id string, key ed25519.PrivateKey) *Signer {
	return &Signer{id: id, privateKey: key}
}

// ID returns the signer's component id.
func (s *Signer) ID() string { return s.id }

// Public returns the signer's public key for keyring registration.
func (s *Signer) Public() ed25519.PublicKey {
	return s.privateKey.Public().(ed25519.PublicKey)
}

// NewRequest builds and signs a request envelope with a fresh message id
// and correlation id.
func (s *Signer) NewRequest(to string, msgType models.MessageType, payload map[string]any) (*Envelope, error) {
	env := &Envelope{
		MessageID:     uuid.NewString(),
		CorrelationID: uuid.NewString(),
		Timestamp:     time.Now().UTC().Format(timestampLayout),
		From:          s.id,
		To:            to,
		Type:          msgType,
		Payload:       payload,
		Signer:        s.id,
	}
	if err := s.sign(env); err != nil {
		return nil, err
	}
	return env, nil
}

// NewResponse builds and signs a response correlated to req: same
// correlation id, replyTo set to the request's message id, addressed back
// to the request's sender.
func (s *Signer) NewResponse(req *Envelope, msgType models.MessageType, payload map[string]any) (*Envelope, error) {
	env := &Envelope{
		MessageID:     uuid.NewString(),
		CorrelationID: req.CorrelationID,
		ReplyTo:       req.MessageID,
		Timestamp:     time.Now().UTC().Format(timestampLayout),
		From:          s.id,
		To:            req.From,
		Type:          msgType,
		Payload:       payload,
		Signer:        s.id,
	}
	if err := s.sign(env); err != nil {
		return nil, err
	}
	return env, nil
}

// NewError builds a signed error response with a {code, message} payload.
func (s *Signer) NewError(req *Envelope, code, message string) (*Envelope, error) {
	return s.NewResponse(req, models.MsgError, map[string]any{
		"code":    code,
		"message": message,
	})
}

func (s *Signer) sign(env *Envelope) error {
	input, err := signingInput(env)
	if err != nil {
		return err
	}
	env.Signature = base64.StdEncoding.EncodeToString(ed25519.Sign(s.privateKey, input))
	return nil
}

// signingInput builds the canonical byte string the signature covers:
// signer, messageId, timestamp, and the canonical JSON of the payload,
// newline separated.
func signingInput(env *Envelope) ([]byte, error) {
	payload, err := CanonicalJSON(env.Payload)
	if err != nil {
		return nil, fmt.Errorf("canonicalizing payload: %w", err)
	}
	out := make([]byte, 0, len(env.Signer)+len(env.MessageID)+len(env.Timestamp)+len(payload)+3)
	out = append(out, env.Signer...)
	out = append(out, '\n')
	out = append(out, env.MessageID...)
	out = append(out, '\n')
	out = append(out, env.Timestamp...)
	out = append(out, '\n')
	out = append(out, payload...)
	return out, nil
}

// Verify checks env's signature against the given public key.
func Verify(env *Envelope, publicKey ed25519.PublicKey) error {
	if env.Signature == "" {
		return fmt.Errorf("envelope %s: missing signature", env.MessageID)
	}
	sig, err := base64.StdEncoding.DecodeString(env.Signature)
	if err != nil {
		return fmt.Errorf("envelope %s: malformed signature: %w", env.MessageID, err)
	}
	input, err := signingInput(env)
	if err != nil {
		return err
	}
	if !ed25519.Verify(publicKey, input, sig) {
		return fmt.Errorf("envelope %s: signature verification failed", env.MessageID)
	}
	return nil
}

// ValidateSchema checks the structural envelope invariants: required
// fields present, known message type, parseable timestamp.
func (env *Envelope) ValidateSchema() error {
	switch {
	case env.MessageID == "":
		return fmt.Errorf("missing messageId")
	case env.CorrelationID == "":
		return fmt.Errorf("missing correlationId")
	case env.From == "":
		return fmt.Errorf("missing from")
	case env.To == "":
		return fmt.Errorf("missing to")
	case env.Signer == "":
		return fmt.Errorf("missing signer")
	case env.Timestamp == "":
		return fmt.Errorf("missing timestamp")
	}
	if !env.Type.Valid() {
		return fmt.Errorf("unknown message type %q", env.Type)
	}
	if _, err := env.Time(); err != nil {
		return fmt.Errorf("malformed timestamp %q: %w", env.Timestamp, err)
	}
	return nil
}

// Time parses the envelope timestamp.
func (env *Envelope) Time() (time.Time, error) {
	return time.Parse(time.RFC3339, env.Timestamp)
}

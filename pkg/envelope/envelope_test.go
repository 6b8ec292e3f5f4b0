package envelope

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func newTestSigner(t *testing.T, id string) *Signer {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return NewSigner(id, priv)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	s := newTestSigner(t, "planner")

	env, err := s.NewRequest("validator", models.MsgValidateRequest, map[string]any{
		"plan": map[string]any{"id": "p1"},
	})
	require.NoError(t, err)

	require.NoError(t, env.ValidateSchema())
	require.NoError(t, Verify(env, s.Public()))
	assert.Equal(t, "planner", env.Signer)
	assert.NotEmpty(t, env.MessageID)
	assert.NotEmpty(t, env.CorrelationID)
}

func TestVerifyFailsOnTamper(t *testing.T) {
	s := newTestSigner(t, "planner")

	tests := []struct {
		name   string
		mutate func(*Envelope)
	}{
		{"payload", func(e *Envelope) { e.Payload["extra"] = "injected" }},
		{"signer", func(e *Envelope) { e.Signer = "validator" }},
		{"message id", func(e *Envelope) { e.MessageID = "forged" }},
		{"timestamp", func(e *Envelope) {
			e.Timestamp = time.Now().Add(time.Second).UTC().Format(timestampLayout)
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, err := s.NewRequest("validator", models.MsgValidateRequest, map[string]any{"k": "v"})
			require.NoError(t, err)
			tc.mutate(env)
			assert.Error(t, Verify(env, s.Public()))
		})
	}
}

func TestResponseCorrelation(t *testing.T) {
	planner := newTestSigner(t, "planner")
	validator := newTestSigner(t, "validator")

	req, err := planner.NewRequest("validator", models.MsgValidateRequest, map[string]any{"plan": "x"})
	require.NoError(t, err)

	resp, err := validator.NewResponse(req, models.MsgValidateResponse, map[string]any{"verdict": "approved"})
	require.NoError(t, err)

	assert.Equal(t, req.CorrelationID, resp.CorrelationID)
	assert.Equal(t, req.MessageID, resp.ReplyTo)
	assert.Equal(t, "planner", resp.To)
	require.NoError(t, Verify(resp, validator.Public()))
}

func TestValidateSchemaRejectsUnknownType(t *testing.T) {
	s := newTestSigner(t, "planner")
	env, err := s.NewRequest("validator", models.MsgValidateRequest, nil)
	require.NoError(t, err)

	env.Type = models.MessageType("plan.hijack")
	assert.ErrorContains(t, env.ValidateSchema(), "unknown message type")
}

func TestCanonicalJSONSortsKeys(t *testing.T) {
	out, err := CanonicalJSON(map[string]any{
		"zebra": 1,
		"alpha": map[string]any{"d": 4, "b": []any{"x", 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"alpha":{"b":["x",2],"d":4},"zebra":1}`, string(out))
}

func TestCanonicalJSONPreservesNumbers(t *testing.T) {
	out, err := CanonicalJSON(map[string]any{"amount": 1000, "rate": 0.25})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":1000,"rate":0.25}`, string(out))
}

func TestReplayGuardRejectsDuplicate(t *testing.T) {
	g := NewReplayGuard(time.Minute, 100)
	now := time.Now()

	require.NoError(t, g.Check("m1", now))
	assert.ErrorContains(t, g.Check("m1", now), "already seen")
	require.NoError(t, g.Check("m2", now))
}

func TestReplayGuardWindow(t *testing.T) {
	g := NewReplayGuard(time.Minute, 100)
	now := time.Now()

	assert.ErrorContains(t, g.Check("old", now.Add(-2*time.Minute)), "outside replay window")
	assert.ErrorContains(t, g.Check("future", now.Add(10*time.Second)), "future")
	require.NoError(t, g.Check("fresh", now.Add(-30*time.Second)))
}

func TestReplayGuardEviction(t *testing.T) {
	g := NewReplayGuard(time.Minute, 3)
	base := time.Now()
	g.now = func() time.Time { return base }

	require.NoError(t, g.Check("a", base))
	require.NoError(t, g.Check("b", base))
	require.NoError(t, g.Check("c", base))

	// Exceeding max size evicts the oldest entry once stale pruning finds
	// nothing to drop.
	require.NoError(t, g.Check("d", base))
	assert.Equal(t, 3, g.Size())

	// "a" was evicted, so it is accepted again.
	require.NoError(t, g.Check("a", base))
}

func TestKeyringRemoveZeroesKey(t *testing.T) {
	kr := NewKeyring()
	s := newTestSigner(t, "planner")

	require.NoError(t, kr.Register("planner", s.Public()))
	stored, ok := kr.Lookup("planner")
	require.True(t, ok)

	kr.Remove("planner")
	_, ok = kr.Lookup("planner")
	assert.False(t, ok)
	for _, b := range stored {
		assert.Zero(t, b)
	}
}

func TestKeyringRejectsShortKey(t *testing.T) {
	kr := NewKeyring()
	assert.Error(t, kr.Register("planner", []byte{1, 2, 3}))
}

package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

func newTestEngine(t *testing.T) (*Engine, *ent.Client) {
	client := testdb.NewTestClient(t)
	return NewEngine(client.Client, 5), client.Client
}

func TestCategory(t *testing.T) {
	assert.Equal(t, "email", Category("email:send"))
	assert.Equal(t, "email", Category("email:*"))
	assert.Equal(t, "standalone", Category("standalone"))
	assert.Equal(t, "a", Category("a:b:c"))
}

func TestMatchRuleExactAndWildcard(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	_, err := e.CreateRule(ctx, Spec{ActionPattern: "email:send", CreatedBy: "u1"})
	require.NoError(t, err)
	_, err = e.CreateRule(ctx, Spec{ActionPattern: "files:*", CreatedBy: "u1"})
	require.NoError(t, err)

	exact, err := e.MatchRule(ctx, "email:send")
	require.NoError(t, err)
	require.NotNil(t, exact)
	assert.Equal(t, "email:send", exact.ActionPattern)

	wild, err := e.MatchRule(ctx, "files:delete")
	require.NoError(t, err)
	require.NotNil(t, wild)
	assert.Equal(t, "files:*", wild.ActionPattern)

	none, err := e.MatchRule(ctx, "email:archive")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMatchRuleNewestFirst(t *testing.T) {
	e, client := newTestEngine(t)
	ctx := context.Background()

	older, err := e.CreateRule(ctx, Spec{ActionPattern: "email:*", Verdict: "approve", CreatedBy: "u1"})
	require.NoError(t, err)
	// Force a distinct, older timestamp.
	require.NoError(t, client.StandingRule.UpdateOneID(older.ID).
		SetCreatedAt(time.Now().Add(-time.Hour)).Exec(ctx))

	newer, err := e.CreateRule(ctx, Spec{ActionPattern: "email:send", Verdict: "deny", CreatedBy: "u1"})
	require.NoError(t, err)

	matched, err := e.MatchRule(ctx, "email:send")
	require.NoError(t, err)
	require.NotNil(t, matched)
	assert.Equal(t, newer.ID, matched.ID, "newest matching rule wins")
}

func TestMatchRuleExcludesExpired(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Minute)
	_, err := e.CreateRule(ctx, Spec{ActionPattern: "email:*", CreatedBy: "u1", ExpiresAt: &past})
	require.NoError(t, err)

	matched, err := e.MatchRule(ctx, "email:send")
	require.NoError(t, err)
	assert.Nil(t, matched, "expired rules never match")

	listed, err := e.ListRules(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed, "expired rules are excluded from listing")
}

func TestCreateRuleDefaults(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	rule, err := e.CreateRule(ctx, Spec{ActionPattern: "calendar:*", CreatedBy: "u1"})
	require.NoError(t, err)
	assert.EqualValues(t, "global", rule.Scope)
	assert.EqualValues(t, "approve", rule.Verdict)
	assert.Zero(t, rule.ApprovalCount)
	assert.Nil(t, rule.ExpiresAt)
}

func TestDeleteRule(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	rule, err := e.CreateRule(ctx, Spec{ActionPattern: "calendar:*", CreatedBy: "u1"})
	require.NoError(t, err)
	require.NoError(t, e.DeleteRule(ctx, rule.ID))
	assert.Error(t, e.DeleteRule(ctx, rule.ID))

	matched, err := e.MatchRule(ctx, "calendar:create")
	require.NoError(t, err)
	assert.Nil(t, matched)
}

func TestSuggestRuleFiresOnThresholdAndResets(t *testing.T) {
	e := NewEngine(nil, 5)

	// Exactly the 5th same-category call fires, then the counter resets.
	for round := 0; round < 2; round++ {
		for i := 1; i <= 4; i++ {
			assert.False(t, e.SuggestRule("email:send"), "round %d call %d", round, i)
		}
		assert.True(t, e.SuggestRule("email:archive"), "round %d threshold call", round)
	}
}

func TestSuggestRuleCountersArePerCategory(t *testing.T) {
	e := NewEngine(nil, 5)

	for i := 0; i < 4; i++ {
		assert.False(t, e.SuggestRule("email:send"))
	}
	// Different category: independent counter, far from threshold.
	assert.False(t, e.SuggestRule("files:read"))
	// Email still fires on its own 5th call.
	assert.True(t, e.SuggestRule("email:send"))
}

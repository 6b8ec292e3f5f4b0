package retention

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
	"github.com/gearbox-dev/gearbox/pkg/config"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		SweepInterval:     time.Hour,
		ExpiredRuleGrace:  7 * 24 * time.Hour,
		CallRetentionDays: 90,
		JobScrubAfter:     30 * 24 * time.Hour,
	}
}

func createRule(t *testing.T, client *ent.Client, expiresAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.StandingRule.Create().
		SetID(id).
		SetActionPattern("file:*").
		SetScope(standingrule.ScopeGlobal).
		SetVerdict(standingrule.VerdictApprove).
		SetCreatedBy("user").
		SetExpiresAt(expiresAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func createCall(t *testing.T, client *ent.Client, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.LLMCall.Create().
		SetID(id).
		SetComponent("planner").
		SetProvider("anthropic").
		SetModel("claude-sonnet-4-5").
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func createTerminalJob(t *testing.T, client *ent.Client, updatedAt time.Time, metadata map[string]any) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.Job.Create().
		SetID(id).
		SetConversationID("c1").
		SetStatus(job.StatusCompleted).
		SetPriority(job.PriorityNormal).
		SetSourceType(job.SourceTypeUser).
		SetMetadata(metadata).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestSweepDeletesLongExpiredRules(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewService(testRetentionConfig(), client.Client)
	ctx := context.Background()

	oldID := createRule(t, client.Client, time.Now().AddDate(0, 0, -30))
	recentID := createRule(t, client.Client, time.Now().AddDate(0, 0, -1))
	activeID := createRule(t, client.Client, time.Now().AddDate(0, 0, 30))

	s.Sweep(ctx)

	remaining, err := client.StandingRule.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldID, "rules past the grace period are deleted")
	assert.Contains(t, remaining, recentID, "recently expired rules stay for audit")
	assert.Contains(t, remaining, activeID)
}

func TestSweepPrunesOldCallRows(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewService(testRetentionConfig(), client.Client)
	ctx := context.Background()

	oldID := createCall(t, client.Client, time.Now().AddDate(0, 0, -120))
	freshID := createCall(t, client.Client, time.Now())

	s.Sweep(ctx)

	remaining, err := client.LLMCall.Query().IDs(ctx)
	require.NoError(t, err)
	assert.NotContains(t, remaining, oldID)
	assert.Contains(t, remaining, freshID)
}

func TestSweepScrubsTerminalJobMetadata(t *testing.T) {
	client := testdb.NewTestClient(t)
	s := NewService(testRetentionConfig(), client.Client)
	ctx := context.Background()

	oldJob := createTerminalJob(t, client.Client, time.Now().AddDate(0, 0, -60), map[string]any{
		"content":       "original message",
		"approvalNonce": "nonce-1",
		"trustMode":     true,
	})
	freshJob := createTerminalJob(t, client.Client, time.Now(), map[string]any{
		"content": "keep me",
	})

	s.Sweep(ctx)

	scrubbed, err := client.Job.Get(ctx, oldJob)
	require.NoError(t, err)
	assert.NotContains(t, scrubbed.Metadata, "content")
	assert.NotContains(t, scrubbed.Metadata, "approvalNonce")
	assert.Equal(t, true, scrubbed.Metadata["trustMode"], "non-transient metadata survives")

	kept, err := client.Job.Get(ctx, freshJob)
	require.NoError(t, err)
	assert.Equal(t, "keep me", kept.Metadata["content"])
}

func TestSweepSkippedWhilePaused(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := testRetentionConfig()
	cfg.SweepInterval = 50 * time.Millisecond
	s := NewService(cfg, client.Client)
	ctx := context.Background()

	oldID := createRule(t, client.Client, time.Now().AddDate(0, 0, -30))

	s.SetPaused(true)
	s.Start(ctx)
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	remaining, err := client.StandingRule.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Contains(t, remaining, oldID, "paused sweeps leave data untouched")
}

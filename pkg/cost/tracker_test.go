package cost

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/config"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

func newTestTracker(t *testing.T, limitUsd float64) *Tracker {
	t.Helper()
	client := testdb.NewTestClient(t)
	return NewTracker(client.Client, &config.CostConfig{DailyLimitUsd: limitUsd}, nil)
}

func TestPriceKnownModel(t *testing.T) {
	tr := NewTracker(nil, &config.CostConfig{}, nil)

	// 1M input at $3/MTok plus 1M output at $15/MTok.
	got := tr.Price("claude-sonnet-4-5", 1_000_000, 1_000_000, 0)
	assert.InDelta(t, 18.0, got, 1e-9)
}

func TestPriceFallbackForUnknownModel(t *testing.T) {
	tr := NewTracker(nil, &config.CostConfig{}, nil)
	got := tr.Price("mystery-model", 1_000_000, 0, 0)
	assert.InDelta(t, defaultPricing.InputPerMTok, got, 1e-9)
}

func TestPriceOverrideTable(t *testing.T) {
	tr := NewTracker(nil, &config.CostConfig{}, map[string]Pricing{
		"local-llama": {InputPerMTok: 0, OutputPerMTok: 0},
	})
	assert.Zero(t, tr.Price("local-llama", 500_000, 500_000, 0))
}

func TestRecordCallAggregatesDaily(t *testing.T) {
	tr := newTestTracker(t, 5)
	ctx := context.Background()

	cost1, err := tr.RecordCall(ctx, CallRecord{
		JobID: "j1", Component: "planner", Provider: "anthropic",
		Model: "claude-sonnet-4-5", InputTokens: 200_000, OutputTokens: 50_000,
		DurationMs: 1200,
	})
	require.NoError(t, err)
	assert.Greater(t, cost1, 0.0)

	cost2, err := tr.RecordCall(ctx, CallRecord{
		Component: "planner", Provider: "anthropic",
		Model: "claude-sonnet-4-5", InputTokens: 100_000, OutputTokens: 10_000,
	})
	require.NoError(t, err)

	total, err := tr.DailyTotal(ctx, time.Now())
	require.NoError(t, err)
	assert.InDelta(t, cost1+cost2, total, 1e-9)
}

func TestAlertLevels(t *testing.T) {
	tr := newTestTracker(t, 10)
	ctx := context.Background()

	level, err := tr.GetAlertLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, AlertNone, level)

	// $8.10 of a $10 limit: warn.
	_, err = tr.RecordCall(ctx, CallRecord{
		Component: "planner", Provider: "anthropic", Model: "claude-sonnet-4-5",
		InputTokens: 2_700_000,
	})
	require.NoError(t, err)
	level, err = tr.GetAlertLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, AlertWarn, level)

	// Past 95%: critical.
	_, err = tr.RecordCall(ctx, CallRecord{
		Component: "planner", Provider: "anthropic", Model: "claude-sonnet-4-5",
		InputTokens: 500_000,
	})
	require.NoError(t, err)
	level, err = tr.GetAlertLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, AlertCritical, level)

	reached, err := tr.IsLimitReached(ctx)
	require.NoError(t, err)
	assert.False(t, reached)

	// Past 100%: exceeded.
	_, err = tr.RecordCall(ctx, CallRecord{
		Component: "planner", Provider: "anthropic", Model: "claude-sonnet-4-5",
		InputTokens: 500_000,
	})
	require.NoError(t, err)
	reached, err = tr.IsLimitReached(ctx)
	require.NoError(t, err)
	assert.True(t, reached)
}

func TestAlertLevelWithoutLimit(t *testing.T) {
	tr := newTestTracker(t, 0)
	level, err := tr.GetAlertLevel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AlertNone, level)
}

func TestDailyTotalEmptyDay(t *testing.T) {
	tr := newTestTracker(t, 5)
	total, err := tr.DailyTotal(context.Background(), time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.Zero(t, total)
}

// Package cost tracks LLM spend: per-call accounting rows, a daily
// aggregate, and alert levels against the configured daily limit.
package cost

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/costdaily"
	"github.com/gearbox-dev/gearbox/pkg/config"
)

// AlertLevel grades today's spend against the daily limit.
type AlertLevel string

// Alert levels, raised at 80%, 95%, and 100% of the daily limit.
const (
	AlertNone     AlertLevel = "none"
	AlertWarn     AlertLevel = "warn"
	AlertCritical AlertLevel = "critical"
	AlertExceeded AlertLevel = "exceeded"
)

// Pricing is per-million-token USD rates for one model.
type Pricing struct {
	InputPerMTok  float64
	OutputPerMTok float64
	CachedPerMTok float64
}

// defaultPricing is the fallback for models missing from the table.
var defaultPricing = Pricing{InputPerMTok: 3.0, OutputPerMTok: 15.0, CachedPerMTok: 0.3}

// defaultPricingTable covers the commonly configured models. Callers
// can extend it through NewTracker.
var defaultPricingTable = map[string]Pricing{
	"claude-sonnet-4-5": {InputPerMTok: 3.0, OutputPerMTok: 15.0, CachedPerMTok: 0.3},
	"claude-haiku-4-5":  {InputPerMTok: 1.0, OutputPerMTok: 5.0, CachedPerMTok: 0.1},
	"gpt-4o":            {InputPerMTok: 2.5, OutputPerMTok: 10.0, CachedPerMTok: 1.25},
	"gpt-4o-mini":       {InputPerMTok: 0.15, OutputPerMTok: 0.6, CachedPerMTok: 0.075},
	"gemini-2.5-flash":  {InputPerMTok: 0.3, OutputPerMTok: 2.5, CachedPerMTok: 0.075},
	"deepseek-chat":     {InputPerMTok: 0.27, OutputPerMTok: 1.1, CachedPerMTok: 0.07},
}

// CallRecord is one completed LLM call.
type CallRecord struct {
	JobID        string
	Component    string
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
	CachedTokens int
	DurationMs   int64
}

// Tracker records calls and grades daily spend.
type Tracker struct {
	client  *ent.Client
	cfg     *config.CostConfig
	pricing map[string]Pricing
}

// NewTracker creates a cost tracker. Entries in pricing override the
// built-in table; pass nil to use it unchanged.
func NewTracker(client *ent.Client, cfg *config.CostConfig, pricing map[string]Pricing) *Tracker {
	table := make(map[string]Pricing, len(defaultPricingTable)+len(pricing))
	for model, p := range defaultPricingTable {
		table[model] = p
	}
	for model, p := range pricing {
		table[model] = p
	}
	return &Tracker{client: client, cfg: cfg, pricing: table}
}

// Price computes the USD cost of a call from the pricing table, falling
// back to the default rates for unknown models.
func (t *Tracker) Price(model string, inputTokens, outputTokens, cachedTokens int) float64 {
	p, ok := t.pricing[model]
	if !ok {
		p = defaultPricing
	}
	const mtok = 1_000_000
	return float64(inputTokens)*p.InputPerMTok/mtok +
		float64(outputTokens)*p.OutputPerMTok/mtok +
		float64(cachedTokens)*p.CachedPerMTok/mtok
}

// RecordCall persists one accounting row and folds the cost into
// today's aggregate. Returns the computed cost.
func (t *Tracker) RecordCall(ctx context.Context, rec CallRecord) (float64, error) {
	costUsd := t.Price(rec.Model, rec.InputTokens, rec.OutputTokens, rec.CachedTokens)

	create := t.client.LLMCall.Create().
		SetID(uuid.NewString()).
		SetComponent(rec.Component).
		SetProvider(rec.Provider).
		SetModel(rec.Model).
		SetInputTokens(rec.InputTokens).
		SetOutputTokens(rec.OutputTokens).
		SetCachedTokens(rec.CachedTokens).
		SetCostUsd(costUsd).
		SetDurationMs(rec.DurationMs)
	if rec.JobID != "" {
		create.SetJobID(rec.JobID)
	}
	if _, err := create.Save(ctx); err != nil {
		return 0, fmt.Errorf("recording llm call: %w", err)
	}

	day := dayKey(time.Now())
	err := t.client.CostDaily.Create().
		SetID(day).
		SetTotalUsd(costUsd).
		SetCallCount(1).
		OnConflictColumns(costdaily.FieldID).
		Update(func(u *ent.CostDailyUpsert) {
			u.AddTotalUsd(costUsd)
			u.AddCallCount(1)
		}).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("updating daily cost aggregate: %w", err)
	}

	slog.Debug("LLM call recorded",
		"component", rec.Component,
		"model", rec.Model,
		"cost_usd", costUsd,
		"job_id", rec.JobID)
	return costUsd, nil
}

// DailyTotal returns the spend recorded for the given day.
func (t *Tracker) DailyTotal(ctx context.Context, day time.Time) (float64, error) {
	row, err := t.client.CostDaily.Query().
		Where(costdaily.IDEQ(dayKey(day))).
		Only(ctx)
	if ent.IsNotFound(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("loading daily cost: %w", err)
	}
	return row.TotalUsd, nil
}

// GetAlertLevel grades today's spend: warn at 80%, critical at 95%,
// exceeded at 100% of the daily limit.
func (t *Tracker) GetAlertLevel(ctx context.Context) (AlertLevel, error) {
	if t.cfg.DailyLimitUsd <= 0 {
		return AlertNone, nil
	}
	total, err := t.DailyTotal(ctx, time.Now())
	if err != nil {
		return AlertNone, err
	}
	ratio := total / t.cfg.DailyLimitUsd
	switch {
	case ratio >= 1.0:
		return AlertExceeded, nil
	case ratio >= 0.95:
		return AlertCritical, nil
	case ratio >= 0.80:
		return AlertWarn, nil
	}
	return AlertNone, nil
}

// IsLimitReached reports whether today's spend has hit the daily limit.
func (t *Tracker) IsLimitReached(ctx context.Context) (bool, error) {
	level, err := t.GetAlertLevel(ctx)
	if err != nil {
		return false, err
	}
	return level == AlertExceeded, nil
}

// dayKey formats a UTC day as the aggregate row id.
func dayKey(ts time.Time) string {
	return ts.UTC().Format("2006-01-02")
}

package dag

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

func step(id string, deps ...string) models.Step {
	return models.Step{ID: id, Gear: "test-gear", Action: "run", RiskLevel: models.RiskLow, DependsOn: deps}
}

// orderRecorder tracks completion order across concurrent steps.
type orderRecorder struct {
	mu    sync.Mutex
	order []string
}

func (r *orderRecorder) exec(_ context.Context, s models.Step) (any, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, s.ID)
	return map[string]any{"step": s.ID}, nil
}

func (r *orderRecorder) indexOf(id string) int {
	for i, s := range r.order {
		if s == id {
			return i
		}
	}
	return -1
}

func TestDiamondOrdering(t *testing.T) {
	rec := &orderRecorder{}
	steps := []models.Step{
		step("A"),
		step("B", "A"),
		step("C", "A"),
		step("D", "B", "C"),
	}

	res, err := NewExecutor(Config{}).Execute(context.Background(), steps, rec.exec)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)

	// A first, D last; B and C in between in either order.
	assert.Equal(t, 0, rec.indexOf("A"))
	assert.Equal(t, 3, rec.indexOf("D"))

	// Results come back in original input order.
	ids := make([]string, len(res.StepResults))
	for i, r := range res.StepResults {
		ids[i] = r.StepID
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids)
}

func TestFailurePropagation(t *testing.T) {
	steps := []models.Step{
		step("A"),
		step("B", "A"),
		step("C", "B"),
		step("D"),
	}
	exec := func(_ context.Context, s models.Step) (any, error) {
		if s.ID == "A" {
			return nil, errors.New("disk on fire")
		}
		return "ok", nil
	}

	res, err := NewExecutor(Config{}).Execute(context.Background(), steps, exec)
	require.NoError(t, err)
	assert.Equal(t, StatusPartial, res.Status)

	byID := resultsByID(res)
	assert.Equal(t, models.StepFailed, byID["A"].Status)
	assert.Equal(t, models.StepSkipped, byID["B"].Status)
	assert.Contains(t, byID["B"].SkipReason, "A")
	assert.Equal(t, models.StepSkipped, byID["C"].Status)
	assert.Equal(t, models.StepCompleted, byID["D"].Status)
}

func TestAllFailedIsFailed(t *testing.T) {
	steps := []models.Step{step("A"), step("B", "A")}
	exec := func(context.Context, models.Step) (any, error) {
		return nil, errors.New("nope")
	}

	res, err := NewExecutor(Config{}).Execute(context.Background(), steps, exec)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
}

func TestConditionSkipCountsAsCompleted(t *testing.T) {
	steps := []models.Step{
		step("A"),
		{ID: "B", Gear: "test-gear", Action: "run", RiskLevel: models.RiskLow, DependsOn: []string{"A"},
			Condition: &models.Condition{Field: "A.missing", Operator: models.OpExists}},
	}
	rec := &orderRecorder{}

	res, err := NewExecutor(Config{}).Execute(context.Background(), steps, rec.exec)
	require.NoError(t, err)

	byID := resultsByID(res)
	assert.Equal(t, models.StepSkipped, byID["B"].Status)
	assert.Equal(t, "Condition evaluated to false", byID["B"].SkipReason)
	// Condition skips do not degrade the overall status.
	assert.Equal(t, StatusCompleted, res.Status)
}

func TestCycleDetected(t *testing.T) {
	steps := []models.Step{
		step("A", "B"),
		step("B", "A"),
	}
	ran := false
	exec := func(context.Context, models.Step) (any, error) {
		ran = true
		return nil, nil
	}

	_, err := NewExecutor(Config{}).Execute(context.Background(), steps, exec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cycle detected")
	assert.Contains(t, err.Error(), "A")
	assert.Contains(t, err.Error(), "B")
	assert.False(t, ran, "no step may run after a preflight failure")
}

func TestSelfDependency(t *testing.T) {
	steps := []models.Step{step("A", "A")}
	_, err := NewExecutor(Config{}).Execute(context.Background(), steps, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depends on itself")
}

func TestUnknownStepDependency(t *testing.T) {
	steps := []models.Step{step("A", "ghost")}
	_, err := NewExecutor(Config{}).Execute(context.Background(), steps, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown step")
}

func TestCircuitBreakerSkip(t *testing.T) {
	steps := []models.Step{
		{ID: "A", Gear: "flaky", Action: "run", RiskLevel: models.RiskLow},
		{ID: "B", Gear: "stable", Action: "run", RiskLevel: models.RiskLow},
	}
	cfg := Config{
		IsCircuitOpen: func(gearID string) bool { return gearID == "flaky" },
	}
	rec := &orderRecorder{}

	res, err := NewExecutor(cfg).Execute(context.Background(), steps, rec.exec)
	require.NoError(t, err)

	byID := resultsByID(res)
	assert.Equal(t, models.StepSkipped, byID["A"].Status)
	assert.Equal(t, "Circuit breaker open for plugin: flaky", byID["A"].SkipReason)
	assert.Equal(t, models.StepCompleted, byID["B"].Status)
	assert.Equal(t, StatusPartial, res.Status)
}

func TestCancellationSkipsRemainingLayers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	steps := []models.Step{
		step("A"),
		step("B", "A"),
		step("C", "B"),
	}
	exec := func(_ context.Context, s models.Step) (any, error) {
		if s.ID == "A" {
			cancel()
		}
		return "ok", nil
	}

	res, err := NewExecutor(Config{}).Execute(ctx, steps, exec)
	require.NoError(t, err)

	byID := resultsByID(res)
	assert.Equal(t, models.StepCompleted, byID["A"].Status)
	assert.Equal(t, models.StepSkipped, byID["B"].Status)
	assert.Equal(t, "Cancelled", byID["B"].SkipReason)
	assert.Equal(t, models.StepSkipped, byID["C"].Status)
}

func TestParallelGroupDispatchedTogether(t *testing.T) {
	// B would normally run a layer after A, but the shared group keeps it
	// with C in one batch.
	steps := []models.Step{
		step("A"),
		{ID: "B", Gear: "g", Action: "run", RiskLevel: models.RiskLow, DependsOn: []string{"A"}, ParallelGroup: "batch"},
		{ID: "C", Gear: "g", Action: "run", RiskLevel: models.RiskLow, ParallelGroup: "batch"},
	}

	g, err := preflight(steps)
	require.NoError(t, err)

	layerOf := make(map[string]int)
	for depth, layer := range g.layers {
		for _, idx := range layer {
			layerOf[steps[idx].ID] = depth
		}
	}
	assert.Equal(t, layerOf["B"], layerOf["C"], "group members share a layer")
	assert.Greater(t, layerOf["B"], layerOf["A"], "group layer still honors dependencies")
}

func TestMaxConcurrencyBound(t *testing.T) {
	const n = 16
	steps := make([]models.Step, n)
	for i := range steps {
		steps[i] = step(fmt.Sprintf("s%d", i))
	}

	var active, peak int64
	exec := func(context.Context, models.Step) (any, error) {
		cur := atomic.AddInt64(&active, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		atomic.AddInt64(&active, -1)
		return nil, nil
	}

	res, err := NewExecutor(Config{MaxConcurrency: 3}).Execute(context.Background(), steps, exec)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, res.Status)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}

func TestReferenceResolutionAcrossLayers(t *testing.T) {
	steps := []models.Step{
		step("fetch"),
		{ID: "use", Gear: "g", Action: "run", RiskLevel: models.RiskLow, DependsOn: []string{"fetch"},
			Parameters: map[string]any{
				"whole":  "$ref:step:fetch",
				"nested": "$ref:step:fetch.items.1",
				"bad":    "$ref:step:fetch.items.9",
			}},
	}

	var seen map[string]any
	exec := func(_ context.Context, s models.Step) (any, error) {
		if s.ID == "fetch" {
			return map[string]any{"items": []any{"a", "b"}}, nil
		}
		seen = s.Parameters
		return nil, nil
	}

	_, err := NewExecutor(Config{}).Execute(context.Background(), steps, exec)
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, map[string]any{"items": []any{"a", "b"}}, seen["whole"])
	assert.Equal(t, "b", seen["nested"])
	// Unresolvable references pass through unchanged.
	assert.Equal(t, "$ref:step:fetch.items.9", seen["bad"])
}

func resultsByID(res *Result) map[string]StepResult {
	out := make(map[string]StepResult, len(res.StepResults))
	for _, r := range res.StepResults {
		out[r.StepID] = r
	}
	return out
}

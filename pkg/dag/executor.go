// Package dag executes a plan's steps as a directed acyclic graph:
// topological layering, bounded parallelism within a layer, reference
// resolution between steps, conditions, circuit breakers, and failure
// propagation to transitive dependents.
package dag

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// DefaultMaxConcurrency bounds parallel step dispatch within a layer.
const DefaultMaxConcurrency = 4

// StepExecutor runs a single step and returns its result value.
type StepExecutor func(ctx context.Context, step models.Step) (any, error)

// Config tunes an execution run. Zero values select defaults.
type Config struct {
	MaxConcurrency int
	// IsCircuitOpen short-circuits steps whose gear's breaker is open.
	IsCircuitOpen func(gearID string) bool
	// EvaluateCondition overrides the built-in condition evaluator.
	EvaluateCondition func(cond *models.Condition, prior map[string]any) bool
}

// skipKind records why a step was skipped; it feeds the overall status.
type skipKind int

const (
	skipNone skipKind = iota
	skipByCondition
	skipByFailure
	skipByCancellation
	skipByBreaker
)

// StepResult is the per-step outcome, reported in original input order.
type StepResult struct {
	StepID     string
	Status     models.StepStatus
	DurationMs int64
	Result     any
	Error      *models.CodedError
	SkipReason string

	kind skipKind
}

// Result is the outcome of a whole DAG run.
type Result struct {
	Status      string // "completed", "partial", or "failed"
	StepResults []StepResult
	DurationMs  int64
}

// Overall run statuses.
const (
	StatusCompleted = "completed"
	StatusPartial   = "partial"
	StatusFailed    = "failed"
)

// Executor runs plans layer by layer.
type Executor struct {
	config Config
}

// NewExecutor creates an executor with the given config.
func NewExecutor(cfg Config) *Executor {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.EvaluateCondition == nil {
		cfg.EvaluateCondition = EvaluateCondition
	}
	return &Executor{config: cfg}
}

// graph is the preflighted execution plan: steps in a flat arena with
// dependencies resolved to indices.
type graph struct {
	steps      []models.Step
	index      map[string]int // step id → arena index
	dependents map[int][]int  // reverse dependency edges
	layers     [][]int
}

// Execute runs the steps through preflight and layered execution. Fatal
// preflight errors (cycle, unknown step, self-dependency) return an error
// before any step runs.
func (e *Executor) Execute(ctx context.Context, steps []models.Step, exec StepExecutor) (*Result, error) {
	start := time.Now()

	g, err := preflight(steps)
	if err != nil {
		return nil, err
	}

	results := make([]StepResult, len(steps))
	for i, s := range steps {
		results[i] = StepResult{StepID: s.ID}
	}
	// Prior results by step id, shared across layers. Guarded by mu: layer
	// siblings write concurrently.
	prior := make(map[string]any)
	var mu sync.Mutex

	sem := semaphore.NewWeighted(int64(e.config.MaxConcurrency))
	cancelled := false

	for _, layer := range g.layers {
		if ctx.Err() != nil {
			cancelled = true
		}
		if cancelled {
			for _, idx := range layer {
				if results[idx].Status == "" {
					results[idx] = skipped(steps[idx].ID, skipByCancellation, "Cancelled")
				}
			}
			continue
		}

		// Settle pre-checked steps before any sibling dispatches so the
		// results arena is not written concurrently with propagation.
		toRun := make([]int, 0, len(layer))
		for _, idx := range layer {
			if results[idx].Status != "" {
				// Already settled by failure propagation.
				continue
			}
			if res, settled := e.preCheck(g, idx, results, prior, &mu); settled {
				results[idx] = res
				if res.kind == skipByFailure {
					propagateFailure(g, idx, results, steps)
				}
				continue
			}
			toRun = append(toRun, idx)
		}

		var wg sync.WaitGroup
		for _, idx := range toRun {
			if results[idx].Status != "" {
				continue
			}
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				if err := sem.Acquire(ctx, 1); err != nil {
					mu.Lock()
					results[idx] = skipped(steps[idx].ID, skipByCancellation, "Cancelled")
					mu.Unlock()
					return
				}
				defer sem.Release(1)

				res := e.runStep(ctx, g.steps[idx], exec, prior, &mu)
				mu.Lock()
				results[idx] = res
				if res.Status == models.StepCompleted {
					prior[res.StepID] = res.Result
				}
				mu.Unlock()
			}(idx)
		}
		// The layer settles before the next one is entered.
		wg.Wait()

		for _, idx := range layer {
			if results[idx].Status == models.StepFailed {
				propagateFailure(g, idx, results, steps)
			}
		}
	}

	out := &Result{
		StepResults: results,
		DurationMs:  time.Since(start).Milliseconds(),
	}
	out.Status = overallStatus(results)
	return out, nil
}

// preCheck settles a step without dispatching it when a dependency
// failed, its condition is false, or its gear's breaker is open.
func (e *Executor) preCheck(g *graph, idx int, results []StepResult, prior map[string]any, mu *sync.Mutex) (StepResult, bool) {
	step := g.steps[idx]

	for _, dep := range step.DependsOn {
		depRes := results[g.index[dep]]
		if depRes.Status == models.StepFailed || depRes.kind == skipByFailure {
			return skipped(step.ID, skipByFailure,
				fmt.Sprintf("Skipped due to failed dependency: %s", dep)), true
		}
		if depRes.kind == skipByCancellation {
			return skipped(step.ID, skipByCancellation, "Cancelled"), true
		}
	}

	if e.config.IsCircuitOpen != nil && e.config.IsCircuitOpen(step.Gear) {
		return skipped(step.ID, skipByBreaker,
			fmt.Sprintf("Circuit breaker open for plugin: %s", step.Gear)), true
	}

	if step.Condition != nil {
		mu.Lock()
		snapshot := make(map[string]any, len(prior))
		for k, v := range prior {
			snapshot[k] = v
		}
		mu.Unlock()
		if !e.config.EvaluateCondition(step.Condition, snapshot) {
			return skipped(step.ID, skipByCondition, "Condition evaluated to false"), true
		}
	}

	return StepResult{}, false
}

// runStep resolves references and invokes the executor for one step.
func (e *Executor) runStep(ctx context.Context, step models.Step, exec StepExecutor, prior map[string]any, mu *sync.Mutex) StepResult {
	start := time.Now()

	mu.Lock()
	step.Parameters = ResolveRefs(step.Parameters, prior)
	mu.Unlock()

	value, err := exec(ctx, step)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		coded, ok := err.(*models.CodedError)
		if !ok {
			coded = models.WrapCoded(models.CodeGearExecutionFailed, "step execution failed", err)
		}
		return StepResult{
			StepID:     step.ID,
			Status:     models.StepFailed,
			DurationMs: elapsed,
			Error:      coded,
		}
	}
	return StepResult{
		StepID:     step.ID,
		Status:     models.StepCompleted,
		DurationMs: elapsed,
		Result:     value,
	}
}

// propagateFailure marks every transitive dependent of idx as skipped.
func propagateFailure(g *graph, idx int, results []StepResult, steps []models.Step) {
	failedID := steps[idx].ID
	queue := append([]int(nil), g.dependents[idx]...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if results[next].Status != "" {
			continue
		}
		results[next] = skipped(steps[next].ID, skipByFailure,
			fmt.Sprintf("Skipped due to failed dependency: %s", failedID))
		queue = append(queue, g.dependents[next]...)
	}
}

func skipped(stepID string, kind skipKind, reason string) StepResult {
	return StepResult{
		StepID:     stepID,
		Status:     models.StepSkipped,
		SkipReason: reason,
		kind:       kind,
	}
}

// overallStatus derives the run status from the settled step results.
func overallStatus(results []StepResult) string {
	allOK := true
	allBad := true
	for _, r := range results {
		switch {
		case r.Status == models.StepCompleted, r.kind == skipByCondition:
			allBad = false
		case r.Status == models.StepFailed, r.kind == skipByFailure, r.kind == skipByCancellation:
			allOK = false
		default:
			// Breaker skips count as neither fully ok nor fully bad.
			allOK = false
			allBad = false
		}
	}
	switch {
	case allOK:
		return StatusCompleted
	case allBad:
		return StatusFailed
	default:
		return StatusPartial
	}
}

// preflight validates the step set and computes the topological layering
// with Kahn's algorithm. parallelGroup members are coalesced into the
// latest layer any member lands in, so the group dispatches as one batch.
func preflight(steps []models.Step) (*graph, error) {
	g := &graph{
		steps:      steps,
		index:      make(map[string]int, len(steps)),
		dependents: make(map[int][]int),
	}
	for i, s := range steps {
		if _, dup := g.index[s.ID]; dup {
			return nil, models.NewCodedError(models.CodeValidationFailed,
				fmt.Sprintf("duplicate step id: %s", s.ID))
		}
		g.index[s.ID] = i
	}

	indegree := make([]int, len(steps))
	for i, s := range steps {
		for _, dep := range s.DependsOn {
			if dep == s.ID {
				return nil, models.NewCodedError(models.CodeSelfDependency,
					fmt.Sprintf("step %s depends on itself", s.ID))
			}
			from, ok := g.index[dep]
			if !ok {
				return nil, models.NewCodedError(models.CodeUnknownStep,
					fmt.Sprintf("step %s depends on unknown step %s", s.ID, dep))
			}
			g.dependents[from] = append(g.dependents[from], i)
			indegree[i]++
		}
	}

	// Kahn layering: drain zero-indegree nodes one wave at a time.
	layerOf := make([]int, len(steps))
	drained := make([]bool, len(steps))
	processed := 0
	frontier := make([]int, 0, len(steps))
	for i := range steps {
		if indegree[i] == 0 {
			frontier = append(frontier, i)
		}
	}
	for depth := 0; len(frontier) > 0; depth++ {
		next := make([]int, 0)
		for _, idx := range frontier {
			layerOf[idx] = depth
			drained[idx] = true
			processed++
			for _, dep := range g.dependents[idx] {
				indegree[dep]--
				if indegree[dep] == 0 {
					next = append(next, dep)
				}
			}
		}
		frontier = next
	}
	if processed != len(steps) {
		unprocessed := make([]string, 0, len(steps)-processed)
		for i, s := range steps {
			if !drained[i] {
				unprocessed = append(unprocessed, s.ID)
			}
		}
		sort.Strings(unprocessed)
		return nil, models.NewCodedError(models.CodeCycleDetected,
			fmt.Sprintf("Cycle detected: %s", strings.Join(unprocessed, ", ")))
	}

	// Coalesce parallel groups into their latest member layer.
	groupLayer := make(map[string]int)
	for i, s := range steps {
		if s.ParallelGroup == "" {
			continue
		}
		if cur, ok := groupLayer[s.ParallelGroup]; !ok || layerOf[i] > cur {
			groupLayer[s.ParallelGroup] = layerOf[i]
		}
	}
	for i, s := range steps {
		if s.ParallelGroup != "" {
			layerOf[i] = groupLayer[s.ParallelGroup]
		}
	}

	maxLayer := 0
	for _, l := range layerOf {
		if l > maxLayer {
			maxLayer = l
		}
	}
	g.layers = make([][]int, maxLayer+1)
	for i := range steps {
		g.layers[layerOf[i]] = append(g.layers[layerOf[i]], i)
	}

	slog.Debug("DAG preflight complete", "steps", len(steps), "layers", len(g.layers))
	return g, nil
}

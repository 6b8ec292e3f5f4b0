package models

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"
)

// Plan is the structured DAG of gear invocations produced by the planner.
type Plan struct {
	ID        string `json:"id"`
	JobID     string `json:"jobId"`
	Steps     []Step `json:"steps"`
	Reasoning string `json:"reasoning,omitempty"`
}

// Step is a single gear invocation inside a plan.
type Step struct {
	ID            string         `json:"id"`
	Gear          string         `json:"plugin"`
	Action        string         `json:"action"`
	Parameters    map[string]any `json:"parameters,omitempty"`
	RiskLevel     RiskLevel      `json:"riskLevel"`
	DependsOn     []string       `json:"dependsOn,omitempty"`
	ParallelGroup string         `json:"parallelGroup,omitempty"`
	Condition     *Condition     `json:"condition,omitempty"`
}

// Condition gates a step on a prior step's result.
type Condition struct {
	Field    string            `json:"field"`
	Operator ConditionOperator `json:"operator"`
	Value    any               `json:"value,omitempty"`
}

// Validate checks the structural plan invariants: unique step ids, a
// well-formed dependency set, and known enum values. Cycle detection is
// left to the DAG executor's preflight.
func (p *Plan) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("plan has no steps")
	}
	ids := make(map[string]bool, len(p.Steps))
	for _, s := range p.Steps {
		if s.ID == "" {
			return fmt.Errorf("step with empty id")
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate step id %q", s.ID)
		}
		ids[s.ID] = true
	}
	for _, s := range p.Steps {
		if s.Gear == "" || s.Action == "" {
			return fmt.Errorf("step %q missing plugin or action", s.ID)
		}
		if !s.RiskLevel.Valid() {
			return fmt.Errorf("step %q has unknown risk level %q", s.ID, s.RiskLevel)
		}
		for _, dep := range s.DependsOn {
			if dep == s.ID {
				return fmt.Errorf("step %q depends on itself", s.ID)
			}
			if !ids[dep] {
				return fmt.Errorf("step %q depends on unknown step %q", s.ID, dep)
			}
		}
		if s.Condition != nil && !s.Condition.Operator.Valid() {
			return fmt.Errorf("step %q has unknown condition operator %q", s.ID, s.Condition.Operator)
		}
	}
	return nil
}

// Hash returns a stable SHA-256 over the plan's steps. The pipeline uses
// it to avoid revalidating an unchanged plan after a revision cycle.
func (p *Plan) Hash() string {
	steps := make([]Step, len(p.Steps))
	copy(steps, p.Steps)
	sort.Slice(steps, func(i, j int) bool { return steps[i].ID < steps[j].ID })
	raw, err := json.Marshal(steps)
	if err != nil {
		// Steps are plain JSON-able data; marshal cannot fail in practice.
		return ""
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// ValidationResult is the validator's decision for a whole plan.
type ValidationResult struct {
	Verdict     Verdict          `json:"verdict"`
	OverallRisk RiskLevel        `json:"overallRisk"`
	StepResults []StepValidation `json:"stepResults"`
	PolicyNotes []string         `json:"policyNotes,omitempty"`
}

// StepValidation is the validator's decision for one step.
type StepValidation struct {
	StepID    string    `json:"stepId"`
	Verdict   Verdict   `json:"verdict"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Reasons   []string  `json:"reasons"`
}

// TokenUsage is the token accounting for one completion. The pipeline
// folds it into the job's cumulative count and books it against the
// daily spend.
type TokenUsage struct {
	InputTokens  int    `json:"inputTokens"`
	OutputTokens int    `json:"outputTokens"`
	Provider     string `json:"provider,omitempty"`
	Model        string `json:"model,omitempty"`
	DurationMs   int64  `json:"durationMs,omitempty"`
}

// Total returns input plus output tokens.
func (u *TokenUsage) Total() int {
	return u.InputTokens + u.OutputTokens
}

// PlanResponse is the planner's reply payload: either a direct textual
// answer (fast path) or a full plan.
type PlanResponse struct {
	Path            string      `json:"path"` // "fast" or "full"
	Text            string      `json:"text,omitempty"`
	Plan            *Plan       `json:"plan,omitempty"`
	RequiresReroute bool        `json:"requiresReroute,omitempty"`
	Usage           *TokenUsage `json:"usage,omitempty"`
}

// JobResult is persisted on the job row at terminal transition.
type JobResult struct {
	Path        string           `json:"path"` // "fast" or "full"
	Text        string           `json:"text,omitempty"`
	Status      string           `json:"status,omitempty"` // executor status on full path
	StepResults []StepResultInfo `json:"stepResults,omitempty"`
	DurationMs  int64            `json:"durationMs,omitempty"`
}

// StepResultInfo is the per-step outcome recorded on the job result.
type StepResultInfo struct {
	StepID     string      `json:"stepId"`
	Status     StepStatus  `json:"status"`
	DurationMs int64       `json:"durationMs"`
	Result     any         `json:"result,omitempty"`
	Error      *CodedError `json:"error,omitempty"`
}

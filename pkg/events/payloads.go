package events

import (
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// BasePayload carries the fields common to every event.
type BasePayload struct {
	Type      string `json:"type"`
	JobID     string `json:"job_id"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}

// JobStatusPayload announces a job status transition.
type JobStatusPayload struct {
	BasePayload
	Status models.JobStatus   `json:"status"`
	Error  *models.CodedError `json:"error,omitempty"`
}

// PlanCreatedPayload announces that the planner produced a plan.
type PlanCreatedPayload struct {
	BasePayload
	PlanID    string `json:"plan_id"`
	StepCount int    `json:"step_count"`
	Path      string `json:"path"` // "fast" or "full"
}

// ValidationVerdictPayload announces the validator's decision.
type ValidationVerdictPayload struct {
	BasePayload
	Verdict     models.Verdict   `json:"verdict"`
	OverallRisk models.RiskLevel `json:"overall_risk"`
}

// StepProgressPayload announces one DAG step settling.
type StepProgressPayload struct {
	BasePayload
	StepID     string            `json:"step_id"`
	Status     models.StepStatus `json:"status"`
	SkipReason string            `json:"skip_reason,omitempty"`
	DurationMs int64             `json:"duration_ms"`
}

// SandboxLogPayload relays a child process log or progress line.
type SandboxLogPayload struct {
	BasePayload
	GearID  string  `json:"gear_id"`
	StepID  string  `json:"step_id,omitempty"`
	Message string  `json:"message,omitempty"`
	Percent float64 `json:"percent,omitempty"`
}

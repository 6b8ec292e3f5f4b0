// Package models holds the domain types shared across the orchestration
// core: jobs, plans, validation verdicts, gear manifests, and the closed
// enumerations used on the wire.
package models

import "fmt"

// JobStatus is the lifecycle state of a job.
type JobStatus string

// Job status constants.
const (
	JobPending          JobStatus = "pending"
	JobPlanning         JobStatus = "planning"
	JobValidating       JobStatus = "validating"
	JobAwaitingApproval JobStatus = "awaiting_approval"
	JobExecuting        JobStatus = "executing"
	JobCompleted        JobStatus = "completed"
	JobFailed           JobStatus = "failed"
	JobCancelled        JobStatus = "cancelled"
)

// Terminal reports whether the status is a terminal state.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobCompleted, JobFailed, JobCancelled:
		return true
	}
	return false
}

// Valid reports whether the status is a known value.
func (s JobStatus) Valid() bool {
	switch s {
	case JobPending, JobPlanning, JobValidating, JobAwaitingApproval,
		JobExecuting, JobCompleted, JobFailed, JobCancelled:
		return true
	}
	return false
}

// jobTransitions is the permitted state machine. Every transition not
// listed here is refused by the queue.
var jobTransitions = map[JobStatus][]JobStatus{
	JobPending:          {JobPlanning, JobCancelled},
	JobPlanning:         {JobValidating, JobCompleted, JobFailed, JobCancelled},
	JobValidating:       {JobPlanning, JobAwaitingApproval, JobExecuting, JobFailed, JobCancelled},
	JobAwaitingApproval: {JobExecuting, JobFailed, JobCancelled},
	JobExecuting:        {JobCompleted, JobFailed, JobCancelled},
}

// CanTransition reports whether from → to is a legal job status transition.
func CanTransition(from, to JobStatus) bool {
	for _, next := range jobTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Priority orders jobs within the queue.
type Priority string

// Priority constants, highest first.
const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

// Valid reports whether the priority is a known value.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Rank returns a sortable weight; higher runs first.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 2
	case PriorityNormal:
		return 1
	default:
		return 0
	}
}

// JobSource identifies who enqueued a job.
type JobSource string

// Job source constants.
const (
	SourceUser     JobSource = "user"
	SourceSchedule JobSource = "schedule"
	SourceGear     JobSource = "plugin"
	SourceSystem   JobSource = "system"
)

// Valid reports whether the source is a known value.
func (s JobSource) Valid() bool {
	switch s {
	case SourceUser, SourceSchedule, SourceGear, SourceSystem:
		return true
	}
	return false
}

// StepStatus is the outcome of a single DAG step.
type StepStatus string

// Step status constants.
const (
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
	StepSkipped   StepStatus = "skipped"
)

// RiskLevel classifies a step's blast radius.
type RiskLevel string

// Risk level constants, lowest first.
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Valid reports whether the risk level is a known value.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// Rank returns a sortable weight for computing the overall plan risk.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskCritical:
		return 3
	case RiskHigh:
		return 2
	case RiskMedium:
		return 1
	default:
		return 0
	}
}

// MaxRisk returns the riskier of a and b.
func MaxRisk(a, b RiskLevel) RiskLevel {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// Verdict is the validator's decision for a plan or a step.
type Verdict string

// Verdict constants.
const (
	VerdictApproved          Verdict = "approved"
	VerdictNeedsUserApproval Verdict = "needs_user_approval"
	VerdictRejected          Verdict = "rejected"
	VerdictNeedsRevision     Verdict = "needs_revision"
)

// Valid reports whether the verdict is a known value.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictApproved, VerdictNeedsUserApproval, VerdictRejected, VerdictNeedsRevision:
		return true
	}
	return false
}

// MessageType is the closed set of envelope types the router dispatches.
type MessageType string

// Message type constants.
const (
	MsgPlanRequest      MessageType = "plan.request"
	MsgPlanResponse     MessageType = "plan.response"
	MsgValidateRequest  MessageType = "validate.request"
	MsgValidateResponse MessageType = "validate.response"
	MsgExecuteRequest   MessageType = "execute.request"
	MsgExecuteResponse  MessageType = "execute.response"
	MsgStatusUpdate     MessageType = "status.update"
	MsgError            MessageType = "error"
)

// Valid reports whether the message type is a known value.
func (t MessageType) Valid() bool {
	switch t {
	case MsgPlanRequest, MsgPlanResponse, MsgValidateRequest, MsgValidateResponse,
		MsgExecuteRequest, MsgExecuteResponse, MsgStatusUpdate, MsgError:
		return true
	}
	return false
}

// MemoryPressureLevel is the watchdog's current assessment.
type MemoryPressureLevel string

// Memory pressure constants, ordered by severity.
const (
	PressureNormal    MemoryPressureLevel = "normal"
	PressureWarn      MemoryPressureLevel = "warn"
	PressurePause     MemoryPressureLevel = "pause"
	PressureReject    MemoryPressureLevel = "reject"
	PressureEmergency MemoryPressureLevel = "emergency"
)

// Severity returns a sortable weight; higher is worse.
func (l MemoryPressureLevel) Severity() int {
	switch l {
	case PressureEmergency:
		return 4
	case PressureReject:
		return 3
	case PressurePause:
		return 2
	case PressureWarn:
		return 1
	default:
		return 0
	}
}

// ConditionOperator is the comparison applied by a step condition.
type ConditionOperator string

// Condition operator constants.
const (
	OpEq        ConditionOperator = "eq"
	OpNe        ConditionOperator = "ne"
	OpGt        ConditionOperator = "gt"
	OpGte       ConditionOperator = "gte"
	OpLt        ConditionOperator = "lt"
	OpLte       ConditionOperator = "lte"
	OpExists    ConditionOperator = "exists"
	OpNotExists ConditionOperator = "not_exists"
	OpIn        ConditionOperator = "in"
	OpNotIn     ConditionOperator = "not_in"
)

// Valid reports whether the operator is a known value.
func (o ConditionOperator) Valid() bool {
	switch o {
	case OpEq, OpNe, OpGt, OpGte, OpLt, OpLte, OpExists, OpNotExists, OpIn, OpNotIn:
		return true
	}
	return false
}

// ParseJobStatus converts a string into a JobStatus or fails.
func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("unknown job status %q", s)
	}
	return st, nil
}

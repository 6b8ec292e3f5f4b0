// Package queue provides the durable priority job queue and its worker
// pool: leasing with FOR UPDATE SKIP LOCKED, heartbeats, compare-and-set
// status transitions, dedup, and expired-lease recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no leasable jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrBackpressure indicates leasing is refused due to memory pressure.
	ErrBackpressure = errors.New("leasing paused by memory pressure")

	// ErrInvalidTransition indicates the requested status change is not in
	// the job state machine, or the compare-and-set lost a race.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound indicates the job id does not exist.
	ErrNotFound = errors.New("job not found")
)

// JobExecutor processes a leased job through the pipeline.
//
// The executor owns the ENTIRE job lifecycle internally: it drives the
// status transitions (planning, validating, executing, ...) and writes
// intermediate state progressively. The worker only handles claiming,
// heartbeat, terminal status, and lease release.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.Job) *ExecutionResult
}

// ExecutionResult is the terminal (or suspension) outcome of one
// processing pass over a job.
type ExecutionResult struct {
	// Status is the job status after processing. A terminal status ends
	// the job; JobAwaitingApproval suspends it with the lease released so
	// another worker can resume it after the approval signal.
	Status models.JobStatus

	// Result carries the job outcome when Status is completed.
	Result *models.JobResult

	// Error carries the failure when Status is failed or cancelled.
	Error *models.CodedError
}

// EnqueueInput is the caller-facing shape for creating a job.
type EnqueueInput struct {
	ConversationID  string
	Content         map[string]interface{}
	Priority        models.Priority
	Source          models.JobSource
	SourceMessageID string
	DedupKey        string
	Metadata        map[string]interface{}
}

// StatusChange is delivered to queue subscribers after a transition
// commits.
type StatusChange struct {
	JobID string
	From  models.JobStatus
	To    models.JobStatus
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool                       `json:"is_healthy"`
	DBReachable      bool                       `json:"db_reachable"`
	DBError          string                     `json:"db_error,omitempty"`
	NodeID           string                     `json:"node_id"`
	ActiveWorkers    int                        `json:"active_workers"`
	TotalWorkers     int                        `json:"total_workers"`
	ActiveJobs       int                        `json:"active_jobs"`
	MaxConcurrent    int                        `json:"max_concurrent"`
	QueueDepth       int                        `json:"queue_depth"`
	PressureLevel    models.MemoryPressureLevel `json:"pressure_level"`
	WorkerStats      []WorkerHealth             `json:"worker_stats"`
	LastRecoveryScan time.Time                  `json:"last_recovery_scan"`
	LeasesRecovered  int                        `json:"leases_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}

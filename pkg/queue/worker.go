package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes jobs.
type Worker struct {
	id         string
	nodeID     string
	service    *Service
	cfg        *config.QueueConfig
	jobTimeout time.Duration
	executor   JobExecutor
	pool       JobRegistry
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// JobRegistry is the subset of WorkerPool used by Worker for job
// registration and backpressure.
type JobRegistry interface {
	RegisterJob(jobID string, cancel context.CancelFunc)
	UnregisterJob(jobID string)
	LeasingAllowed() bool
}

// NewWorker creates a new queue worker. jobTimeout is the
// enqueue-to-terminal cap applied to each processing pass.
func NewWorker(id, nodeID string, service *Service, cfg *config.QueueConfig, jobTimeout time.Duration, executor JobExecutor, pool JobRegistry) *Worker {
	return &Worker{
		id:           id,
		nodeID:       nodeID,
		service:      service,
		cfg:          cfg,
		jobTimeout:   jobTimeout,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "node_id", w.nodeID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) || errors.Is(err, ErrAtCapacity) || errors.Is(err, ErrBackpressure) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing job", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks backpressure and capacity, leases a job, and
// processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Memory backpressure: refuse new leases at reject/emergency.
	if !w.pool.LeasingAllowed() {
		return ErrBackpressure
	}

	// 2. Check global capacity (best-effort; racy with concurrent workers
	//    but bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.service.ActiveCount(ctx)
	if err != nil {
		return fmt.Errorf("checking active jobs: %w", err)
	}
	if activeCount >= w.cfg.MaxConcurrentJobs {
		return ErrAtCapacity
	}

	// 3. Lease next job
	j, err := w.service.Lease(ctx, w.id)
	if err != nil {
		return err
	}

	log := slog.With("job_id", j.ID, "worker_id", w.id)
	log.Info("Job leased", "status", j.Status, "attempts", j.Attempts)

	w.setStatus(WorkerStatusWorking, j.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 4. Create job context capped at the enqueue-to-terminal timeout
	jobCtx, cancelJob := context.WithTimeout(ctx, w.jobTimeout)
	defer cancelJob()

	// 5. Register cancel function for API-triggered cancellation
	w.pool.RegisterJob(j.ID, cancelJob)
	defer w.pool.UnregisterJob(j.ID)

	// 6. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, j.ID)

	// 7. Execute the pipeline
	result := w.executor.Execute(jobCtx, j)

	// 7a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		result = w.synthesizeResult(jobCtx)
	}

	// 8. Stop heartbeat before finalizing
	cancelHeartbeat()

	// 9. Finalize (use background context — job ctx may be cancelled)
	if err := w.finalize(context.Background(), j.ID, result); err != nil {
		log.Error("Failed to finalize job", "error", err)
		return err
	}

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", result.Status)
	return nil
}

// synthesizeResult builds a terminal result when the executor returned
// nil, classifying by the context state.
func (w *Worker) synthesizeResult(jobCtx context.Context) *ExecutionResult {
	switch {
	case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
		return &ExecutionResult{
			Status: models.JobFailed,
			Error: models.NewCodedError(models.CodeJobTimeout,
				fmt.Sprintf("job timed out after %v", w.jobTimeout)),
		}
	case errors.Is(jobCtx.Err(), context.Canceled):
		return &ExecutionResult{
			Status: models.JobCancelled,
			Error:  models.NewCodedError(models.CodeJobCancelled, "job cancelled"),
		}
	default:
		return &ExecutionResult{
			Status: models.JobFailed,
			Error:  models.NewCodedError(models.CodeHandlerFailed, "executor returned nil result"),
		}
	}
}

// finalize applies the execution result to the queue row.
func (w *Worker) finalize(ctx context.Context, jobID string, result *ExecutionResult) error {
	switch result.Status {
	case models.JobCompleted:
		return w.service.Complete(ctx, jobID, result.Result)
	case models.JobFailed:
		return w.service.Fail(ctx, jobID, result.Error)
	case models.JobCancelled:
		err := w.service.Cancel(ctx, jobID)
		if errors.Is(err, ErrInvalidTransition) {
			// Already cancelled through the API path.
			return nil
		}
		return err
	case models.JobAwaitingApproval:
		// Suspended: the pipeline already transitioned the status, which
		// released the lease. Nothing to finalize.
		return nil
	default:
		return fmt.Errorf("executor returned non-terminal status %s", result.Status)
	}
}

// runHeartbeat periodically extends the lease. Heartbeats fire at a
// third of the lease duration.
func (w *Worker) runHeartbeat(ctx context.Context, jobID string) {
	ticker := time.NewTicker(w.cfg.LeaseDuration / 3)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.service.Heartbeat(ctx, jobID, w.id); err != nil {
				slog.Warn("Heartbeat failed", "job_id", jobID, "error", err)
				if errors.Is(err, ErrNotFound) {
					// Lease was lost or released; stop heartbeating.
					return
				}
			}
		}
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := w.cfg.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}

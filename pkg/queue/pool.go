package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// WorkerPool manages a pool of queue workers plus the expired-lease
// recovery scan.
type WorkerPool struct {
	nodeID     string
	service    *Service
	cfg        *config.QueueConfig
	jobTimeout time.Duration
	executor   JobExecutor
	workers    []*Worker
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup

	// Job cancel registry: job_id -> cancel function
	activeJobs map[string]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	// Memory backpressure signal, updated by the watchdog.
	pressure   models.MemoryPressureLevel
	pressureMu sync.RWMutex

	// Recovery scan state
	recovery recoveryState
}

// NewWorkerPool creates a new worker pool. jobTimeout is the
// enqueue-to-terminal cap applied to every processing pass.
func NewWorkerPool(nodeID string, service *Service, cfg *config.QueueConfig, jobTimeout time.Duration, executor JobExecutor) *WorkerPool {
	return &WorkerPool{
		nodeID:     nodeID,
		service:    service,
		cfg:        cfg,
		jobTimeout: jobTimeout,
		executor:   executor,
		workers:    make([]*Worker, 0, cfg.WorkerCount),
		stopCh:     make(chan struct{}),
		activeJobs: make(map[string]context.CancelFunc),
		pressure:   models.PressureNormal,
	}
}

// Start spawns worker goroutines and the recovery background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "node_id", p.nodeID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "node_id", p.nodeID, "worker_count", p.cfg.WorkerCount)

	for i := 0; i < p.cfg.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.nodeID, i)
		worker := NewWorker(workerID, p.nodeID, p.service, p.cfg, p.jobTimeout, p.executor, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runRecovery(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop drains the pool: workers stop leasing and finish their current
// jobs, bounded by GracefulShutdownTimeout; after that in-flight job
// contexts are cancelled.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveJobIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete",
			"count", len(active),
			"job_ids", active)
	}

	done := make(chan struct{})
	go func() {
		for _, worker := range p.workers {
			worker.Stop()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.cfg.GracefulShutdownTimeout):
		slog.Warn("Graceful shutdown timeout reached, cancelling in-flight jobs",
			"timeout", p.cfg.GracefulShutdownTimeout)
		p.cancelAllJobs()
		<-done
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterJob stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterJob(jobID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeJobs[jobID] = cancel
}

// UnregisterJob removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterJob(jobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeJobs, jobID)
}

// CancelJob triggers context cancellation for a job processing on this
// node. Returns true if the job was found and cancelled.
func (p *WorkerPool) CancelJob(jobID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeJobs[jobID]; ok {
		cancel()
		return true
	}
	return false
}

// LeasingAllowed reports whether new leases may be taken given the
// current memory pressure.
func (p *WorkerPool) LeasingAllowed() bool {
	p.pressureMu.RLock()
	defer p.pressureMu.RUnlock()
	return p.pressure.Severity() < models.PressureReject.Severity()
}

// SetPressure updates the memory pressure signal. At emergency,
// in-flight jobs are cancelled.
func (p *WorkerPool) SetPressure(level models.MemoryPressureLevel) {
	p.pressureMu.Lock()
	previous := p.pressure
	p.pressure = level
	p.pressureMu.Unlock()

	if level == previous {
		return
	}
	slog.Info("Memory pressure changed", "from", previous, "to", level)

	if level == models.PressureEmergency {
		cancelled := p.cancelAllJobs()
		if cancelled > 0 {
			slog.Warn("Emergency memory pressure: cancelled in-flight jobs", "count", cancelled)
		}
	}
}

// cancelAllJobs cancels every in-flight job context and reports how
// many were cancelled.
func (p *WorkerPool) cancelAllJobs() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, cancel := range p.activeJobs {
		cancel()
	}
	return len(p.activeJobs)
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.service.Depth(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"node_id", p.nodeID, "error", errQ)
	}

	activeJobs, errA := p.service.ActiveCount(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check",
			"node_id", p.nodeID, "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeJobs <= p.cfg.MaxConcurrentJobs && dbHealthy

	p.recovery.mu.Lock()
	lastScan := p.recovery.lastScan
	recovered := p.recovery.recovered
	p.recovery.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active jobs query failed: %v", errA)
		}
	}

	p.pressureMu.RLock()
	pressure := p.pressure
	p.pressureMu.RUnlock()

	return &PoolHealth{
		IsHealthy:        isHealthy,
		DBReachable:      dbHealthy,
		DBError:          dbError,
		NodeID:           p.nodeID,
		ActiveWorkers:    activeWorkers,
		TotalWorkers:     len(p.workers),
		ActiveJobs:       activeJobs,
		MaxConcurrent:    p.cfg.MaxConcurrentJobs,
		QueueDepth:       queueDepth,
		PressureLevel:    pressure,
		WorkerStats:      workerStats,
		LastRecoveryScan: lastScan,
		LeasesRecovered:  recovered,
	}
}

// getActiveJobIDs returns IDs of currently processing jobs (for logging).
func (p *WorkerPool) getActiveJobIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	jobs := make([]string, 0, len(p.activeJobs))
	for id := range p.activeJobs {
		jobs = append(jobs, id)
	}
	return jobs
}

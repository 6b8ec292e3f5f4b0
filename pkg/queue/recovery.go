package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// recoveryState tracks recovery scan metrics (thread-safe).
type recoveryState struct {
	mu        sync.Mutex
	lastScan  time.Time
	recovered int
}

// runRecovery periodically reclaims jobs with expired leases.
// All nodes run this independently — operations are idempotent.
func (p *WorkerPool) runRecovery(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.RecoveryInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.recoverExpiredLeases(ctx); err != nil {
				slog.Error("Lease recovery failed", "error", err)
			}
			if err := p.recoverExpiredApprovals(ctx); err != nil {
				slog.Error("Approval expiry scan failed", "error", err)
			}
		}
	}
}

// recoverExpiredLeases finds non-terminal jobs whose lease has expired
// and moves them back to pending with attempts+1, or fails them with
// MAX_ATTEMPTS_EXCEEDED once the cap is reached.
func (p *WorkerPool) recoverExpiredLeases(ctx context.Context) error {
	expired, err := p.service.client.Job.Query().
		Where(
			job.LeaseOwnerNotNil(),
			job.LeaseExpiresAtLT(time.Now()),
			job.StatusNotIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query expired leases: %w", err)
	}

	if len(expired) == 0 {
		p.recovery.mu.Lock()
		p.recovery.lastScan = time.Now()
		p.recovery.mu.Unlock()
		return nil
	}

	slog.Warn("Detected expired leases", "count", len(expired))

	recovered := 0
	for _, j := range expired {
		if err := p.recoverJob(ctx, j); err != nil {
			slog.Error("Failed to recover job", "job_id", j.ID, "error", err)
			continue
		}
		recovered++
	}

	p.recovery.mu.Lock()
	p.recovery.lastScan = time.Now()
	p.recovery.recovered += recovered
	p.recovery.mu.Unlock()

	return nil
}

// recoverExpiredApprovals fails suspended jobs whose approval nonce has
// expired. Suspended jobs hold no lease, so the lease scan never sees
// them. The nonce expiry lives in metadata; the candidate set is small
// enough to inspect row by row.
func (p *WorkerPool) recoverExpiredApprovals(ctx context.Context) error {
	suspended, err := p.service.client.Job.Query().
		Where(job.StatusEQ(job.StatusAwaitingApproval)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query suspended jobs: %w", err)
	}

	now := time.Now()
	for _, j := range suspended {
		raw, _ := j.Metadata["approvalNonceExpiresAt"].(string)
		if raw == "" {
			continue
		}
		expiresAt, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			slog.Error("Malformed approval expiry on suspended job",
				"job_id", j.ID, "value", raw)
			continue
		}
		if expiresAt.After(now) {
			continue
		}
		jobErr := models.NewCodedError(models.CodeApprovalTimeout,
			"approval request expired without a decision")
		if err := p.service.Fail(ctx, j.ID, jobErr); err != nil {
			slog.Error("Failed to expire suspended job", "job_id", j.ID, "error", err)
			continue
		}
		slog.Warn("Suspended job expired waiting for approval",
			"job_id", j.ID, "expired_at", expiresAt)
	}
	return nil
}

// recoverJob reclaims one expired-lease job. The update is guarded on
// the observed lease owner so a live worker heartbeating concurrently
// cannot be stomped.
func (p *WorkerPool) recoverJob(ctx context.Context, j *ent.Job) error {
	owner := ""
	if j.LeaseOwner != nil {
		owner = *j.LeaseOwner
	}
	log := slog.With("job_id", j.ID, "old_owner", owner, "attempts", j.Attempts)

	if j.Attempts+1 >= p.cfg.MaxStepAttempts {
		jobErr := models.NewCodedError(models.CodeMaxAttemptsExceeded,
			fmt.Sprintf("lease expired %d times, giving up", j.Attempts+1))
		n, err := p.service.client.Job.Update().
			Where(
				job.IDEQ(j.ID),
				job.LeaseOwnerEQ(owner),
				job.LeaseExpiresAtLT(time.Now()),
			).
			SetStatus(job.StatusFailed).
			SetError(jobErr).
			AddAttempts(1).
			ClearLeaseOwner().
			ClearLeaseExpiresAt().
			ClearLastHeartbeatAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failing exhausted job: %w", err)
		}
		if n > 0 {
			p.service.notify(StatusChange{JobID: j.ID, From: models.JobStatus(j.Status), To: models.JobFailed})
			p.service.publishStatus(j.ID, models.JobFailed, jobErr)
			log.Warn("Expired job failed after max attempts")
		}
		return nil
	}

	n, err := p.service.client.Job.Update().
		Where(
			job.IDEQ(j.ID),
			job.LeaseOwnerEQ(owner),
			job.LeaseExpiresAtLT(time.Now()),
		).
		SetStatus(job.StatusPending).
		AddAttempts(1).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("reclaiming expired job: %w", err)
	}
	if n > 0 {
		p.service.notify(StatusChange{JobID: j.ID, From: models.JobStatus(j.Status), To: models.JobPending})
		p.service.publishStatus(j.ID, models.JobPending, nil)
		log.Warn("Expired lease reclaimed, job back to pending")
	}
	return nil
}

// RecoverStartupLeases performs a one-time cleanup of jobs leased by
// this node before a previous crash. Called once during startup, before
// the worker pool begins processing.
func RecoverStartupLeases(ctx context.Context, service *Service, nodeID string) error {
	stale, err := service.client.Job.Query().
		Where(
			job.LeaseOwnerNotNil(),
			job.LeaseOwnerHasPrefix(nodeID+"-worker-"),
			job.StatusNotIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup leases: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	slog.Warn("Found stale leases from previous run",
		"node_id", nodeID, "count", len(stale))

	for _, j := range stale {
		err := j.Update().
			SetStatus(job.StatusPending).
			AddAttempts(1).
			ClearLeaseOwner().
			ClearLeaseExpiresAt().
			ClearLastHeartbeatAt().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to reclaim startup lease", "job_id", j.ID, "error", err)
			continue
		}
		slog.Info("Startup lease reclaimed", "job_id", j.ID)
	}

	return nil
}

// Package retention provides the background data-retention sweep.
package retention

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/ent/llmcall"
	"github.com/gearbox-dev/gearbox/ent/standingrule"
	"github.com/gearbox-dev/gearbox/pkg/config"
)

// Service periodically enforces retention policies:
//   - Deletes standing rules that expired past the grace period
//   - Prunes per-call LLM accounting rows past their retention window
//   - Scrubs transient metadata from old terminal jobs
//
// Jobs themselves are never deleted; terminal rows stay for audit. All
// operations are idempotent. The sweep pauses under memory pressure.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client

	paused atomic.Bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention service.
func NewService(cfg *config.RetentionConfig, client *ent.Client) *Service {
	return &Service{config: cfg, client: client}
}

// SetPaused suspends or resumes sweeping. The watchdog pauses the
// sweep at pause pressure and above.
func (s *Service) SetPaused(paused bool) {
	if s.paused.Swap(paused) != paused {
		slog.Info("Retention sweep pause state changed", "paused", paused)
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Retention service started",
		"sweep_interval", s.config.SweepInterval,
		"expired_rule_grace", s.config.ExpiredRuleGrace,
		"call_retention_days", s.config.CallRetentionDays)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.paused.Load() {
				continue
			}
			s.Sweep(ctx)
		}
	}
}

// Sweep runs all retention passes once.
func (s *Service) Sweep(ctx context.Context) {
	s.deleteExpiredRules(ctx)
	s.pruneCallRows(ctx)
	s.scrubTerminalJobs(ctx)
}

func (s *Service) deleteExpiredRules(ctx context.Context) {
	if s.config.ExpiredRuleGrace <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.ExpiredRuleGrace)
	count, err := s.client.StandingRule.Delete().
		Where(standingrule.ExpiresAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: expired rule cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted expired standing rules", "count", count)
	}
}

func (s *Service) pruneCallRows(ctx context.Context) {
	if s.config.CallRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.CallRetentionDays)
	count, err := s.client.LLMCall.Delete().
		Where(llmcall.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		slog.Error("Retention: llm call pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned llm call rows", "count", count)
	}
}

// scrubTerminalJobs drops transient metadata keys from old terminal
// jobs. The job rows and their plan, validation, and result persist.
func (s *Service) scrubTerminalJobs(ctx context.Context) {
	if s.config.JobScrubAfter <= 0 {
		return
	}
	cutoff := time.Now().Add(-s.config.JobScrubAfter)
	rows, err := s.client.Job.Query().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed, job.StatusCancelled),
			job.UpdatedAtLT(cutoff),
		).
		Limit(500).
		All(ctx)
	if err != nil {
		slog.Error("Retention: terminal job query failed", "error", err)
		return
	}

	scrubbed := 0
	for _, row := range rows {
		metadata := row.Metadata
		if metadata == nil {
			continue
		}
		changed := false
		for _, key := range []string{"approvalNonce", "approvalNonceExpiresAt", "content"} {
			if _, ok := metadata[key]; ok {
				delete(metadata, key)
				changed = true
			}
		}
		if !changed {
			continue
		}
		if _, err := row.Update().SetMetadata(metadata).Save(ctx); err != nil {
			slog.Error("Retention: job metadata scrub failed", "job_id", row.ID, "error", err)
			continue
		}
		scrubbed++
	}
	if scrubbed > 0 {
		slog.Info("Retention: scrubbed terminal job metadata", "count", scrubbed)
	}
}

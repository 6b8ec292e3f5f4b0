package config

import "fmt"

// Validate performs range validation over the merged configuration.
// Fail-fast: stops at the first error.
func Validate(cfg *Config) error {
	if err := validateQueue(cfg.Queue); err != nil {
		return fmt.Errorf("queue config: %w", err)
	}
	if err := validatePipeline(cfg.Pipeline); err != nil {
		return fmt.Errorf("pipeline config: %w", err)
	}
	if err := validateSandbox(cfg.Sandbox); err != nil {
		return fmt.Errorf("sandbox config: %w", err)
	}
	if err := validateMemory(cfg.Memory); err != nil {
		return fmt.Errorf("memory config: %w", err)
	}
	if cfg.Router.MaxMessageSizeBytes <= 0 {
		return fmt.Errorf("router config: max_message_size_bytes must be positive")
	}
	if cfg.Cost.DailyLimitUsd <= 0 {
		return fmt.Errorf("cost config: daily_limit_usd must be positive")
	}
	if cfg.Retention.SweepInterval <= 0 {
		return fmt.Errorf("retention config: sweep_interval must be positive")
	}
	if cfg.Server.ListenAddr == "" {
		return fmt.Errorf("server config: listen_addr must be set")
	}
	return nil
}

func validateQueue(q *QueueConfig) error {
	switch {
	case q.WorkerCount < 1:
		return fmt.Errorf("worker_count must be at least 1")
	case q.MaxConcurrentJobs < q.WorkerCount:
		return fmt.Errorf("max_concurrent_jobs (%d) must be >= worker_count (%d)",
			q.MaxConcurrentJobs, q.WorkerCount)
	case q.LeaseDuration <= 0:
		return fmt.Errorf("lease_duration must be positive")
	case q.MaxStepAttempts < 1:
		return fmt.Errorf("max_step_attempts must be at least 1")
	}
	return nil
}

func validatePipeline(p *PipelineConfig) error {
	switch {
	case p.MaxRevisionCount < 0:
		return fmt.Errorf("max_revision_count must not be negative")
	case p.MaxConcurrency < 1:
		return fmt.Errorf("max_concurrency must be at least 1")
	case p.JobTimeout <= 0:
		return fmt.Errorf("job_timeout must be positive")
	}
	return nil
}

func validateSandbox(s *SandboxConfig) error {
	switch s.SigningPolicy {
	case "require", "warn", "allow":
	default:
		return fmt.Errorf("signing_policy must be one of require, warn, allow (got %q)", s.SigningPolicy)
	}
	if s.CircuitBreakerFailures < 1 {
		return fmt.Errorf("circuit_breaker_failures must be at least 1")
	}
	if s.WorkspaceRoot == "" {
		return fmt.Errorf("workspace_root must be set")
	}
	return nil
}

func validateMemory(m *MemoryConfig) error {
	if m.WarnPct <= 0 || m.PausePct <= m.WarnPct || m.RejectPct <= m.PausePct || m.RejectPct >= 100 {
		return fmt.Errorf("memory thresholds must satisfy 0 < warn < pause < reject < 100 (got %d/%d/%d)",
			m.WarnPct, m.PausePct, m.RejectPct)
	}
	return nil
}

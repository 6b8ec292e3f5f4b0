package config

import "time"

// QueueConfig contains queue and worker pool configuration. These values
// control how jobs are polled, leased, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentJobs is the global limit of jobs being processed at
	// once. Enforced by a database COUNT(*) check before leasing.
	MaxConcurrentJobs int `yaml:"max_concurrent_jobs"`

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// LeaseDuration is how long a claim holds without a heartbeat.
	// Heartbeats fire every LeaseDuration/3.
	LeaseDuration time.Duration `yaml:"lease_duration"`

	// DedupWindow is how long an idempotency key suppresses re-enqueue.
	DedupWindow time.Duration `yaml:"dedup_window"`

	// MaxStepAttempts caps lease-recovery retries before a job fails
	// with MAX_ATTEMPTS_EXCEEDED.
	MaxStepAttempts int `yaml:"max_step_attempts"`

	// GracefulShutdownTimeout is the max time to wait for in-flight jobs
	// during shutdown before their contexts are cancelled.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// RecoveryInterval is how often the expired-lease scan runs.
	RecoveryInterval time.Duration `yaml:"recovery_interval"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             4,
		MaxConcurrentJobs:       8,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		LeaseDuration:           30 * time.Second,
		DedupWindow:             60 * time.Second,
		MaxStepAttempts:         3,
		GracefulShutdownTimeout: 30 * time.Second,
		RecoveryInterval:        1 * time.Minute,
	}
}

// Package config defines the runtime configuration surface: recognized
// options, defaults, and validation. Unknown YAML keys are rejected at
// load time.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the orchestration core.
type Config struct {
	Server    *ServerConfig    `yaml:"server"`
	Queue     *QueueConfig     `yaml:"queue"`
	Pipeline  *PipelineConfig  `yaml:"pipeline"`
	Router    *RouterConfig    `yaml:"router"`
	Sandbox   *SandboxConfig   `yaml:"sandbox"`
	Memory    *MemoryConfig    `yaml:"memory"`
	Policy    *PolicyConfig    `yaml:"policy"`
	Cost      *CostConfig      `yaml:"cost"`
	Retention *RetentionConfig `yaml:"retention"`
}

// ServerConfig tunes the HTTP API server.
type ServerConfig struct {
	// ListenAddr is the host:port the API binds to. The runtime is
	// local-first; the default binds loopback only.
	ListenAddr string `yaml:"listen_addr"`
	// ShutdownTimeout bounds the graceful drain on shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	// WsWriteTimeout bounds one WebSocket send.
	WsWriteTimeout time.Duration `yaml:"ws_write_timeout"`
}

// PipelineConfig tunes the per-job state machine.
type PipelineConfig struct {
	// PlanTimeout bounds one plan.request dispatch.
	PlanTimeout time.Duration `yaml:"plan_timeout"`
	// ValidationTimeout bounds one validate.request dispatch.
	ValidationTimeout time.Duration `yaml:"validation_timeout"`
	// StepTimeout bounds one DAG step execution.
	StepTimeout time.Duration `yaml:"step_timeout"`
	// JobTimeout is the enqueue-to-terminal cap, and the approval wait cap.
	JobTimeout time.Duration `yaml:"job_timeout"`
	// MaxRevisionCount bounds needs_revision → planning cycles.
	MaxRevisionCount int `yaml:"max_revision_count"`
	// MaxReplanCount bounds fast-path reroute replans.
	MaxReplanCount int `yaml:"max_replan_count"`
	// MaxConcurrency bounds parallel steps within one DAG layer.
	MaxConcurrency int `yaml:"max_concurrency"`
}

// RouterConfig tunes the message router.
type RouterConfig struct {
	ReplayWindow        time.Duration `yaml:"replay_window"`
	MaxMessageSizeBytes int           `yaml:"max_message_size_bytes"`
	WarnThresholdBytes  int           `yaml:"warn_threshold_bytes"`
}

// SandboxConfig tunes the sandbox host.
type SandboxConfig struct {
	// WorkspaceRoot is the directory tree gears may touch.
	WorkspaceRoot string `yaml:"workspace_root"`
	// SigningPolicy is one of "require", "warn", "allow".
	SigningPolicy string `yaml:"signing_policy"`
	// KillTimeout is the SIGTERM → SIGKILL grace period.
	KillTimeout time.Duration `yaml:"kill_timeout"`
	// CircuitBreakerFailures opens a gear's breaker at this count.
	CircuitBreakerFailures int `yaml:"circuit_breaker_failures"`
	// CircuitBreakerWindow is the rolling failure-count window.
	CircuitBreakerWindow time.Duration `yaml:"circuit_breaker_window"`
}

// MemoryConfig sets the watchdog thresholds as percentages of total
// memory, plus the absolute free-memory floor for emergency.
type MemoryConfig struct {
	WarnPct         int           `yaml:"warn_pct"`
	PausePct        int           `yaml:"pause_pct"`
	RejectPct       int           `yaml:"reject_pct"`
	EmergencyFreeMb int           `yaml:"emergency_free_mb"`
	SampleInterval  time.Duration `yaml:"sample_interval"`
}

// PolicyConfig holds the validator's hard floors.
type PolicyConfig struct {
	// MaxTransactionAmountUsd gates financial actions.
	MaxTransactionAmountUsd float64 `yaml:"max_transaction_amount_usd"`
	// AllowedDomains is the network allowlist.
	AllowedDomains []string `yaml:"allowed_domains"`
	// WorkspaceRoot mirrors SandboxConfig for filesystem path checks.
	WorkspaceRoot string `yaml:"workspace_root"`
	// SuggestionCount is the per-category threshold for standing-rule
	// suggestions.
	SuggestionCount int `yaml:"suggestion_count"`
}

// CostConfig tunes the LLM cost tracker.
type CostConfig struct {
	DailyLimitUsd float64 `yaml:"daily_limit_usd"`
}

// RetentionConfig tunes the background retention sweep.
type RetentionConfig struct {
	// SweepInterval is the time between sweeps.
	SweepInterval time.Duration `yaml:"sweep_interval"`
	// ExpiredRuleGrace keeps expired standing rules around for audit
	// before deletion.
	ExpiredRuleGrace time.Duration `yaml:"expired_rule_grace"`
	// CallRetentionDays bounds per-call LLM accounting rows; the daily
	// aggregate is kept forever.
	CallRetentionDays int `yaml:"call_retention_days"`
	// JobScrubAfter removes transient metadata (approval nonces, raw
	// content) from terminal jobs older than this.
	JobScrubAfter time.Duration `yaml:"job_scrub_after"`
}

// Load reads and validates a YAML config file, overlaying it on the
// defaults. A missing path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				slog.Info("No config file found, using defaults", "path", path)
				return cfg, nil
			}
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}

		loaded := &Config{}
		dec := yaml.NewDecoder(bytes.NewReader(ExpandEnv(raw)))
		// Unknown keys are configuration mistakes; refuse them.
		dec.KnownFields(true)
		if err := dec.Decode(loaded); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		if err := mergo.Merge(cfg, loaded, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("merging config: %w", err)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

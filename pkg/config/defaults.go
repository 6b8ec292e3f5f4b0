package config

import "time"

// DefaultConfig returns the complete built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: &ServerConfig{
			ListenAddr:      "127.0.0.1:8090",
			ShutdownTimeout: 10 * time.Second,
			WsWriteTimeout:  5 * time.Second,
		},
		Queue: DefaultQueueConfig(),
		Pipeline: &PipelineConfig{
			PlanTimeout:       60 * time.Second,
			ValidationTimeout: 30 * time.Second,
			StepTimeout:       5 * time.Minute,
			JobTimeout:        10 * time.Minute,
			MaxRevisionCount:  2,
			MaxReplanCount:    2,
			MaxConcurrency:    4,
		},
		Router: &RouterConfig{
			ReplayWindow:        60 * time.Second,
			MaxMessageSizeBytes: 1 << 20,
			WarnThresholdBytes:  256 << 10,
		},
		Sandbox: &SandboxConfig{
			WorkspaceRoot:          "./workspace",
			SigningPolicy:          "warn",
			KillTimeout:            5 * time.Second,
			CircuitBreakerFailures: 5,
			CircuitBreakerWindow:   60 * time.Second,
		},
		Memory: &MemoryConfig{
			WarnPct:         70,
			PausePct:        80,
			RejectPct:       90,
			EmergencyFreeMb: 256,
			SampleInterval:  5 * time.Second,
		},
		Policy: &PolicyConfig{
			MaxTransactionAmountUsd: 100,
			AllowedDomains:          nil,
			WorkspaceRoot:           "./workspace",
			SuggestionCount:         5,
		},
		Cost: &CostConfig{
			DailyLimitUsd: 5,
		},
		Retention: &RetentionConfig{
			SweepInterval:     time.Hour,
			ExpiredRuleGrace:  7 * 24 * time.Hour,
			CallRetentionDays: 90,
			JobScrubAfter:     30 * 24 * time.Hour,
		},
	}
}

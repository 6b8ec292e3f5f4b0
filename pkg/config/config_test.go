package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValidates(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Queue.WorkerCount)
	assert.Equal(t, 2, cfg.Pipeline.MaxRevisionCount)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
queue:
  worker_count: 2
  max_concurrent_jobs: 6
pipeline:
  job_timeout: 2m
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 6, cfg.Queue.MaxConcurrentJobs)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.JobTimeout)
	// Untouched sections keep defaults.
	assert.Equal(t, "warn", cfg.Sandbox.SigningPolicy)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gearbox.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
queue:
  worker_count: 2
  turbo_mode: true
`), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "turbo_mode")
}

func TestValidateRejectsBadRanges(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero workers", func(c *Config) { c.Queue.WorkerCount = 0 }, "worker_count"},
		{"concurrency below workers", func(c *Config) { c.Queue.MaxConcurrentJobs = 1 }, "max_concurrent_jobs"},
		{"bad signing policy", func(c *Config) { c.Sandbox.SigningPolicy = "maybe" }, "signing_policy"},
		{"inverted memory thresholds", func(c *Config) { c.Memory.PausePct = 50 }, "memory thresholds"},
		{"negative revisions", func(c *Config) { c.Pipeline.MaxRevisionCount = -1 }, "max_revision_count"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

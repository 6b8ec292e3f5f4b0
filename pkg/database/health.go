package database

import (
	"context"
	"fmt"
	"time"

	"github.com/gearbox-dev/gearbox/ent/job"
)

// HealthStatus reports database connectivity, connection pool
// statistics, and the live shape of the job table.
type HealthStatus struct {
	Status          string `json:"status"`
	ResponseTime    int64  `json:"response_time_ms"`
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	MaxOpenConns    int    `json:"max_open_conns"`

	// Queue shape: a growing backlog or stale leases show up on the
	// health surface without shell access to the database.
	PendingJobs   int `json:"pending_jobs"`
	ExecutingJobs int `json:"executing_jobs"`
	StaleLeases   int `json:"stale_leases"`
}

// Health pings the database and, when reachable, samples the pool and
// the job table. A stale lease is a held lease past its expiry that the
// recovery scan has not yet reclaimed.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()

	if err := c.db.PingContext(ctx); err != nil {
		return &HealthStatus{
			Status:       "unhealthy",
			ResponseTime: time.Since(start).Milliseconds(),
		}, err
	}

	stats := c.db.Stats()
	h := &HealthStatus{
		Status:          "healthy",
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		MaxOpenConns:    stats.MaxOpenConnections,
	}

	var err error
	h.PendingJobs, err = c.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Count(ctx)
	if err != nil {
		return h, fmt.Errorf("counting pending jobs: %w", err)
	}
	h.ExecutingJobs, err = c.Job.Query().
		Where(job.StatusIn(job.StatusPlanning, job.StatusValidating, job.StatusExecuting)).
		Count(ctx)
	if err != nil {
		return h, fmt.Errorf("counting in-flight jobs: %w", err)
	}
	h.StaleLeases, err = c.Job.Query().
		Where(job.LeaseOwnerNotNil(), job.LeaseExpiresAtLT(time.Now())).
		Count(ctx)
	if err != nil {
		return h, fmt.Errorf("counting stale leases: %w", err)
	}

	h.ResponseTime = time.Since(start).Milliseconds()
	return h, nil
}

package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateQueueIndexes creates the lease-scan index with an explicit
// descending priority component. The queue's claim query orders on
// (status, priority desc, created_at) and priority is stored as an enum,
// so the ordering is expressed over a CASE mapping.
func CreateQueueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_lease_scan
		ON jobs (status,
		         (CASE priority WHEN 'high' THEN 0 WHEN 'normal' THEN 1 ELSE 2 END),
		         created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create jobs lease-scan index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_jobs_lease_expiry
		ON jobs (lease_expires_at)
		WHERE lease_expires_at IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create jobs lease-expiry index: %w", err)
	}

	return nil
}

package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent/job"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

func TestHealthSamplesQueueShape(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	_, err := client.Job.Create().
		SetID(uuid.NewString()).
		SetConversationID("c1").
		Save(ctx)
	require.NoError(t, err)

	// An in-flight job whose lease expired without a heartbeat.
	_, err = client.Job.Create().
		SetID(uuid.NewString()).
		SetConversationID("c1").
		SetStatus(job.StatusExecuting).
		SetLeaseOwner("worker-1").
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Job.Create().
		SetID(uuid.NewString()).
		SetConversationID("c2").
		SetStatus(job.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)

	h, err := client.Health(ctx)
	require.NoError(t, err)

	assert.Equal(t, "healthy", h.Status)
	assert.Equal(t, 1, h.PendingJobs)
	assert.Equal(t, 1, h.ExecutingJobs)
	assert.Equal(t, 1, h.StaleLeases, "expired held leases are reported")
	assert.Positive(t, h.OpenConnections)
	assert.GreaterOrEqual(t, h.ResponseTime, int64(0))
}

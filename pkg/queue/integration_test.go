package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/models"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		LeaseDuration:           10 * time.Second,
		DedupWindow:             time.Minute,
		MaxStepAttempts:         3,
		GracefulShutdownTimeout: 10 * time.Second,
		RecoveryInterval:        time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// stubExecutor returns canned results and records the jobs it saw.
type stubExecutor struct {
	mu      sync.Mutex
	seen    []string
	result  func(j *ent.Job) *ExecutionResult
	started atomic.Int32
}

func (e *stubExecutor) Execute(ctx context.Context, j *ent.Job) *ExecutionResult {
	e.started.Add(1)
	e.mu.Lock()
	e.seen = append(e.seen, j.ID)
	e.mu.Unlock()
	if e.result != nil {
		return e.result(j)
	}
	return &ExecutionResult{Status: models.JobCompleted, Result: &models.JobResult{Path: "fast", Text: "ok"}}
}

func (e *stubExecutor) order() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.seen...)
}

func TestEnqueueAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{
		ConversationID: "conv-1",
		Content:        map[string]interface{}{"text": "list my files"},
		Priority:       models.PriorityHigh,
	})
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, created.Status)
	assert.Equal(t, job.PriorityHigh, created.Priority)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEnqueueDedupWindow(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	first, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "conv-1", DedupKey: "key-1"})
	require.NoError(t, err)

	second, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "conv-1", DedupKey: "key-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same dedup key within window returns the existing job")

	other, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "conv-1", DedupKey: "key-2"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestLeaseOrdersByPriorityThenAge(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	low, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c", Priority: models.PriorityLow})
	require.NoError(t, err)
	normal, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c", Priority: models.PriorityNormal})
	require.NoError(t, err)
	high, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c", Priority: models.PriorityHigh})
	require.NoError(t, err)

	var order []string
	for i := 0; i < 3; i++ {
		j, err := svc.Lease(ctx, "w1")
		require.NoError(t, err)
		order = append(order, j.ID)
	}
	assert.Equal(t, []string{high.ID, normal.ID, low.ID}, order)

	_, err = svc.Lease(ctx, "w1")
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestLeaseIsExclusive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	j, err := svc.Lease(ctx, "w1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, j.ID)
	require.NotNil(t, j.LeaseOwner)
	assert.Equal(t, "w1", *j.LeaseOwner)

	_, err = svc.Lease(ctx, "w2")
	assert.ErrorIs(t, err, ErrNoJobsAvailable, "a leased job must not be claimable")
}

func TestHeartbeatRequiresOwnership(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)
	_, err = svc.Lease(ctx, "w1")
	require.NoError(t, err)

	require.NoError(t, svc.Heartbeat(ctx, created.ID, "w1"))
	assert.ErrorIs(t, svc.Heartbeat(ctx, created.ID, "w2"), ErrNotFound)
}

func TestTransitionCompareAndSet(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	// Not in the state machine.
	err = svc.Transition(ctx, created.ID, models.JobPending, models.JobExecuting)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, svc.Transition(ctx, created.ID, models.JobPending, models.JobPlanning))

	// Second identical CAS loses the race: status is no longer pending.
	err = svc.Transition(ctx, created.ID, models.JobPending, models.JobPlanning)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPlanning, got.Status)
}

func TestTransitionToAwaitingApprovalReleasesLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)
	_, err = svc.Lease(ctx, "w1")
	require.NoError(t, err)

	require.NoError(t, svc.Transition(ctx, created.ID, models.JobPending, models.JobPlanning))
	require.NoError(t, svc.Transition(ctx, created.ID, models.JobPlanning, models.JobValidating))
	require.NoError(t, svc.Transition(ctx, created.ID, models.JobValidating, models.JobAwaitingApproval))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LeaseOwner, "entering awaiting_approval must release the lease")

	// Approval: awaiting_approval -> executing becomes leasable again.
	require.NoError(t, svc.Transition(ctx, created.ID, models.JobAwaitingApproval, models.JobExecuting))
	resumed, err := svc.Lease(ctx, "w2")
	require.NoError(t, err)
	assert.Equal(t, created.ID, resumed.ID)
}

func TestSubscribeReceivesStatusChanges(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	ch, cancel := svc.Subscribe(created.ID)
	defer cancel()

	require.NoError(t, svc.Transition(ctx, created.ID, models.JobPending, models.JobPlanning))

	select {
	case change := <-ch:
		assert.Equal(t, models.JobPending, change.From)
		assert.Equal(t, models.JobPlanning, change.To)
	case <-time.After(time.Second):
		t.Fatal("expected a status change notification")
	}
}

func TestCancelFromNonTerminal(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewService(client.Client, intTestQueueConfig(), nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, created.ID))
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCancelled, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.CodeJobCancelled, got.Error.Code)

	// Terminal jobs refuse further transitions.
	assert.ErrorIs(t, svc.Cancel(ctx, created.ID), ErrInvalidTransition)
	assert.ErrorIs(t, svc.Complete(ctx, created.ID, nil), ErrInvalidTransition)
}

func TestWorkerPoolProcessesJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	executor := &stubExecutor{}
	pool := NewWorkerPool("node-"+uuid.NewString()[:8], svc, cfg, 30*time.Second, executor)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		j, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
		require.NoError(t, err)
		ids = append(ids, j.ID)
	}

	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "jobs processed", func() bool {
		n, err := client.Job.Query().Where(job.StatusEQ(job.StatusCompleted)).Count(ctx)
		return err == nil && n == len(ids)
	})

	for _, id := range ids {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, job.StatusCompleted, got.Status)
		assert.Nil(t, got.LeaseOwner)
	}
}

func TestWorkerPoolBackpressure(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	executor := &stubExecutor{}
	pool := NewWorkerPool("node-"+uuid.NewString()[:8], svc, cfg, 30*time.Second, executor)
	ctx := context.Background()

	pool.SetPressure(models.PressureReject)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	_, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	time.Sleep(500 * time.Millisecond)
	assert.Zero(t, executor.started.Load(), "no leases under reject pressure")

	pool.SetPressure(models.PressureNormal)
	awaitCondition(t, 10*time.Second, 100*time.Millisecond, "job processed after pressure cleared", func() bool {
		return executor.started.Load() == 1
	})
}

func TestRecoveryReclaimsExpiredLease(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	pool := NewWorkerPool("node-r", svc, cfg, 30*time.Second, &stubExecutor{})
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)
	_, err = svc.Lease(ctx, "dead-worker")
	require.NoError(t, err)

	// Expire the lease manually.
	err = client.Job.UpdateOneID(created.ID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.recoverExpiredLeases(ctx))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Nil(t, got.LeaseOwner)
}

func TestRecoveryFailsJobAtAttemptCap(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	pool := NewWorkerPool("node-r", svc, cfg, 30*time.Second, &stubExecutor{})
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)
	_, err = svc.Lease(ctx, "dead-worker")
	require.NoError(t, err)

	err = client.Job.UpdateOneID(created.ID).
		SetLeaseExpiresAt(time.Now().Add(-time.Minute)).
		SetAttempts(cfg.MaxStepAttempts - 1).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, pool.recoverExpiredLeases(ctx))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Equal(t, models.CodeMaxAttemptsExceeded, got.Error.Code)
}

func TestRecoveryExpiresStaleApprovals(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	pool := NewWorkerPool("node-r", svc, cfg, 30*time.Second, &stubExecutor{})
	ctx := context.Background()

	suspend := func(expiresAt time.Time) string {
		j, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
		require.NoError(t, err)
		err = client.Job.UpdateOneID(j.ID).
			SetStatus(job.StatusAwaitingApproval).
			SetMetadata(map[string]any{
				"approvalNonce":          "n-" + j.ID,
				"approvalNonceExpiresAt": expiresAt.UTC().Format(time.RFC3339),
			}).
			Exec(ctx)
		require.NoError(t, err)
		return j.ID
	}
	staleID := suspend(time.Now().Add(-time.Minute))
	freshID := suspend(time.Now().Add(time.Hour))

	require.NoError(t, pool.recoverExpiredApprovals(ctx))

	stale, err := svc.Get(ctx, staleID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusFailed, stale.Status)
	require.NotNil(t, stale.Error)
	assert.Equal(t, models.CodeApprovalTimeout, stale.Error.Code)

	fresh, err := svc.Get(ctx, freshID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAwaitingApproval, fresh.Status,
		"unexpired approvals stay suspended")
}

func TestStartupLeaseRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	cfg := intTestQueueConfig()
	svc := NewService(client.Client, cfg, nil)
	ctx := context.Background()

	created, err := svc.Enqueue(ctx, EnqueueInput{ConversationID: "c"})
	require.NoError(t, err)

	// Simulate a crash: lease held by this node's worker, never released.
	err = client.Job.UpdateOneID(created.ID).
		SetLeaseOwner("node-x-worker-0").
		SetLeaseExpiresAt(time.Now().Add(time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, RecoverStartupLeases(ctx, svc, "node-x"))

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusPending, got.Status)
	assert.Equal(t, 1, got.Attempts)
	assert.Nil(t, got.LeaseOwner)
}

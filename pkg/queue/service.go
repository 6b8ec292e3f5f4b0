package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/events"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// subscriberBuffer bounds each status-change subscriber; notification
// after commit never blocks, full subscribers lose the change.
const subscriberBuffer = 16

// Service is the durable job queue over the jobs table. All status
// transitions go through compare-and-set so concurrent workers cannot
// steal an already-claimed job.
type Service struct {
	client    *ent.Client
	cfg       *config.QueueConfig
	publisher *events.Publisher // may be nil (event streaming disabled)

	mu      sync.Mutex
	subs    map[string]map[int]chan StatusChange
	nextSub int
}

// NewService creates a queue service. publisher may be nil.
func NewService(client *ent.Client, cfg *config.QueueConfig, publisher *events.Publisher) *Service {
	return &Service{
		client:    client,
		cfg:       cfg,
		publisher: publisher,
		subs:      make(map[string]map[int]chan StatusChange),
	}
}

// Enqueue creates a pending job. If the caller supplies a dedup key and
// a job with the same key was enqueued within the dedup window, the
// existing job is returned instead of creating a new one.
func (s *Service) Enqueue(ctx context.Context, in EnqueueInput) (*ent.Job, error) {
	priority := in.Priority
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("invalid priority %q", in.Priority)
	}
	source := in.Source
	if source == "" {
		source = models.SourceUser
	}
	if !source.Valid() {
		return nil, fmt.Errorf("invalid source %q", in.Source)
	}

	if in.DedupKey != "" {
		cutoff := time.Now().Add(-s.cfg.DedupWindow)
		existing, err := s.client.Job.Query().
			Where(
				job.DedupKeyEQ(in.DedupKey),
				job.CreatedAtGT(cutoff),
			).
			Order(ent.Desc(job.FieldCreatedAt)).
			First(ctx)
		if err == nil {
			slog.Info("Enqueue deduplicated",
				"job_id", existing.ID, "dedup_key", in.DedupKey)
			return existing, nil
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("checking dedup window: %w", err)
		}
	}

	create := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetConversationID(in.ConversationID).
		SetStatus(job.StatusPending).
		SetPriority(job.Priority(priority)).
		SetSourceType(job.SourceType(source))
	if in.SourceMessageID != "" {
		create = create.SetSourceMessageID(in.SourceMessageID)
	}
	if in.DedupKey != "" {
		create = create.SetDedupKey(in.DedupKey)
	}
	metadata := in.Metadata
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	if in.Content != nil {
		metadata["content"] = in.Content
	}
	create = create.SetMetadata(metadata)

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	slog.Info("Job enqueued",
		"job_id", created.ID,
		"conversation_id", in.ConversationID,
		"priority", priority,
		"source", source)
	s.publishStatus(created.ID, models.JobPending, nil)
	return created, nil
}

// Get fetches a job by id.
func (s *Service) Get(ctx context.Context, jobID string) (*ent.Job, error) {
	j, err := s.client.Job.Get(ctx, jobID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetching job: %w", err)
	}
	return j, nil
}

// Lease atomically claims the next leasable job using FOR UPDATE SKIP
// LOCKED, ordered by priority (high first) then created_at. Leasable
// jobs are pending ones and executing ones whose lease was released
// (approval resume).
func (s *Service) Lease(ctx context.Context, workerID string) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	j, err := tx.Job.Query().
		Where(
			job.LeaseOwnerIsNil(),
			job.StatusIn(job.StatusPending, job.StatusExecuting),
		).
		Order(
			func(sel *sql.Selector) {
				sel.OrderExpr(sql.Expr("CASE priority WHEN 'high' THEN 2 WHEN 'normal' THEN 1 ELSE 0 END DESC"))
			},
			ent.Asc(job.FieldCreatedAt),
		).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoJobsAvailable
		}
		return nil, fmt.Errorf("failed to query leasable job: %w", err)
	}

	now := time.Now()
	j, err = j.Update().
		SetLeaseOwner(workerID).
		SetLeaseExpiresAt(now.Add(s.cfg.LeaseDuration)).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return j, nil
}

// Heartbeat extends the lease. Only the current lease owner may
// heartbeat; a stale worker gets ErrNotFound and must stop processing.
func (s *Service) Heartbeat(ctx context.Context, jobID, workerID string) error {
	now := time.Now()
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.LeaseOwnerEQ(workerID),
		).
		SetLastHeartbeatAt(now).
		SetLeaseExpiresAt(now.Add(s.cfg.LeaseDuration)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("heartbeat update: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ReleaseLease clears the lease so another worker can claim the job.
// Used when a job suspends in awaiting_approval.
func (s *Service) ReleaseLease(ctx context.Context, jobID, workerID string) error {
	n, err := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.LeaseOwnerEQ(workerID),
		).
		ClearLeaseOwner().
		ClearLeaseExpiresAt().
		ClearLastHeartbeatAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("releasing lease: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Transition performs a compare-and-set status change. The change must
// be in the job state machine and the job must currently be in the
// `from` status, otherwise ErrInvalidTransition. Subscribers are
// notified synchronously after the commit.
func (s *Service) Transition(ctx context.Context, jobID string, from, to models.JobStatus) error {
	if !models.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	update := s.client.Job.Update().
		Where(
			job.IDEQ(jobID),
			job.StatusEQ(job.Status(from)),
		).
		SetStatus(job.Status(to))
	// Entering a leasable or suspended state releases the claim.
	if to == models.JobPending || to == models.JobAwaitingApproval {
		update = update.ClearLeaseOwner().ClearLeaseExpiresAt().ClearLastHeartbeatAt()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("transition update: %w", err)
	}
	if n == 0 {
		exists, err := s.client.Job.Query().Where(job.IDEQ(jobID)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("transition existence check: %w", err)
		}
		if !exists {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %s -> %s (race lost)", ErrInvalidTransition, from, to)
	}

	s.notify(StatusChange{JobID: jobID, From: from, To: to})
	s.publishStatus(jobID, to, nil)
	return nil
}

// Complete moves the job to completed and persists the result. Valid
// from planning (fast path) and executing.
func (s *Service) Complete(ctx context.Context, jobID string, result *models.JobResult) error {
	return s.finish(ctx, jobID, models.JobCompleted, func(u *ent.JobUpdate) {
		if result != nil {
			u.SetResult(result)
		}
	}, nil)
}

// Fail moves the job to failed with the given error. Allowed from any
// non-terminal status.
func (s *Service) Fail(ctx context.Context, jobID string, jobErr *models.CodedError) error {
	return s.finish(ctx, jobID, models.JobFailed, func(u *ent.JobUpdate) {
		if jobErr != nil {
			u.SetError(jobErr)
		}
	}, jobErr)
}

// Cancel moves the job to cancelled. Allowed from any non-terminal
// status; in-flight processing is stopped by the pool's cancel registry.
func (s *Service) Cancel(ctx context.Context, jobID string) error {
	cancelErr := models.NewCodedError(models.CodeJobCancelled, "job cancelled")
	return s.finish(ctx, jobID, models.JobCancelled, func(u *ent.JobUpdate) {
		u.SetError(cancelErr)
	}, cancelErr)
}

// finish is the shared terminal transition: CAS against the current
// status, retried once if a concurrent transition moved the job.
func (s *Service) finish(ctx context.Context, jobID string, to models.JobStatus, apply func(*ent.JobUpdate), jobErr *models.CodedError) error {
	for attempt := 0; attempt < 2; attempt++ {
		current, err := s.Get(ctx, jobID)
		if err != nil {
			return err
		}
		from := models.JobStatus(current.Status)
		if from.Terminal() {
			return fmt.Errorf("%w: job already %s", ErrInvalidTransition, from)
		}
		if to == models.JobCompleted && !models.CanTransition(from, to) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}

		update := s.client.Job.Update().
			Where(
				job.IDEQ(jobID),
				job.StatusEQ(current.Status),
			).
			SetStatus(job.Status(to)).
			ClearLeaseOwner().
			ClearLeaseExpiresAt().
			ClearLastHeartbeatAt()
		apply(update)

		n, err := update.Save(ctx)
		if err != nil {
			return fmt.Errorf("terminal update: %w", err)
		}
		if n == 0 {
			continue // status moved underneath us, re-read
		}

		s.notify(StatusChange{JobID: jobID, From: from, To: to})
		s.publishStatus(jobID, to, jobErr)
		return nil
	}
	return fmt.Errorf("%w: concurrent transitions on job %s", ErrInvalidTransition, jobID)
}

// Subscribe registers a status-change receiver for one job. The returned
// cancel removes the subscription and closes the channel. Delivery is
// non-blocking: a full subscriber loses changes.
func (s *Service) Subscribe(jobID string) (<-chan StatusChange, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan StatusChange, subscriberBuffer)
	if s.subs[jobID] == nil {
		s.subs[jobID] = make(map[int]chan StatusChange)
	}
	s.subs[jobID][id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[jobID][id]; ok {
			delete(s.subs[jobID], id)
			close(sub)
			if len(s.subs[jobID]) == 0 {
				delete(s.subs, jobID)
			}
		}
	}
	return ch, cancel
}

func (s *Service) notify(change StatusChange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.subs[change.JobID] {
		select {
		case ch <- change:
		default:
			slog.Warn("Dropping status change for slow subscriber",
				"job_id", change.JobID, "subscriber", id)
		}
	}
}

func (s *Service) publishStatus(jobID string, status models.JobStatus, jobErr *models.CodedError) {
	if s.publisher == nil {
		return
	}
	s.publisher.PublishJobStatus(jobID, status, jobErr)
}

// EnqueueFromGear creates a fire-and-forget sub-job on behalf of a
// running gear. The caller gets the new job id but no completion
// signal. The conversation id is inherited from the metadata when the
// gear passes one through.
func (s *Service) EnqueueFromGear(ctx context.Context, content string, metadata map[string]any) (string, error) {
	conversationID, _ := metadata["conversationId"].(string)
	if conversationID == "" {
		conversationID = uuid.New().String()
	}
	created, err := s.Enqueue(ctx, EnqueueInput{
		ConversationID: conversationID,
		Content:        map[string]any{"text": content},
		Source:         models.SourceGear,
		Metadata:       metadata,
	})
	if err != nil {
		return "", err
	}
	return created.ID, nil
}

// Depth returns the number of pending jobs.
func (s *Service) Depth(ctx context.Context) (int, error) {
	return s.client.Job.Query().
		Where(job.StatusEQ(job.StatusPending)).
		Count(ctx)
}

// ActiveCount returns the number of jobs currently holding a lease.
func (s *Service) ActiveCount(ctx context.Context) (int, error) {
	return s.client.Job.Query().
		Where(job.LeaseOwnerNotNil()).
		Count(ctx)
}

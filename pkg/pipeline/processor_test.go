package pipeline

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/ent/job"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/cost"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/sandbox"
	"github.com/gearbox-dev/gearbox/pkg/scout"
	"github.com/gearbox-dev/gearbox/pkg/sentinel"
	testdb "github.com/gearbox-dev/gearbox/test/database"
)

// fakeRouter dispatches by destination to scripted handlers and records
// every request for assertions.
type fakeRouter struct {
	mu       sync.Mutex
	handlers map[string]func(*envelope.Envelope) (*envelope.Envelope, error)
	requests []*envelope.Envelope
}

func (f *fakeRouter) Dispatch(_ context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	f.mu.Lock()
	f.requests = append(f.requests, env)
	handler := f.handlers[env.To]
	f.mu.Unlock()
	if handler == nil {
		return nil, models.NewCodedError(models.CodeComponentNotFound, env.To)
	}
	return handler(env)
}

func (f *fakeRouter) requestsTo(to string) []*envelope.Envelope {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*envelope.Envelope
	for _, env := range f.requests {
		if env.To == to {
			out = append(out, env)
		}
	}
	return out
}

func newTestSigner(t *testing.T, id string) *envelope.Signer {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return envelope.NewSigner(id, priv)
}

func testPipelineConfig() *config.PipelineConfig {
	return &config.PipelineConfig{
		PlanTimeout:       5 * time.Second,
		ValidationTimeout: 5 * time.Second,
		StepTimeout:       5 * time.Second,
		JobTimeout:        time.Minute,
		MaxRevisionCount:  1,
		MaxReplanCount:    1,
		MaxConcurrency:    2,
	}
}

type fixture struct {
	client    *ent.Client
	queue     *queue.Service
	router    *fakeRouter
	processor *Processor
	cost      *cost.Tracker

	planner   *envelope.Signer
	validator *envelope.Signer
	host      *envelope.Signer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	q := queue.NewService(client.Client, config.DefaultQueueConfig(), nil)
	router := &fakeRouter{handlers: map[string]func(*envelope.Envelope) (*envelope.Envelope, error){}}

	f := &fixture{
		client:    client.Client,
		queue:     q,
		router:    router,
		cost:      cost.NewTracker(client.Client, &config.CostConfig{DailyLimitUsd: 5}, nil),
		planner:   newTestSigner(t, scout.ComponentID),
		validator: newTestSigner(t, sentinel.ComponentID),
		host:      newTestSigner(t, sandbox.ComponentID),
	}
	f.processor = NewProcessor(Options{
		Signer:          newTestSigner(t, ComponentID),
		Router:          router,
		Queue:           q,
		Client:          client.Client,
		Config:          testPipelineConfig(),
		MaxStepAttempts: 2,
		Cost:            f.cost,
	})
	return f
}

func (f *fixture) enqueue(t *testing.T, metadata map[string]any) *ent.Job {
	t.Helper()
	j, err := f.queue.Enqueue(context.Background(), queue.EnqueueInput{
		ConversationID: "c1",
		Content:        map[string]any{"text": "summarize my inbox"},
		Metadata:       metadata,
	})
	require.NoError(t, err)
	return j
}

// Scripted component replies.

func (f *fixture) planFast(text string, reroute bool) {
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		payload := map[string]any{"path": "fast", "text": text}
		if reroute {
			payload["requiresReroute"] = true
		}
		return f.planner.NewResponse(env, models.MsgPlanResponse, payload)
	}
}

func (f *fixture) planFull(t *testing.T, plan *models.Plan) {
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		return f.planner.NewResponse(env, models.MsgPlanResponse, planPayload(t, plan))
	}
}

func planPayload(t *testing.T, plan *models.Plan) map[string]any {
	t.Helper()
	out := map[string]any{}
	require.NoError(t, remarshal(&models.PlanResponse{Path: "full", Plan: plan}, &out))
	return out
}

func (f *fixture) validate(t *testing.T, result *models.ValidationResult) {
	f.router.handlers[sentinel.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		vmap := map[string]any{}
		require.NoError(t, remarshal(result, &vmap))
		return f.validator.NewResponse(env, models.MsgValidateResponse, map[string]any{"validation": vmap})
	}
}

func (f *fixture) executeOK(output any) {
	f.router.handlers[sandbox.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{"output": output})
	}
}

func singleStepPlan() *models.Plan {
	return &models.Plan{
		ID: "plan-1",
		Steps: []models.Step{
			{ID: "a", Gear: "email", Action: "list_messages", RiskLevel: models.RiskLow},
		},
	}
}

func approved() *models.ValidationResult {
	return &models.ValidationResult{
		Verdict:     models.VerdictApproved,
		OverallRisk: models.RiskLow,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictApproved, RiskLevel: models.RiskLow},
		},
	}
}

func TestFastPathCompletesWithoutValidation(t *testing.T) {
	f := newFixture(t)
	f.planFast("you have 3 unread messages", false)
	j := f.enqueue(t, nil)

	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	require.NotNil(t, res.Result)
	assert.Equal(t, "fast", res.Result.Path)
	assert.Equal(t, "you have 3 unread messages", res.Result.Text)
	assert.Empty(t, f.router.requestsTo(sentinel.ComponentID), "fast path never reaches the validator")

	planRequests := f.router.requestsTo(scout.ComponentID)
	require.Len(t, planRequests, 1)
	assert.Equal(t, "summarize my inbox", planRequests[0].Payload["userMessage"])
}

func TestRerouteForcesFullPath(t *testing.T) {
	f := newFixture(t)
	f.validate(t, approved())
	f.executeOK("done")

	calls := 0
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		calls++
		if calls == 1 {
			return f.planner.NewResponse(env, models.MsgPlanResponse, map[string]any{
				"path": "fast", "text": "I have sent the email", "requiresReroute": true,
			})
		}
		assert.Equal(t, true, env.Payload["forceFullPath"], "replan must force the full path")
		return f.planner.NewResponse(env, models.MsgPlanResponse, planPayload(t, singleStepPlan()))
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	assert.Equal(t, "full", res.Result.Path)
	assert.Equal(t, 2, calls)
}

func TestRerouteLoopIsBounded(t *testing.T) {
	f := newFixture(t)
	f.planFast("I already did that", true)
	j := f.enqueue(t, nil)

	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, models.CodePlanFailed, res.Error.Code)
	// Initial attempt plus MaxReplanCount forced replans.
	assert.Len(t, f.router.requestsTo(scout.ComponentID), 2)
}

func TestApprovedPlanExecutesAndPersists(t *testing.T) {
	f := newFixture(t)
	plan := &models.Plan{
		ID: "plan-2",
		Steps: []models.Step{
			{ID: "a", Gear: "email", Action: "list_messages", RiskLevel: models.RiskLow},
			{ID: "b", Gear: "email", Action: "summarize", RiskLevel: models.RiskLow, DependsOn: []string{"a"}},
		},
	}
	f.planFull(t, plan)
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictApproved,
		OverallRisk: models.RiskLow,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictApproved, RiskLevel: models.RiskLow},
			{StepID: "b", Verdict: models.VerdictApproved, RiskLevel: models.RiskLow},
		},
	})
	f.executeOK("ok")

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	require.NotNil(t, res.Result)
	assert.Equal(t, "full", res.Result.Path)
	assert.Equal(t, "completed", res.Result.Status)
	require.Len(t, res.Result.StepResults, 2)
	assert.Equal(t, models.StepCompleted, res.Result.StepResults[0].Status)
	assert.Equal(t, models.StepCompleted, res.Result.StepResults[1].Status)

	row, err := f.client.Job.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, row.Plan)
	assert.Equal(t, "plan-2", row.Plan.ID)
	require.NotNil(t, row.Validation)
	assert.Equal(t, models.VerdictApproved, row.Validation.Verdict)

	execRequests := f.router.requestsTo(sandbox.ComponentID)
	require.Len(t, execRequests, 2)
	assert.Equal(t, "email", execRequests[0].Payload["plugin"])
	assert.Equal(t, j.ID, execRequests[0].Payload["jobId"])
}

func TestRejectedPlanFailsWithReasons(t *testing.T) {
	f := newFixture(t)
	f.planFull(t, singleStepPlan())
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictRejected,
		OverallRisk: models.RiskCritical,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictRejected, RiskLevel: models.RiskCritical,
				Reasons: []string{"transaction amount exceeds policy floor"}},
		},
	})

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, models.CodePlanRejected, res.Error.Code)
	assert.Contains(t, res.Error.Message, "transaction amount exceeds policy floor")
	assert.Empty(t, f.router.requestsTo(sandbox.ComponentID), "rejected plans never execute")
}

func TestUnchangedPlanAfterRevisionFails(t *testing.T) {
	f := newFixture(t)
	// The planner ignores revision notes and reproduces the same plan.
	f.planFull(t, singleStepPlan())
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictNeedsRevision,
		OverallRisk: models.RiskLow,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictNeedsRevision, RiskLevel: models.RiskLow,
				Reasons: []string{"parameters underspecified"}},
		},
	})

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, models.CodeMaxRevisionsReached, res.Error.Code)
	assert.Len(t, f.router.requestsTo(sentinel.ComponentID), 1,
		"an unchanged plan is never revalidated")
}

func TestRevisionCycleIsBounded(t *testing.T) {
	f := newFixture(t)
	// Each replan produces a genuinely different plan; the validator never
	// relents. MaxRevisionCount is 1 in the test config.
	planCalls := 0
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		planCalls++
		plan := singleStepPlan()
		plan.Steps[0].Parameters = map[string]any{"attempt": planCalls}
		if planCalls > 1 {
			assert.NotEmpty(t, env.Payload["revisionNotes"], "revision notes feed the replan")
		}
		return f.planner.NewResponse(env, models.MsgPlanResponse, planPayload(t, plan))
	}
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictNeedsRevision,
		OverallRisk: models.RiskLow,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictNeedsRevision, RiskLevel: models.RiskLow,
				Reasons: []string{"still underspecified"}},
		},
	})

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	assert.Equal(t, models.CodeMaxRevisionsReached, res.Error.Code)
	assert.Equal(t, 2, planCalls)
}

func TestApprovalSuspendsAndResumes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.planFull(t, singleStepPlan())
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictNeedsUserApproval,
		OverallRisk: models.RiskHigh,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictNeedsUserApproval, RiskLevel: models.RiskHigh},
		},
	})
	f.executeOK("sent")

	j := f.enqueue(t, nil)
	res := f.processor.Execute(ctx, j)
	require.Equal(t, models.JobAwaitingApproval, res.Status)

	row, err := f.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusAwaitingApproval, row.Status)
	assert.Nil(t, row.LeaseOwner, "suspension releases the lease")
	require.NotNil(t, row.Plan, "the plan is persisted before suspension")

	nonce, _ := row.Metadata["approvalNonce"].(string)
	assert.NotEmpty(t, nonce)
	expiresAt, err := time.Parse(time.RFC3339, row.Metadata["approvalNonceExpiresAt"].(string))
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	// Approval moves the job back to executing; any worker resumes it.
	require.NoError(t, f.queue.Transition(ctx, j.ID, models.JobAwaitingApproval, models.JobExecuting))
	resumed, err := f.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)

	res = f.processor.Execute(ctx, resumed)
	require.Equal(t, models.JobCompleted, res.Status)
	assert.Equal(t, "full", res.Result.Path)
	assert.Len(t, f.router.requestsTo(sentinel.ComponentID), 1,
		"resume executes the already-validated plan")
}

func TestTrustModeSkipsApprovalWait(t *testing.T) {
	f := newFixture(t)
	f.planFull(t, singleStepPlan())
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictNeedsUserApproval,
		OverallRisk: models.RiskHigh,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictNeedsUserApproval, RiskLevel: models.RiskHigh},
		},
	})
	f.executeOK("sent")

	j := f.enqueue(t, map[string]any{"trustMode": true})
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	row, err := f.client.Job.Get(context.Background(), j.ID)
	require.NoError(t, err)
	assert.NotContains(t, row.Metadata, "approvalNonce")
}

func TestTrustModeNeverOverridesRejection(t *testing.T) {
	f := newFixture(t)
	f.planFull(t, singleStepPlan())
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictRejected,
		OverallRisk: models.RiskCritical,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictRejected, RiskLevel: models.RiskCritical,
				Reasons: []string{"forbidden action"}},
		},
	})

	j := f.enqueue(t, map[string]any{"trustMode": true})
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	assert.Equal(t, models.CodePlanRejected, res.Error.Code)
}

func TestStepTimeoutRetriesThenSucceeds(t *testing.T) {
	f := newFixture(t)
	f.planFull(t, singleStepPlan())
	f.validate(t, approved())

	attempts := 0
	f.router.handlers[sandbox.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		attempts++
		if attempts == 1 {
			return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{
				"error": map[string]any{"code": models.CodeGearTimeout, "message": "gear timed out"},
			})
		}
		return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{"output": "ok"})
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	assert.Equal(t, 2, attempts)
}

func TestPartialExecutionStillCompletes(t *testing.T) {
	f := newFixture(t)
	plan := &models.Plan{
		ID: "plan-3",
		Steps: []models.Step{
			{ID: "a", Gear: "email", Action: "list_messages", RiskLevel: models.RiskLow},
			{ID: "b", Gear: "files", Action: "read_file", RiskLevel: models.RiskLow},
		},
	}
	f.planFull(t, plan)
	f.validate(t, &models.ValidationResult{
		Verdict:     models.VerdictApproved,
		OverallRisk: models.RiskLow,
		StepResults: []models.StepValidation{
			{StepID: "a", Verdict: models.VerdictApproved, RiskLevel: models.RiskLow},
			{StepID: "b", Verdict: models.VerdictApproved, RiskLevel: models.RiskLow},
		},
	})
	f.router.handlers[sandbox.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		if env.Payload["plugin"] == "files" {
			return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{
				"error": map[string]any{"code": models.CodeGearError, "message": "file not found"},
			})
		}
		return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{"output": "ok"})
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobCompleted, res.Status)
	assert.Equal(t, "partial", res.Result.Status)
	byStep := map[string]models.StepStatus{}
	for _, sr := range res.Result.StepResults {
		byStep[sr.StepID] = sr.Status
	}
	assert.Equal(t, models.StepCompleted, byStep["a"])
	assert.Equal(t, models.StepFailed, byStep["b"])
}

func TestAllStepsFailingFailsJob(t *testing.T) {
	f := newFixture(t)
	f.planFull(t, singleStepPlan())
	f.validate(t, approved())
	f.router.handlers[sandbox.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		return f.host.NewResponse(env, models.MsgExecuteResponse, map[string]any{
			"error": map[string]any{"code": models.CodeGearError, "message": "broken"},
		})
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	assert.Equal(t, models.CodeGearExecutionFailed, res.Error.Code)

	// The per-step outcomes are persisted even though the job failed.
	row, err := f.client.Job.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.NotNil(t, row.Result)
	assert.Equal(t, "failed", row.Result.Status)
}

func TestPlanUsageAccumulatesAcrossReroute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.validate(t, approved())
	f.executeOK("done")

	usage := func(in, out int) map[string]any {
		return map[string]any{
			"inputTokens": in, "outputTokens": out,
			"provider": "fake", "model": "fake-model", "durationMs": 12,
		}
	}
	calls := 0
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		calls++
		if calls == 1 {
			assert.EqualValues(t, 0, env.Payload["cumulativeTokens"])
			return f.planner.NewResponse(env, models.MsgPlanResponse, map[string]any{
				"path": "fast", "text": "I have sent the email", "requiresReroute": true,
				"usage": usage(120, 40),
			})
		}
		assert.EqualValues(t, 160, env.Payload["cumulativeTokens"],
			"the replan carries the tokens already spent")
		payload := planPayload(t, singleStepPlan())
		payload["usage"] = usage(200, 80)
		return f.planner.NewResponse(env, models.MsgPlanResponse, payload)
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(ctx, j)
	require.Equal(t, models.JobCompleted, res.Status)
	require.Equal(t, 2, calls)

	row, err := f.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 440, row.Metadata["cumulativeTokens"])

	recorded, err := f.client.LLMCall.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, recorded, "each planner round is booked")
	total, err := f.cost.DailyTotal(ctx, time.Now())
	require.NoError(t, err)
	assert.Positive(t, total, "planner calls fold into the daily spend")
}

// stubLLM wires a real planner into the fake router; the budget guard
// must reject before Chat is reached.
type stubLLM struct{ calls int }

func (s *stubLLM) Chat(context.Context, scout.ChatRequest) (<-chan scout.StreamChunk, error) {
	s.calls++
	ch := make(chan scout.StreamChunk, 1)
	ch <- scout.StreamChunk{Content: "ok", IsFinal: true}
	close(ch)
	return ch, nil
}

func (s *stubLLM) EstimateTokens(text string) int { return len(text) / 4 }
func (s *stubLLM) MaxContextTokens() int          { return 8192 }
func (s *stubLLM) ProviderInfo() (string, string) { return "fake", "fake-model" }

func TestBudgetExhaustedJobFails(t *testing.T) {
	f := newFixture(t)
	llm := &stubLLM{}
	cfg := scout.DefaultConfig()
	cfg.TokenBudget = 1000
	planner := scout.New(f.planner, llm, nil, cfg)
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		return planner.Handle(context.Background(), env)
	}

	j := f.enqueue(t, map[string]any{"cumulativeTokens": 1000})
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, models.CodeBudgetExceeded, res.Error.Code)
	assert.Zero(t, llm.calls, "over-budget jobs never reach the provider")
}

func TestPlannerErrorEnvelopePropagates(t *testing.T) {
	f := newFixture(t)
	f.router.handlers[scout.ComponentID] = func(env *envelope.Envelope) (*envelope.Envelope, error) {
		return f.planner.NewError(env, models.CodeBudgetExceeded, "token budget exhausted")
	}

	j := f.enqueue(t, nil)
	res := f.processor.Execute(context.Background(), j)

	require.Equal(t, models.JobFailed, res.Status)
	assert.Equal(t, models.CodeBudgetExceeded, res.Error.Code)
	assert.Equal(t, "token budget exhausted", res.Error.Message)
}

func TestResumeWithoutPlanFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	j := f.enqueue(t, nil)
	require.NoError(t, f.queue.Transition(ctx, j.ID, models.JobPending, models.JobPlanning))
	require.NoError(t, f.queue.Transition(ctx, j.ID, models.JobPlanning, models.JobValidating))
	require.NoError(t, f.queue.Transition(ctx, j.ID, models.JobValidating, models.JobExecuting))
	row, err := f.client.Job.Get(ctx, j.ID)
	require.NoError(t, err)

	res := f.processor.Execute(ctx, row)

	require.Equal(t, models.JobFailed, res.Status)
	assert.Contains(t, res.Error.Message, "without a persisted plan")
}

// Package pipeline drives each job through its state machine: planning,
// validation, approval, DAG execution, and finalization. The processor
// is the queue's JobExecutor; all intermediate status transitions and
// in-flight persistence happen here.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/ent"
	"github.com/gearbox-dev/gearbox/pkg/config"
	"github.com/gearbox-dev/gearbox/pkg/cost"
	"github.com/gearbox-dev/gearbox/pkg/dag"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/events"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/retry"
	"github.com/gearbox-dev/gearbox/pkg/sandbox"
	"github.com/gearbox-dev/gearbox/pkg/scout"
	"github.com/gearbox-dev/gearbox/pkg/sentinel"
)

// ComponentID is the processor's address on the bus.
const ComponentID = "pipeline"

// ApprovalNonceTTL bounds how long an issued approval nonce stays
// valid.
const ApprovalNonceTTL = 24 * time.Hour

// Dispatcher routes signed envelopes between components. Satisfied by
// *bus.Router; tests use fakes.
type Dispatcher interface {
	Dispatch(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error)
}

// Options wires a processor.
type Options struct {
	Signer *envelope.Signer
	Router Dispatcher
	Queue  *queue.Service
	Client *ent.Client
	Config *config.PipelineConfig
	// MaxStepAttempts bounds retries of one DAG step.
	MaxStepAttempts int
	// IsCircuitOpen lets the DAG executor skip steps whose gear breaker
	// is open. May be nil.
	IsCircuitOpen func(gearID string) bool
	// Publisher streams progress events. May be nil.
	Publisher *events.Publisher
	// Cost books planner token usage against the daily spend. May be nil.
	Cost *cost.Tracker
}

// Processor realizes the per-job state machine.
type Processor struct {
	opts Options
}

// NewProcessor creates a pipeline processor.
func NewProcessor(opts Options) *Processor {
	if opts.MaxStepAttempts < 1 {
		opts.MaxStepAttempts = 1
	}
	return &Processor{opts: opts}
}

// Execute processes one leased job to a terminal status or to the
// awaiting_approval suspension. Implements queue.JobExecutor.
func (p *Processor) Execute(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	switch models.JobStatus(j.Status) {
	case models.JobPending:
		if err := p.opts.Queue.Transition(ctx, j.ID, models.JobPending, models.JobPlanning); err != nil {
			return failure(models.WrapCoded(models.CodeHandlerFailed, "entering planning", err))
		}
		return p.plan(ctx, j)

	case models.JobExecuting:
		// Resumed after approval: the validated plan was persisted before
		// the suspension.
		if j.Plan == nil {
			return failure(models.NewCodedError(models.CodeHandlerFailed,
				"job resumed in executing without a persisted plan"))
		}
		return p.executePlan(ctx, j.ID, j.Plan)
	}

	return failure(models.NewCodedError(models.CodeHandlerFailed,
		fmt.Sprintf("job leased in unexpected status %s", j.Status)))
}

// plan runs the planning and validation loop: bounded fast-path
// reroutes, bounded revision cycles, and the plan-hash guard against
// revalidating an unchanged plan.
func (p *Processor) plan(ctx context.Context, j *ent.Job) *queue.ExecutionResult {
	var (
		replans       int
		revisions     int
		forceFullPath bool
		revisionNotes []string
		lastHash      string
	)

	for {
		if err := ctx.Err(); err != nil {
			return failure(models.NewCodedError(models.CodeJobCancelled, "planning interrupted"))
		}

		response, cerr := p.dispatchPlan(ctx, j, forceFullPath, revisionNotes)
		if cerr != nil {
			return failure(cerr)
		}
		p.recordPlanUsage(ctx, j, response.Usage)

		if response.Path == "fast" {
			if response.RequiresReroute {
				replans++
				if replans > p.opts.Config.MaxReplanCount {
					return failure(models.NewCodedError(models.CodePlanFailed,
						"fast-path replies kept claiming deferred actions"))
				}
				slog.Info("Rerouting fast-path reply through full planning",
					"job_id", j.ID, "replan", replans)
				forceFullPath = true
				continue
			}
			return &queue.ExecutionResult{
				Status: models.JobCompleted,
				Result: &models.JobResult{Path: "fast", Text: response.Text},
			}
		}

		plan := response.Plan
		if plan == nil {
			return failure(models.NewCodedError(models.CodePlanFailed, "full-path response carried no plan"))
		}
		if p.opts.Publisher != nil {
			p.opts.Publisher.PublishPlanCreated(j.ID, plan.ID, response.Path, len(plan.Steps))
		}

		if err := p.opts.Queue.Transition(ctx, j.ID, models.JobPlanning, models.JobValidating); err != nil {
			return failure(models.WrapCoded(models.CodeHandlerFailed, "entering validation", err))
		}

		// An unchanged plan is never revalidated; a revision cycle that
		// reproduces it cannot make progress.
		hash := plan.Hash()
		if hash != "" && hash == lastHash {
			return failure(models.NewCodedError(models.CodeMaxRevisionsReached,
				"planner returned an unchanged plan after a revision request"))
		}
		lastHash = hash

		validation, cerr := p.dispatchValidate(ctx, plan)
		if cerr != nil {
			return failure(cerr)
		}
		p.persistPlan(ctx, j.ID, plan, validation)
		if p.opts.Publisher != nil {
			p.opts.Publisher.PublishValidationVerdict(j.ID, validation.Verdict, validation.OverallRisk)
		}

		switch validation.Verdict {
		case models.VerdictApproved:
			if err := p.opts.Queue.Transition(ctx, j.ID, models.JobValidating, models.JobExecuting); err != nil {
				return failure(models.WrapCoded(models.CodeHandlerFailed, "entering execution", err))
			}
			return p.executePlan(ctx, j.ID, plan)

		case models.VerdictRejected:
			return failure(models.NewCodedError(models.CodePlanRejected,
				rejectionMessage(validation)))

		case models.VerdictNeedsRevision:
			revisions++
			if revisions > p.opts.Config.MaxRevisionCount {
				return failure(models.NewCodedError(models.CodeMaxRevisionsReached,
					fmt.Sprintf("plan still needs revision after %d cycles", p.opts.Config.MaxRevisionCount)))
			}
			revisionNotes = revisionReasons(validation)
			slog.Info("Plan needs revision, replanning",
				"job_id", j.ID, "revision", revisions, "notes", len(revisionNotes))
			if err := p.opts.Queue.Transition(ctx, j.ID, models.JobValidating, models.JobPlanning); err != nil {
				return failure(models.WrapCoded(models.CodeHandlerFailed, "re-entering planning", err))
			}
			continue

		case models.VerdictNeedsUserApproval:
			// Trust mode only overrides needs_user_approval, never
			// rejected or needs_revision.
			if trustMode(j) {
				slog.Info("Trust mode active, proceeding without approval", "job_id", j.ID)
				if err := p.opts.Queue.Transition(ctx, j.ID, models.JobValidating, models.JobExecuting); err != nil {
					return failure(models.WrapCoded(models.CodeHandlerFailed, "entering execution", err))
				}
				return p.executePlan(ctx, j.ID, plan)
			}
			if cerr := p.suspendForApproval(ctx, j.ID); cerr != nil {
				return failure(cerr)
			}
			return &queue.ExecutionResult{Status: models.JobAwaitingApproval}

		default:
			return failure(models.NewCodedError(models.CodeValidationFailed,
				fmt.Sprintf("unknown verdict %q", validation.Verdict)))
		}
	}
}

// recordPlanUsage folds the planner's token usage into the job's
// cumulative count and books the call against the daily spend. The
// updated count rides the in-memory row, so the next plan.request in
// this loop carries it; scout enforces the budget on that count.
// Accounting is best-effort and never fails the job.
func (p *Processor) recordPlanUsage(ctx context.Context, j *ent.Job, usage *models.TokenUsage) {
	if usage == nil {
		return
	}
	total := cumulativeTokens(j) + usage.Total()
	if j.Metadata == nil {
		j.Metadata = map[string]any{}
	}
	j.Metadata["cumulativeTokens"] = total
	if _, err := p.opts.Client.Job.UpdateOneID(j.ID).SetMetadata(j.Metadata).Save(ctx); err != nil {
		slog.Error("Failed to persist token usage", "job_id", j.ID, "error", err)
	}

	if p.opts.Cost == nil {
		return
	}
	_, err := p.opts.Cost.RecordCall(ctx, cost.CallRecord{
		JobID:        j.ID,
		Component:    scout.ComponentID,
		Provider:     usage.Provider,
		Model:        usage.Model,
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		DurationMs:   usage.DurationMs,
	})
	if err != nil {
		slog.Error("Failed to record planner call", "job_id", j.ID, "error", err)
	}
}

// suspendForApproval issues the approval nonce and parks the job in
// awaiting_approval. The lease is released by the transition; any
// worker resumes the job once the approval moves it back to executing.
func (p *Processor) suspendForApproval(ctx context.Context, jobID string) *models.CodedError {
	nonce := uuid.NewString()
	row, err := p.opts.Client.Job.Get(ctx, jobID)
	if err != nil {
		return models.WrapCoded(models.CodeHandlerFailed, "loading job for approval", err)
	}
	metadata := row.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["approvalNonce"] = nonce
	metadata["approvalNonceExpiresAt"] = time.Now().Add(ApprovalNonceTTL).UTC().Format(time.RFC3339)
	if _, err := row.Update().SetMetadata(metadata).Save(ctx); err != nil {
		return models.WrapCoded(models.CodeHandlerFailed, "storing approval nonce", err)
	}

	if err := p.opts.Queue.Transition(ctx, jobID, models.JobValidating, models.JobAwaitingApproval); err != nil {
		return models.WrapCoded(models.CodeHandlerFailed, "entering awaiting_approval", err)
	}
	slog.Info("Job suspended for user approval", "job_id", jobID)
	return nil
}

// executePlan hands the validated plan to the DAG executor and maps its
// overall status onto the job.
func (p *Processor) executePlan(ctx context.Context, jobID string, plan *models.Plan) *queue.ExecutionResult {
	executor := dag.NewExecutor(dag.Config{
		MaxConcurrency: p.opts.Config.MaxConcurrency,
		IsCircuitOpen:  p.opts.IsCircuitOpen,
	})

	result, err := executor.Execute(ctx, plan.Steps, p.stepExecutor(jobID))
	if err != nil {
		var coded *models.CodedError
		if !errors.As(err, &coded) {
			coded = models.WrapCoded(models.CodeHandlerFailed, "plan execution preflight failed", err)
		}
		return failure(coded)
	}

	jobResult := &models.JobResult{
		Path:        "full",
		Status:      result.Status,
		StepResults: stepResultInfos(result.StepResults),
		DurationMs:  result.DurationMs,
	}

	// Partial results still complete the job; the per-step outcomes carry
	// the failures.
	if result.Status == dag.StatusFailed {
		p.persistResult(ctx, jobID, jobResult)
		return failure(models.NewCodedError(models.CodeGearExecutionFailed,
			"every plan step failed or was skipped by a failure"))
	}
	return &queue.ExecutionResult{Status: models.JobCompleted, Result: jobResult}
}

// stepExecutor adapts the sandbox dispatch into the DAG executor's
// signature, with per-step timeout, bounded retries, and progress
// events.
func (p *Processor) stepExecutor(jobID string) dag.StepExecutor {
	return func(ctx context.Context, step models.Step) (any, error) {
		start := time.Now()
		var output any

		err := retry.Do(ctx, p.opts.MaxStepAttempts, func() error {
			stepCtx := ctx
			if p.opts.Config.StepTimeout > 0 {
				var cancel context.CancelFunc
				stepCtx, cancel = context.WithTimeout(ctx, p.opts.Config.StepTimeout)
				defer cancel()
			}
			out, dispatchErr := p.dispatchExecute(stepCtx, jobID, step)
			if dispatchErr != nil {
				return dispatchErr
			}
			output = out
			return nil
		})

		durationMs := time.Since(start).Milliseconds()
		if p.opts.Publisher != nil {
			status := models.StepCompleted
			if err != nil {
				status = models.StepFailed
			}
			p.opts.Publisher.PublishStepProgress(jobID, step.ID, status, "", durationMs)
		}
		return output, err
	}
}

// dispatchPlan sends plan.request and decodes the planner's response.
func (p *Processor) dispatchPlan(ctx context.Context, j *ent.Job, forceFullPath bool, notes []string) (*models.PlanResponse, *models.CodedError) {
	payload := map[string]any{
		"jobId":            j.ID,
		"userMessage":      userMessage(j),
		"cumulativeTokens": cumulativeTokens(j),
	}
	if history, ok := j.Metadata["conversationHistory"]; ok {
		payload["conversationHistory"] = history
	}
	if forceFullPath {
		payload["forceFullPath"] = true
	}
	if len(notes) > 0 {
		payload["revisionNotes"] = notes
	}

	response, cerr := p.dispatch(ctx, scout.ComponentID, models.MsgPlanRequest, payload, p.opts.Config.PlanTimeout)
	if cerr != nil {
		return nil, cerr
	}

	decoded := &models.PlanResponse{}
	if err := remarshal(response.Payload, decoded); err != nil {
		return nil, models.WrapCoded(models.CodePlanFailed, "decoding plan response", err)
	}
	if decoded.Path != "fast" && decoded.Path != "full" {
		return nil, models.NewCodedError(models.CodePlanFailed,
			fmt.Sprintf("unknown plan path %q", decoded.Path))
	}
	return decoded, nil
}

// dispatchValidate sends validate.request carrying only the plan. The
// router's scrubber enforces the same restriction defensively.
func (p *Processor) dispatchValidate(ctx context.Context, plan *models.Plan) (*models.ValidationResult, *models.CodedError) {
	planMap := map[string]any{}
	if err := remarshal(plan, &planMap); err != nil {
		return nil, models.WrapCoded(models.CodeValidationFailed, "encoding plan", err)
	}

	response, cerr := p.dispatch(ctx, sentinel.ComponentID, models.MsgValidateRequest,
		map[string]any{"plan": planMap}, p.opts.Config.ValidationTimeout)
	if cerr != nil {
		return nil, cerr
	}

	raw, ok := response.Payload["validation"]
	if !ok {
		return nil, models.NewCodedError(models.CodeValidationFailed, "validator response carried no verdict")
	}
	validation := &models.ValidationResult{}
	if err := remarshal(raw, validation); err != nil {
		return nil, models.WrapCoded(models.CodeValidationFailed, "decoding validation", err)
	}
	return validation, nil
}

// dispatchExecute sends one execute.request to the sandbox host.
func (p *Processor) dispatchExecute(ctx context.Context, jobID string, step models.Step) (any, error) {
	response, cerr := p.dispatch(ctx, sandbox.ComponentID, models.MsgExecuteRequest, map[string]any{
		"plugin":     step.Gear,
		"action":     step.Action,
		"parameters": step.Parameters,
		"stepId":     step.ID,
		"jobId":      jobID,
	}, 0)
	if cerr != nil {
		return nil, cerr
	}

	if rawErr, ok := response.Payload["error"]; ok && rawErr != nil {
		coded := &models.CodedError{Code: models.CodeGearError, Message: "gear execution failed"}
		if err := remarshal(rawErr, coded); err == nil && coded.Code == models.CodeGearTimeout {
			coded.Retriable = true
		}
		return nil, coded
	}
	if output, ok := response.Payload["output"]; ok {
		return output, nil
	}
	return response.Payload, nil
}

// dispatch sends a signed request and unwraps error envelopes into
// CodedErrors.
func (p *Processor) dispatch(ctx context.Context, to string, msgType models.MessageType, payload map[string]any, timeout time.Duration) (*envelope.Envelope, *models.CodedError) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	request, err := p.opts.Signer.NewRequest(to, msgType, payload)
	if err != nil {
		return nil, models.WrapCoded(models.CodeHandlerFailed, "signing request", err)
	}
	response, err := p.opts.Router.Dispatch(ctx, request)
	if err != nil {
		var coded *models.CodedError
		if errors.As(err, &coded) {
			return nil, coded
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, models.NewCodedError(models.CodeJobTimeout,
				fmt.Sprintf("%s dispatch timed out", msgType))
		}
		return nil, models.WrapCoded(models.CodeHandlerFailed, fmt.Sprintf("dispatching %s", msgType), err)
	}
	if response.Type == models.MsgError {
		code, _ := response.Payload["code"].(string)
		message, _ := response.Payload["message"].(string)
		if code == "" {
			code = models.CodeHandlerFailed
		}
		return nil, models.NewCodedError(code, message)
	}
	return response, nil
}

// persistPlan stores the in-flight plan and validation on the job row.
func (p *Processor) persistPlan(ctx context.Context, jobID string, plan *models.Plan, validation *models.ValidationResult) {
	update := p.opts.Client.Job.UpdateOneID(jobID).SetPlan(plan)
	if validation != nil {
		update.SetValidation(validation)
	}
	if _, err := update.Save(ctx); err != nil {
		slog.Error("Failed to persist plan", "job_id", jobID, "error", err)
	}
}

func (p *Processor) persistResult(ctx context.Context, jobID string, result *models.JobResult) {
	if _, err := p.opts.Client.Job.UpdateOneID(jobID).SetResult(result).Save(ctx); err != nil {
		slog.Error("Failed to persist job result", "job_id", jobID, "error", err)
	}
}

func failure(err *models.CodedError) *queue.ExecutionResult {
	status := models.JobFailed
	if err.Code == models.CodeJobCancelled {
		status = models.JobCancelled
	}
	return &queue.ExecutionResult{Status: status, Error: err}
}

func trustMode(j *ent.Job) bool {
	v, _ := j.Metadata["trustMode"].(bool)
	return v
}

// userMessage extracts the user's text from the job metadata. Enqueue
// stores content either as a bare string or as a map with a "text" key.
func userMessage(j *ent.Job) string {
	switch v := j.Metadata["content"].(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v["text"].(string); ok {
			return s
		}
	}
	return ""
}

func cumulativeTokens(j *ent.Job) int {
	switch v := j.Metadata["cumulativeTokens"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return 0
}

func rejectionMessage(v *models.ValidationResult) string {
	reasons := revisionReasons(v)
	if len(reasons) == 0 {
		return "plan rejected by validator"
	}
	return "plan rejected: " + strings.Join(reasons, "; ")
}

// revisionReasons flattens the validator's per-step reasons and policy
// notes for the next planning round.
func revisionReasons(v *models.ValidationResult) []string {
	var out []string
	out = append(out, v.PolicyNotes...)
	for _, sv := range v.StepResults {
		if sv.Verdict == models.VerdictApproved {
			continue
		}
		for _, reason := range sv.Reasons {
			out = append(out, fmt.Sprintf("%s: %s", sv.StepID, reason))
		}
	}
	return out
}

func stepResultInfos(results []dag.StepResult) []models.StepResultInfo {
	out := make([]models.StepResultInfo, len(results))
	for i, r := range results {
		out[i] = models.StepResultInfo{
			StepID:     r.StepID,
			Status:     r.Status,
			DurationMs: r.DurationMs,
			Result:     r.Result,
			Error:      r.Error,
		}
	}
	return out
}

// remarshal converts between payload maps and typed structs through
// JSON.
func remarshal(from any, to any) error {
	raw, err := json.Marshal(from)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, to)
}

package events

import (
	"time"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// Publisher is the typed event surface the core components publish
// through. All methods are best-effort and non-blocking.
type Publisher struct {
	broker *Broker
}

// NewPublisher creates a publisher over the broker.
func NewPublisher(broker *Broker) *Publisher {
	return &Publisher{broker: broker}
}

func base(eventType, jobID string) BasePayload {
	return BasePayload{
		Type:      eventType,
		JobID:     jobID,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}
}

// PublishJobStatus broadcasts a job status change to the job channel and
// the global channel.
func (p *Publisher) PublishJobStatus(jobID string, status models.JobStatus, jobErr *models.CodedError) {
	payload := JobStatusPayload{
		BasePayload: base(EventTypeJobStatus, jobID),
		Status:      status,
		Error:       jobErr,
	}
	_ = p.broker.Publish(JobChannel(jobID), payload)
	_ = p.broker.Publish(GlobalChannel, payload)
}

// PublishPlanCreated broadcasts that a plan (or fast-path reply) exists.
func (p *Publisher) PublishPlanCreated(jobID, planID, path string, stepCount int) {
	_ = p.broker.Publish(JobChannel(jobID), PlanCreatedPayload{
		BasePayload: base(EventTypePlanCreated, jobID),
		PlanID:      planID,
		Path:        path,
		StepCount:   stepCount,
	})
}

// PublishValidationVerdict broadcasts the validator's decision.
func (p *Publisher) PublishValidationVerdict(jobID string, verdict models.Verdict, risk models.RiskLevel) {
	_ = p.broker.Publish(JobChannel(jobID), ValidationVerdictPayload{
		BasePayload: base(EventTypeValidationVerdict, jobID),
		Verdict:     verdict,
		OverallRisk: risk,
	})
}

// PublishStepProgress broadcasts one step's settlement.
func (p *Publisher) PublishStepProgress(jobID, stepID string, status models.StepStatus, skipReason string, durationMs int64) {
	_ = p.broker.Publish(JobChannel(jobID), StepProgressPayload{
		BasePayload: base(EventTypeStepProgress, jobID),
		StepID:      stepID,
		Status:      status,
		SkipReason:  skipReason,
		DurationMs:  durationMs,
	})
}

// PublishSandboxLog relays a child process log or progress line.
func (p *Publisher) PublishSandboxLog(jobID, gearID, stepID, message string, percent float64) {
	_ = p.broker.Publish(JobChannel(jobID), SandboxLogPayload{
		BasePayload: base(EventTypeSandboxLog, jobID),
		GearID:      gearID,
		StepID:      stepID,
		Message:     message,
		Percent:     percent,
	})
}

// Package sentinel implements the plan validator. It operates behind an
// information barrier: the only input to a verdict is the plan itself
// and the configured policy. It never sees user messages, conversation
// history, or the plugin catalog, and it never talks to the planner.
package sentinel

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gearbox-dev/gearbox/pkg/bus"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/rules"
)

// ComponentID is the validator's address on the bus.
const ComponentID = "validator"

// Sentinel validates plans against the hard policy floors and the
// standing rules.
type Sentinel struct {
	signer *envelope.Signer
	policy *Policy
	rules  *rules.Engine // may be nil (standing rules disabled)
}

// New creates a validator. rules may be nil.
func New(signer *envelope.Signer, policy *Policy, ruleEngine *rules.Engine) *Sentinel {
	return &Sentinel{signer: signer, policy: policy, rules: ruleEngine}
}

// Register binds the validator on the bus. The only handler registered
// is for the validator id; it accepts only validate.request.
func (s *Sentinel) Register(registry *bus.Registry) error {
	return registry.Register(ComponentID, s.Handle)
}

// Handle services one envelope. Types other than validate.request get
// an error envelope back.
func (s *Sentinel) Handle(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	if env.Type != models.MsgValidateRequest {
		return s.signer.NewError(env, models.CodeInvalidEnvelope,
			fmt.Sprintf("validator does not accept %s", env.Type))
	}

	plan, err := planFromPayload(env.Payload)
	if err != nil {
		return s.signer.NewError(env, models.CodeValidationFailed, err.Error())
	}

	result, err := s.Validate(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("validating plan %s: %w", plan.ID, err)
	}

	slog.Info("Plan validated",
		"plan_id", plan.ID,
		"job_id", plan.JobID,
		"verdict", result.Verdict,
		"overall_risk", result.OverallRisk,
		"steps", len(plan.Steps))

	return s.signer.NewResponse(env, models.MsgValidateResponse, map[string]any{
		"validation": resultToMap(result),
	})
}

// Validate derives the verdict for a plan. Step results are emitted in
// plan order; the overall risk is the maximum step risk. Standing rules
// may upgrade needs_user_approval to approved or force a rejection, but
// never lower a hard floor.
func (s *Sentinel) Validate(ctx context.Context, plan *models.Plan) (*models.ValidationResult, error) {
	if err := plan.Validate(); err != nil {
		return &models.ValidationResult{
			Verdict:     models.VerdictNeedsRevision,
			OverallRisk: models.RiskLow,
			PolicyNotes: []string{fmt.Sprintf("plan structure invalid: %v", err)},
		}, nil
	}

	result := &models.ValidationResult{
		Verdict:     models.VerdictApproved,
		OverallRisk: models.RiskLow,
		StepResults: make([]models.StepValidation, 0, len(plan.Steps)),
	}

	for _, step := range plan.Steps {
		sv := s.policy.EvaluateStep(step)

		if s.rules != nil && sv.Verdict != models.VerdictRejected {
			action := step.Gear + ":" + step.Action
			rule, err := s.rules.MatchRule(ctx, action)
			if err != nil {
				return nil, fmt.Errorf("matching standing rules for %s: %w", action, err)
			}
			if rule != nil {
				switch string(rule.Verdict) {
				case "deny":
					sv.Verdict = models.VerdictRejected
					sv.Reasons = append(sv.Reasons, fmt.Sprintf("denied by standing rule %s", rule.ID))
				case "approve":
					if sv.Verdict == models.VerdictNeedsUserApproval {
						sv.Verdict = models.VerdictApproved
						sv.Reasons = append(sv.Reasons, fmt.Sprintf("approved by standing rule %s", rule.ID))
						s.rules.RecordApproval(ctx, rule.ID)
					}
				}
			}
		}

		result.StepResults = append(result.StepResults, sv)
		result.OverallRisk = models.MaxRisk(result.OverallRisk, step.RiskLevel)
		result.Verdict = worseVerdict(result.Verdict, sv.Verdict)
	}

	return result, nil
}

// worseVerdict keeps the more severe of two verdicts:
// rejected > needs_user_approval > approved.
func worseVerdict(a, b models.Verdict) models.Verdict {
	rank := func(v models.Verdict) int {
		switch v {
		case models.VerdictRejected:
			return 2
		case models.VerdictNeedsUserApproval:
			return 1
		default:
			return 0
		}
	}
	if rank(b) > rank(a) {
		return b
	}
	return a
}

// planFromPayload decodes the scrubbed payload's plan. Only the plan key
// is consulted; anything else the scrubber let through is ignored.
func planFromPayload(payload map[string]any) (*models.Plan, error) {
	raw, ok := payload["plan"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("payload has no plan")
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("re-encoding plan: %w", err)
	}
	plan := &models.Plan{}
	if err := json.Unmarshal(encoded, plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return plan, nil
}

// resultToMap flattens the validation result into an envelope payload.
func resultToMap(result *models.ValidationResult) map[string]any {
	encoded, err := json.Marshal(result)
	if err != nil {
		return map[string]any{"verdict": string(result.Verdict)}
	}
	out := map[string]any{}
	_ = json.Unmarshal(encoded, &out)
	return out
}

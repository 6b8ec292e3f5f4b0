// Package scout implements the planner client: it turns a user message
// plus conversation context into either a direct textual reply (fast
// path) or a structured plan of gear invocations (full path). It is
// polymorphic over the LLM provider and enforces the per-job token
// budget before every dispatch.
package scout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gearbox-dev/gearbox/pkg/bus"
	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/retry"
)

// ComponentID is the planner's address on the bus.
const ComponentID = "planner"

// Catalog exposes the enabled gear manifests for prompt construction.
// Implemented by the gear registry's copy-on-write cache.
type Catalog interface {
	Manifests() []*models.Manifest
}

// Config tunes the planner.
type Config struct {
	// TokenBudget caps a job's cumulative token usage. Zero disables
	// the cap.
	TokenBudget int
	// StallTimeout bounds the wait for the next stream chunk before the
	// stream is retried.
	StallTimeout time.Duration
	// MaxStreamRetries bounds stream retries on stall or provider error.
	MaxStreamRetries int
	// Temperature passed to the provider.
	Temperature float32
}

// DefaultConfig returns the planner defaults.
func DefaultConfig() Config {
	return Config{
		TokenBudget:      100_000,
		StallTimeout:     30 * time.Second,
		MaxStreamRetries: 3,
		Temperature:      0.2,
	}
}

// Scout is the planner component.
type Scout struct {
	signer  *envelope.Signer
	client  LLMClient
	catalog Catalog // may be nil (no gears installed)
	cfg     Config
}

// New creates a planner. catalog may be nil.
func New(signer *envelope.Signer, client LLMClient, catalog Catalog, cfg Config) *Scout {
	return &Scout{signer: signer, client: client, catalog: catalog, cfg: cfg}
}

// Register binds the planner on the bus.
func (s *Scout) Register(registry *bus.Registry) error {
	return registry.Register(ComponentID, s.Handle)
}

// Handle services one plan.request envelope.
func (s *Scout) Handle(ctx context.Context, env *envelope.Envelope) (*envelope.Envelope, error) {
	if env.Type != models.MsgPlanRequest {
		return s.signer.NewError(env, models.CodeInvalidEnvelope,
			fmt.Sprintf("planner does not accept %s", env.Type))
	}

	req, err := requestFromPayload(env.Payload)
	if err != nil {
		return s.signer.NewError(env, models.CodeInvalidEnvelope, err.Error())
	}

	if s.cfg.TokenBudget > 0 && req.CumulativeTokens >= s.cfg.TokenBudget {
		slog.Warn("Token budget exhausted",
			"job_id", req.JobID,
			"cumulative_tokens", req.CumulativeTokens,
			"budget", s.cfg.TokenBudget)
		return s.signer.NewError(env, models.CodeBudgetExceeded,
			fmt.Sprintf("job consumed %d of %d budgeted tokens", req.CumulativeTokens, s.cfg.TokenBudget))
	}

	response, err := s.Plan(ctx, req)
	if err != nil {
		return s.signer.NewError(env, models.CodePlanFailed, err.Error())
	}

	return s.signer.NewResponse(env, models.MsgPlanResponse, responseToMap(response))
}

// PlanRequest is the decoded plan.request payload.
type PlanRequest struct {
	JobID               string
	UserMessage         string
	ConversationHistory []Message
	CumulativeTokens    int
	ForceFullPath       bool
}

// Plan produces a fast-path text or a full plan for the request.
func (s *Scout) Plan(ctx context.Context, req *PlanRequest) (*models.PlanResponse, error) {
	messages := s.buildPrompt(req)

	start := time.Now()
	text, err := s.complete(ctx, messages)
	if err != nil {
		return nil, err
	}

	response := s.parse(req.JobID, text)
	response.Usage = s.usage(messages, text, time.Since(start))

	// Fast-path self-check: a textual reply claiming work was performed
	// must be rerouted through the full path so the work actually runs.
	if response.Path == "fast" && requiresReroute(response.Text) {
		slog.Info("Fast-path reply claims deferred action, flagging reroute", "job_id", req.JobID)
		response.RequiresReroute = true
	}

	slog.Info("Plan produced",
		"job_id", req.JobID,
		"path", response.Path,
		"reroute", response.RequiresReroute,
		"tokens", response.Usage.Total())
	return response, nil
}

// usage estimates the token accounting for one completion. Providers on
// the streaming API do not report usage per chunk, so the same estimator
// that budgets the prompt window measures the call.
func (s *Scout) usage(messages []Message, reply string, elapsed time.Duration) *models.TokenUsage {
	input := 0
	for _, m := range messages {
		input += s.client.EstimateTokens(m.Content)
	}
	provider, model := s.client.ProviderInfo()
	return &models.TokenUsage{
		InputTokens:  input,
		OutputTokens: s.client.EstimateTokens(reply),
		Provider:     provider,
		Model:        model,
		DurationMs:   elapsed.Milliseconds(),
	}
}

// complete runs one streaming completion, retrying the whole stream on
// stall or retriable provider error.
func (s *Scout) complete(ctx context.Context, messages []Message) (string, error) {
	var text string
	err := retry.Do(ctx, s.cfg.MaxStreamRetries, func() error {
		collected, err := s.collect(ctx, messages)
		if err != nil {
			return err
		}
		text = collected
		return nil
	})
	return text, err
}

// collect drives one stream to completion, bounding the wait for each
// chunk by the stall timeout.
func (s *Scout) collect(ctx context.Context, messages []Message) (string, error) {
	chunks, err := s.client.Chat(ctx, ChatRequest{
		Messages:    messages,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", &models.CodedError{
			Code: models.CodePlanFailed, Message: "starting completion stream",
			Retriable: true, Cause: err.Error(),
		}
	}

	var b strings.Builder
	stall := time.NewTimer(s.cfg.StallTimeout)
	defer stall.Stop()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-stall.C:
			return "", &models.CodedError{
				Code: models.CodePlanFailed, Message: "completion stream stalled",
				Retriable: true,
			}
		case chunk, ok := <-chunks:
			if !ok {
				return b.String(), nil
			}
			if chunk.Err != nil {
				return "", &models.CodedError{
					Code: models.CodePlanFailed, Message: "provider stream error",
					Retriable: true, Cause: chunk.Err.Error(),
				}
			}
			if !chunk.IsThinking {
				b.WriteString(chunk.Content)
			}
			if chunk.IsFinal {
				return b.String(), nil
			}
			if !stall.Stop() {
				<-stall.C
			}
			stall.Reset(s.cfg.StallTimeout)
		}
	}
}

// buildPrompt assembles the provider messages: system instructions with
// the gear catalog, trimmed history, and the user message. History is
// dropped oldest-first until the estimate fits the context window.
func (s *Scout) buildPrompt(req *PlanRequest) []Message {
	system := s.systemPrompt(req.ForceFullPath)
	history := req.ConversationHistory

	budget := s.client.MaxContextTokens()
	for len(history) > 0 {
		total := s.client.EstimateTokens(system) + s.client.EstimateTokens(req.UserMessage)
		for _, m := range history {
			total += s.client.EstimateTokens(m.Content)
		}
		if total <= budget {
			break
		}
		history = history[1:]
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: req.UserMessage})
	return messages
}

// systemPrompt renders the planning instructions and the available gear
// actions.
func (s *Scout) systemPrompt(forceFullPath bool) string {
	var b strings.Builder
	b.WriteString("You are a task planner. Answer directly when the request needs no tools. ")
	b.WriteString("When tools are required, reply with a JSON object {\"steps\": [...]} where each step has ")
	b.WriteString("id, plugin, action, parameters, riskLevel, and optional dependsOn.\n")
	if forceFullPath {
		b.WriteString("The previous reply claimed an action was performed; you MUST produce a plan now.\n")
	}
	if s.catalog != nil {
		b.WriteString("Available plugins:\n")
		for _, m := range s.catalog.Manifests() {
			for _, a := range m.Actions {
				fmt.Fprintf(&b, "- %s:%s %s\n", m.ID, a.Name, a.Description)
			}
		}
	}
	return b.String()
}

var fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")

// parse classifies the provider's reply: a JSON object carrying steps is
// a full plan, anything else is a fast-path text.
func (s *Scout) parse(jobID, text string) *models.PlanResponse {
	candidate := strings.TrimSpace(text)
	if m := fencedJSON.FindStringSubmatch(candidate); m != nil {
		candidate = m[1]
	}

	if strings.HasPrefix(candidate, "{") {
		var plan models.Plan
		if err := json.Unmarshal([]byte(candidate), &plan); err == nil && len(plan.Steps) > 0 {
			plan.ID = uuid.NewString()
			plan.JobID = jobID
			return &models.PlanResponse{Path: "full", Plan: &plan}
		}
	}

	return &models.PlanResponse{Path: "fast", Text: strings.TrimSpace(text)}
}

// requestFromPayload decodes a plan.request payload.
func requestFromPayload(payload map[string]any) (*PlanRequest, error) {
	jobID, _ := payload["jobId"].(string)
	userMessage, _ := payload["userMessage"].(string)
	if jobID == "" || userMessage == "" {
		return nil, fmt.Errorf("plan.request requires jobId and userMessage")
	}

	req := &PlanRequest{JobID: jobID, UserMessage: userMessage}
	if v, ok := payload["cumulativeTokens"].(float64); ok {
		req.CumulativeTokens = int(v)
	} else if v, ok := payload["cumulativeTokens"].(int); ok {
		req.CumulativeTokens = v
	}
	if v, ok := payload["forceFullPath"].(bool); ok {
		req.ForceFullPath = v
	}

	if raw, ok := payload["conversationHistory"]; ok && raw != nil {
		encoded, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("re-encoding conversation history: %w", err)
		}
		if err := json.Unmarshal(encoded, &req.ConversationHistory); err != nil {
			return nil, fmt.Errorf("decoding conversation history: %w", err)
		}
	}
	return req, nil
}

// responseToMap flattens a plan response into an envelope payload.
func responseToMap(response *models.PlanResponse) map[string]any {
	encoded, err := json.Marshal(response)
	if err != nil {
		return map[string]any{"path": response.Path, "text": response.Text}
	}
	out := map[string]any{}
	_ = json.Unmarshal(encoded, &out)
	return out
}

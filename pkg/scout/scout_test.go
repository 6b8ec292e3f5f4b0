package scout

import (
	"context"
	"crypto/ed25519"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/envelope"
	"github.com/gearbox-dev/gearbox/pkg/models"
)

// fakeLLM replays canned responses, one per Chat call.
type fakeLLM struct {
	responses []string
	errs      []error
	calls     int
	requests  []ChatRequest
	maxTokens int
}

func (f *fakeLLM) Chat(ctx context.Context, req ChatRequest) (<-chan StreamChunk, error) {
	f.requests = append(f.requests, req)
	i := f.calls
	f.calls++

	ch := make(chan StreamChunk, 4)
	go func() {
		defer close(ch)
		if i < len(f.errs) && f.errs[i] != nil {
			ch <- StreamChunk{Err: f.errs[i]}
			return
		}
		text := f.responses[min(i, len(f.responses)-1)]
		// Split into two chunks to exercise accumulation.
		half := len(text) / 2
		ch <- StreamChunk{Content: text[:half]}
		ch <- StreamChunk{Content: text[half:], IsFinal: true}
	}()
	return ch, nil
}

func (f *fakeLLM) EstimateTokens(text string) int { return len(text) / 4 }

func (f *fakeLLM) ProviderInfo() (string, string) { return "fake", "fake-model" }

func (f *fakeLLM) MaxContextTokens() int {
	if f.maxTokens > 0 {
		return f.maxTokens
	}
	return 8192
}

func testScout(t *testing.T, llm LLMClient) *Scout {
	t.Helper()
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	cfg := DefaultConfig()
	cfg.StallTimeout = time.Second
	return New(envelope.NewSigner(ComponentID, priv), llm, nil, cfg)
}

func planPayload(jobID, userMessage string) map[string]any {
	return map[string]any{"jobId": jobID, "userMessage": userMessage}
}

func TestPlanFastPath(t *testing.T) {
	llm := &fakeLLM{responses: []string{"The capital of France is Paris."}}
	s := testScout(t, llm)

	resp, err := s.Plan(context.Background(), &PlanRequest{JobID: "j1", UserMessage: "What is the capital of France?"})
	require.NoError(t, err)
	assert.Equal(t, "fast", resp.Path)
	assert.Equal(t, "The capital of France is Paris.", resp.Text)
	assert.False(t, resp.RequiresReroute)
}

func TestPlanFastPathReroute(t *testing.T) {
	llm := &fakeLLM{responses: []string{"I've gone ahead and created the file for you."}}
	s := testScout(t, llm)

	resp, err := s.Plan(context.Background(), &PlanRequest{JobID: "j1", UserMessage: "Create notes.txt"})
	require.NoError(t, err)
	assert.Equal(t, "fast", resp.Path)
	assert.True(t, resp.RequiresReroute, "deferred-action language must flag a reroute")
}

func TestPlanFullPath(t *testing.T) {
	llm := &fakeLLM{responses: []string{"```json\n" + `{"steps":[{"id":"s1","plugin":"file-manager","action":"read_file","parameters":{"path":"/workspace/test.txt"},"riskLevel":"low"}]}` + "\n```"}}
	s := testScout(t, llm)

	resp, err := s.Plan(context.Background(), &PlanRequest{JobID: "j1", UserMessage: "Read test.txt"})
	require.NoError(t, err)
	assert.Equal(t, "full", resp.Path)
	require.NotNil(t, resp.Plan)
	assert.Equal(t, "j1", resp.Plan.JobID)
	assert.NotEmpty(t, resp.Plan.ID)
	require.Len(t, resp.Plan.Steps, 1)
	assert.Equal(t, "file-manager", resp.Plan.Steps[0].Gear)
}

func TestPlanReportsTokenUsage(t *testing.T) {
	llm := &fakeLLM{responses: []string{"The capital of France is Paris."}}
	s := testScout(t, llm)

	resp, err := s.Plan(context.Background(), &PlanRequest{JobID: "j1", UserMessage: "What is the capital of France?"})
	require.NoError(t, err)
	require.NotNil(t, resp.Usage)
	assert.Positive(t, resp.Usage.InputTokens, "prompt tokens are counted")
	assert.Equal(t, llm.EstimateTokens(resp.Text), resp.Usage.OutputTokens)
	assert.Equal(t, "fake", resp.Usage.Provider)
	assert.Equal(t, "fake-model", resp.Usage.Model)

	// Usage survives the envelope round-trip of Handle.
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	caller := envelope.NewSigner("pipeline", priv)
	req, err := caller.NewRequest(ComponentID, models.MsgPlanRequest, planPayload("j1", "hello"))
	require.NoError(t, err)
	handled, err := s.Handle(context.Background(), req)
	require.NoError(t, err)
	usage, ok := handled.Payload["usage"].(map[string]any)
	require.True(t, ok, "plan.response carries usage")
	assert.NotZero(t, usage["outputTokens"])
}

func TestPlanRetriesProviderError(t *testing.T) {
	llm := &fakeLLM{
		errs:      []error{errors.New("upstream 503"), nil},
		responses: []string{"unused", "Recovered reply."},
	}
	s := testScout(t, llm)

	resp, err := s.Plan(context.Background(), &PlanRequest{JobID: "j1", UserMessage: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 2, llm.calls)
	assert.Equal(t, "Recovered reply.", resp.Text)
}

func TestBuildPromptTrimsHistoryOldestFirst(t *testing.T) {
	llm := &fakeLLM{maxTokens: 60, responses: []string{"x"}}
	s := testScout(t, llm)

	long := make([]Message, 6)
	for i := range long {
		long[i] = Message{Role: "user", Content: "message body padding padding padding padding"}
	}
	messages := s.buildPrompt(&PlanRequest{JobID: "j1", UserMessage: "latest", ConversationHistory: long})

	// System prompt and the user message survive; oldest history is cut.
	assert.Equal(t, "system", messages[0].Role)
	assert.Equal(t, "latest", messages[len(messages)-1].Content)
	assert.Less(t, len(messages), 8)
}

func TestHandleBudgetExceeded(t *testing.T) {
	llm := &fakeLLM{responses: []string{"never reached"}}
	s := testScout(t, llm)
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	caller := envelope.NewSigner("pipeline", priv)

	payload := planPayload("j1", "hello")
	payload["cumulativeTokens"] = float64(200_000)
	req, err := caller.NewRequest(ComponentID, models.MsgPlanRequest, payload)
	require.NoError(t, err)

	resp, err := s.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.MsgError, resp.Type)
	assert.Equal(t, models.CodeBudgetExceeded, resp.Payload["code"])
	assert.Zero(t, llm.calls, "over-budget requests never reach the provider")
}

func TestHandleRefusesOtherMessageTypes(t *testing.T) {
	s := testScout(t, &fakeLLM{responses: []string{"x"}})
	_, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	caller := envelope.NewSigner("pipeline", priv)

	req, err := caller.NewRequest(ComponentID, models.MsgValidateRequest, map[string]any{"plan": nil})
	require.NoError(t, err)

	resp, err := s.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, models.MsgError, resp.Type)
}

func TestRequiresReroute(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"The capital of France is Paris.", false},
		{"I've gone ahead and created the file for you.", true},
		{"I have created the directory you asked for.", true},
		{"I've scheduled the meeting.", true},
		{"Your file has been created for you.", true},
		{"To create a file, use the file-manager plugin.", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, requiresReroute(tc.text), "%q", tc.text)
	}
}

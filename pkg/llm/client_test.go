package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gearbox-dev/gearbox/pkg/scout"
)

func newStreamServer(t *testing.T, lines []string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		if status != http.StatusOK {
			http.Error(w, "quota exhausted", status)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		for _, line := range lines {
			_, _ = w.Write([]byte(line + "\n\n"))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL + "/v1",
		Model:          "test-model",
		Provider:       "openai",
		ContextTokens:  8192,
		RequestTimeout: 5 * time.Second,
	})
}

func collect(t *testing.T, chunks <-chan scout.StreamChunk) (string, bool) {
	t.Helper()
	var sb strings.Builder
	final := false
	for chunk := range chunks {
		require.NoError(t, chunk.Err)
		sb.WriteString(chunk.Content)
		if chunk.IsFinal {
			final = true
		}
	}
	return sb.String(), final
}

func TestChatStreamsContentDeltas(t *testing.T) {
	srv := newStreamServer(t, []string{
		`data: {"choices":[{"delta":{"content":"Hel"}}]}`,
		`data: {"choices":[{"delta":{"content":"lo"}}]}`,
		`data: [DONE]`,
	}, http.StatusOK)

	chunks, err := newTestClient(srv.URL).Chat(context.Background(), scout.ChatRequest{
		Messages: []scout.Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)

	text, final := collect(t, chunks)
	assert.Equal(t, "Hello", text)
	assert.True(t, final)
}

func TestChatStopsOnFinishReason(t *testing.T) {
	srv := newStreamServer(t, []string{
		`data: {"choices":[{"delta":{"content":"done"}}]}`,
		`data: {"choices":[{"delta":{},"finish_reason":"stop"}]}`,
		`data: {"choices":[{"delta":{"content":"never seen"}}]}`,
	}, http.StatusOK)

	chunks, err := newTestClient(srv.URL).Chat(context.Background(), scout.ChatRequest{})
	require.NoError(t, err)

	text, final := collect(t, chunks)
	assert.Equal(t, "done", text)
	assert.True(t, final)
}

func TestChatNonOKStatusFails(t *testing.T) {
	srv := newStreamServer(t, nil, http.StatusTooManyRequests)

	_, err := newTestClient(srv.URL).Chat(context.Background(), scout.ChatRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestChatMalformedEventYieldsErrorChunk(t *testing.T) {
	srv := newStreamServer(t, []string{`data: {not json`}, http.StatusOK)

	chunks, err := newTestClient(srv.URL).Chat(context.Background(), scout.ChatRequest{})
	require.NoError(t, err)

	var streamErr error
	for chunk := range chunks {
		if chunk.Err != nil {
			streamErr = chunk.Err
		}
	}
	require.Error(t, streamErr)
	assert.Contains(t, streamErr.Error(), "malformed stream event")
}

func TestEstimateTokens(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")
	assert.Equal(t, 0, c.EstimateTokens(""))
	assert.Equal(t, 3, c.EstimateTokens("ten chars."))
	assert.Equal(t, 8192, c.MaxContextTokens())

	provider, model := c.ProviderInfo()
	assert.Equal(t, "openai", provider)
	assert.Equal(t, "test-model", model)
}

func TestLoadConfigFromEnvRequiresModel(t *testing.T) {
	t.Setenv("LLM_MODEL", "")
	_, err := LoadConfigFromEnv()
	require.Error(t, err)

	t.Setenv("LLM_MODEL", "local-model")
	t.Setenv("LLM_CONTEXT_TOKENS", "4096")
	t.Setenv("LLM_PROVIDER", "")
	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:11434/v1", cfg.BaseURL)
	assert.Equal(t, 4096, cfg.ContextTokens)
	assert.Equal(t, "openai", cfg.Provider)
}

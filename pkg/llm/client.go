// Package llm provides the HTTP provider client the planner talks to.
// It speaks the OpenAI-compatible streaming chat API, which local
// inference servers expose as well, so the runtime works against either
// a hosted provider or a model running on the same machine.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gearbox-dev/gearbox/pkg/scout"
)

const defaultContextTokens = 128_000

// Config describes the provider endpoint.
type Config struct {
	// BaseURL is the API root, e.g. http://127.0.0.1:11434/v1.
	BaseURL string
	// APIKey is sent as a bearer token when set. Local servers usually
	// need none.
	APIKey string
	// Model is the model identifier passed on every request.
	Model string
	// Provider names the upstream for call accounting, e.g. "openai" or
	// "ollama".
	Provider string
	// ContextTokens is the model's context window size.
	ContextTokens int
	// RequestTimeout bounds the whole streaming request.
	RequestTimeout time.Duration
}

// LoadConfigFromEnv reads the provider settings from the environment.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		BaseURL:        os.Getenv("LLM_BASE_URL"),
		APIKey:         os.Getenv("LLM_API_KEY"),
		Model:          os.Getenv("LLM_MODEL"),
		Provider:       os.Getenv("LLM_PROVIDER"),
		ContextTokens:  defaultContextTokens,
		RequestTimeout: 5 * time.Minute,
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://127.0.0.1:11434/v1"
	}
	if cfg.Provider == "" {
		cfg.Provider = "openai"
	}
	if cfg.Model == "" {
		return Config{}, fmt.Errorf("LLM_MODEL must be set")
	}
	if raw := os.Getenv("LLM_CONTEXT_TOKENS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid LLM_CONTEXT_TOKENS %q", raw)
		}
		cfg.ContextTokens = n
	}
	return cfg, nil
}

// Client is a streaming chat client over the OpenAI-compatible API.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a provider client.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float32       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatStreamEvent struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
		FinishReason *string `json:"finish_reason"`
	} `json:"choices"`
}

// Chat starts a streaming completion. The returned channel is closed
// after the final chunk or an error chunk.
func (c *Client) Chat(ctx context.Context, req scout.ChatRequest) (<-chan scout.StreamChunk, error) {
	body := chatRequest{
		Model:       c.cfg.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      true,
	}
	for _, m := range req.Messages {
		body.Messages = append(body.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.cfg.BaseURL, "/")+"/chat/completions", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	if c.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling provider: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	chunks := make(chan scout.StreamChunk, 16)
	go c.readStream(ctx, resp, chunks)
	return chunks, nil
}

// readStream parses server-sent events off the response body and
// forwards content deltas until [DONE] or an error.
func (c *Client) readStream(ctx context.Context, resp *http.Response, chunks chan<- scout.StreamChunk) {
	defer close(chunks)
	defer resp.Body.Close()

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64<<10), 1<<20)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			c.send(ctx, chunks, scout.StreamChunk{IsFinal: true})
			return
		}

		var event chatStreamEvent
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			c.send(ctx, chunks, scout.StreamChunk{Err: fmt.Errorf("malformed stream event: %w", err)})
			return
		}
		for _, choice := range event.Choices {
			if choice.Delta.Content != "" {
				if !c.send(ctx, chunks, scout.StreamChunk{Content: choice.Delta.Content}) {
					return
				}
			}
			if choice.FinishReason != nil && *choice.FinishReason != "" {
				c.send(ctx, chunks, scout.StreamChunk{IsFinal: true})
				return
			}
		}
	}
	if err := scanner.Err(); err != nil {
		c.send(ctx, chunks, scout.StreamChunk{Err: fmt.Errorf("reading stream: %w", err)})
		return
	}
	// Stream ended without a terminator; treat what we got as final.
	c.send(ctx, chunks, scout.StreamChunk{IsFinal: true})
}

func (c *Client) send(ctx context.Context, chunks chan<- scout.StreamChunk, chunk scout.StreamChunk) bool {
	select {
	case chunks <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

// EstimateTokens approximates the token count of a text. Four bytes per
// token is the usual rough figure for English prose.
func (c *Client) EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return len(text)/4 + 1
}

// MaxContextTokens is the provider's context window size.
func (c *Client) MaxContextTokens() int {
	return c.cfg.ContextTokens
}

// ProviderInfo identifies the configured provider and model.
func (c *Client) ProviderInfo() (string, string) {
	return c.cfg.Provider, c.cfg.Model
}

package scout

import (
	"context"
)

// Message is one turn of conversation context sent to the provider.
type Message struct {
	Role    string `json:"role"` // "system", "user", "assistant"
	Content string `json:"content"`
}

// ChatRequest is a provider-agnostic completion request.
type ChatRequest struct {
	Messages    []Message
	Temperature float32
	MaxTokens   int
}

// StreamChunk is one streamed fragment of the provider's reply.
type StreamChunk struct {
	Content    string
	IsThinking bool
	IsFinal    bool
	Err        error
}

// LLMClient is the provider contract the planner is polymorphic over.
// Concrete HTTP clients live outside the core; tests use in-memory
// fakes.
type LLMClient interface {
	// Chat starts a streaming completion. The returned channel is closed
	// after the final chunk or an error chunk.
	Chat(ctx context.Context, req ChatRequest) (<-chan StreamChunk, error)

	// EstimateTokens approximates the token count of a text.
	EstimateTokens(text string) int

	// MaxContextTokens is the provider's context window size.
	MaxContextTokens() int

	// ProviderInfo identifies the provider and model for call accounting.
	ProviderInfo() (provider, model string)
}

package provider

import "context"

// Provider abstracts an LLM chat completion backend. Each adapter handles
// its own backend protocol (Groq's OpenAI-compatible API, the Gemini API)
// internally.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Provider interface {
	// Name returns the provider identifier (e.g., "groq", "gemini").
	Name() string

	// Complete performs a single non-streaming chat completion.
	Complete(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Close releases provider resources (HTTP clients, connections).
	Close() error
}

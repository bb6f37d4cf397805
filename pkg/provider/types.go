package provider

// Message roles in the provider's conversation format.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatRequest is the backend-facing request. It contains only the
// information the provider needs, stripped of transport concerns.
type ChatRequest struct {
	// Model is the backend model identifier.
	Model string

	// System is the system prompt, sent the way each backend expects
	// (a leading system message for Groq, SystemInstruction for Gemini).
	System string

	// Messages is the conversation transcript in order.
	Messages []ChatMessage

	// Temperature overrides the backend default when set.
	Temperature *float64

	// MaxTokens caps the completion length when set.
	MaxTokens *int
}

// ChatMessage represents a single message in the conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatResponse is the backend's complete response.
type ChatResponse struct {
	// Content is the assistant's text.
	Content string

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption when the backend provides it.
	Usage Usage
}

// Usage holds token counts reported by the backend.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

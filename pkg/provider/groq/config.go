package groq

import "time"

// DefaultBaseURL is Groq's OpenAI-compatible API endpoint.
const DefaultBaseURL = "https://api.groq.com/openai/v1"

// Config holds configuration for the Groq provider adapter.
type Config struct {
	// APIKey for Groq authentication (required).
	APIKey string

	// BaseURL overrides the Groq endpoint. Defaults to DefaultBaseURL;
	// pointing it at a local mock backend is the supported dev setup.
	BaseURL string

	// Timeout for individual HTTP requests. Defaults to 120s.
	Timeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		Timeout: 120 * time.Second,
	}
}

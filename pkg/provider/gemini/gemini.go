package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/provider"
)

var errMissingAPIKey = errors.New("gemini: APIKey is required")

// GeminiProvider implements provider.Provider for Google's Gemini API.
type GeminiProvider struct {
	cfg    Config
	client *genai.Client
}

// Ensure GeminiProvider implements provider.Provider at compile time.
var _ provider.Provider = (*GeminiProvider)(nil)

// New creates a new GeminiProvider with the given configuration.
// The context is used for client initialization only.
func New(ctx context.Context, cfg Config) (*GeminiProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiProvider{
		cfg:    cfg,
		client: client,
	}, nil
}

// Name returns the provider identifier.
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// Complete performs a single chat completion against the Gemini API.
func (p *GeminiProvider) Complete(ctx context.Context, req *provider.ChatRequest) (*provider.ChatResponse, error) {
	config := &genai.GenerateContentConfig{}
	if req.Temperature != nil {
		config.Temperature = genai.Ptr(float32(*req.Temperature))
	}
	if req.MaxTokens != nil {
		config.MaxOutputTokens = int32(*req.MaxTokens)
	}
	if req.System != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.System}},
		}
	}

	result, err := p.client.Models.GenerateContent(ctx, req.Model, buildContents(req.Messages), config)
	if err != nil {
		return nil, mapError(err)
	}

	text := result.Text()
	if text == "" {
		return nil, api.NewModelError("backend returned an empty completion")
	}

	resp := &provider.ChatResponse{
		Content: text,
		Model:   req.Model,
	}
	if result.UsageMetadata != nil {
		resp.Usage = provider.Usage{
			PromptTokens:     int(result.UsageMetadata.PromptTokenCount),
			CompletionTokens: int(result.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int(result.UsageMetadata.TotalTokenCount),
		}
	}
	return resp, nil
}

// buildContents converts the transcript to Gemini contents. Assistant turns
// map to the model role, everything else to the user role.
func buildContents(messages []provider.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		role := genai.RoleUser
		if m.Role == provider.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Content, role))
	}
	return contents
}

// mapError converts a Gemini API error into an APIError. The SDK does not
// guarantee typed errors across transports, so classification falls back to
// message patterns.
func mapError(err error) *api.APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return api.NewModelError("backend request timed out")
	}
	if errors.Is(err, context.Canceled) {
		return api.NewServerError("backend request canceled")
	}

	message := err.Error()
	lower := strings.ToLower(message)
	for _, pattern := range []string{"rate limit", "quota exceeded", "too many requests", "resource_exhausted"} {
		if strings.Contains(lower, pattern) {
			return api.NewTooManyRequestsError(message)
		}
	}
	return api.NewModelError(message)
}

// Close releases provider resources. The genai client holds no connections
// that require explicit shutdown.
func (p *GeminiProvider) Close() error {
	return nil
}

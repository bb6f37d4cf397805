package groq

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/provider"
)

// GroqProvider implements provider.Provider for the Groq Cloud API, which
// serves open models over the OpenAI Chat Completions protocol.
type GroqProvider struct {
	cfg        Config
	httpClient *http.Client
	client     openai.Client
}

// Ensure GroqProvider implements provider.Provider at compile time.
var _ provider.Provider = (*GroqProvider)(nil)

// New creates a new GroqProvider with the given configuration.
// Returns an error if the configuration is invalid.
func New(cfg Config) (*GroqProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: APIKey is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	// Normalize: remove trailing slash from base URL.
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	// Apply default timeout if not set.
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}

	httpClient := &http.Client{
		Timeout: cfg.Timeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	)

	return &GroqProvider{
		cfg:        cfg,
		httpClient: httpClient,
		client:     client,
	}, nil
}

// Name returns the provider identifier.
func (p *GroqProvider) Name() string {
	return "groq"
}

// Complete performs a single chat completion against the Groq API.
func (p *GroqProvider) Complete(ctx context.Context, req *provider.ChatRequest) (*provider.ChatResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(req.Model),
		Messages: buildMessages(req),
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}
	if req.MaxTokens != nil {
		params.MaxTokens = openai.Int(int64(*req.MaxTokens))
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, mapError(err)
	}

	if len(completion.Choices) == 0 {
		return nil, api.NewModelError("backend returned no choices")
	}

	return &provider.ChatResponse{
		Content: completion.Choices[0].Message.Content,
		Model:   completion.Model,
		Usage: provider.Usage{
			PromptTokens:     int(completion.Usage.PromptTokens),
			CompletionTokens: int(completion.Usage.CompletionTokens),
			TotalTokens:      int(completion.Usage.TotalTokens),
		},
	}, nil
}

// buildMessages converts the request transcript to Chat Completions message
// unions, with the system prompt as the leading message.
func buildMessages(req *provider.ChatRequest) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, openai.SystemMessage(req.System))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case provider.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case provider.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	return messages
}

// Close releases provider resources.
func (p *GroqProvider) Close() error {
	p.httpClient.CloseIdleConnections()
	return nil
}

// Package mock provides a deterministic in-process Provider for tests and
// offline development. It never performs network I/O.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/moodreel/moodreel/pkg/provider"
)

// cannedRecommendations is the fixed completion returned when no override
// is configured. The shape matches what a real backend produces.
const cannedRecommendations = `Here are some movies you might enjoy:

- The Grand Budapest Hotel (2014)
  A concierge and his lobby boy are swept into a caper around a stolen painting. Whimsical, fast, and visually delightful.
  Matches your mood and plays well on a cozy evening.

- Paddington 2 (2017)
  A polite bear hunts for the perfect present and ends up in prison, where he wins everyone over. Warm and funny throughout.
  A safe pick for the whole household on your platform.

- Chef (2014)
  A chef quits his restaurant job and rebuilds his life around a food truck. Feel-good with great music and food.
  Light enough for your mood, and widely available to stream.`

// MockProvider implements provider.Provider with canned completions and
// records every request it receives.
type MockProvider struct {
	mu       sync.Mutex
	requests []*provider.ChatRequest

	// Response overrides the canned completion when non-empty.
	Response string

	// Err is returned from Complete when set.
	Err error
}

// Ensure MockProvider implements provider.Provider at compile time.
var _ provider.Provider = (*MockProvider)(nil)

// New creates a MockProvider that serves the canned recommendation list.
func New() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider identifier.
func (p *MockProvider) Name() string {
	return "mock"
}

// Complete records the request and returns the configured completion.
func (p *MockProvider) Complete(ctx context.Context, req *provider.ChatRequest) (*provider.ChatResponse, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := p.Response
	if content == "" {
		content = cannedRecommendations
	}

	prompt := len(strings.Fields(req.System))
	for _, m := range req.Messages {
		prompt += len(strings.Fields(m.Content))
	}
	completion := len(strings.Fields(content))

	return &provider.ChatResponse{
		Content: content,
		Model:   req.Model,
		Usage: provider.Usage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}, nil
}

// Requests returns a copy of the requests seen so far.
func (p *MockProvider) Requests() []*provider.ChatRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*provider.ChatRequest, len(p.requests))
	copy(out, p.requests)
	return out
}

// Close releases provider resources.
func (p *MockProvider) Close() error {
	return nil
}

package flow

import (
	"context"

	"github.com/moodreel/moodreel/pkg/debug"
	"github.com/moodreel/moodreel/pkg/provider"
)

// Sampling holds the completion parameters the suggestion step sends with
// every request.
type Sampling struct {
	Model       string
	Temperature *float64
	MaxTokens   *int
}

// suggestionStep asks the backend for recommendations and records the answer.
type suggestionStep struct {
	llm      provider.Provider
	sampling Sampling
}

// NewSuggestionStep returns the step performing the chat completion.
func NewSuggestionStep(llm provider.Provider, sampling Sampling) Step {
	return &suggestionStep{llm: llm, sampling: sampling}
}

func (s *suggestionStep) Name() string { return "suggestion" }

// Run sends the formatted system prompt and the closing human turn to the
// backend. The accumulated transcript stays local to the pipeline; the
// preferences reach the model through the system prompt.
func (s *suggestionStep) Run(ctx context.Context, state *State) error {
	systemPrompt := BuildSystemPrompt(state)
	debug.Trace("flow", "system prompt", "content", systemPrompt)

	resp, err := s.llm.Complete(ctx, &provider.ChatRequest{
		Model:  s.sampling.Model,
		System: systemPrompt,
		Messages: []provider.ChatMessage{
			{Role: provider.RoleUser, Content: SuggestTurn},
		},
		Temperature: s.sampling.Temperature,
		MaxTokens:   s.sampling.MaxTokens,
	})
	if err != nil {
		return err
	}

	debug.Log("providers", "completion received",
		"provider", s.llm.Name(),
		"model", resp.Model,
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"content", debug.Truncate(resp.Content, 120))
	debug.Raw("providers", resp.Content)

	state.AddAI(resp.Content)
	state.Recommendations = resp.Content
	state.ServedModel = resp.Model
	state.Usage = resp.Usage
	return nil
}

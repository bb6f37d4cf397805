package flow

import (
	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/provider"
)

// SeedMessage opens every pipeline transcript.
const SeedMessage = "I want to watch a movie"

// Role identifies who authored a transcript message.
type Role string

const (
	// RoleHuman marks messages written on the viewer's behalf.
	RoleHuman Role = "human"

	// RoleAI marks messages produced by the model.
	RoleAI Role = "ai"
)

// Message is a single transcript entry.
type Message struct {
	Role    Role
	Content string
}

// State carries the pipeline's working data. Steps mutate it in place:
// the input steps append to Messages, the suggestion step fills
// Recommendations.
type State struct {
	Mood     string
	Genres   []string
	Language string
	Platform string

	// Messages is the transcript accumulated by the steps, seeded with
	// the opening human message.
	Messages []Message

	// Recommendations holds the model's answer once the suggestion step ran.
	Recommendations string

	// ServedModel is the model that produced the completion, as reported
	// by the backend.
	ServedModel string

	// Usage reports the backend's token counts for the completion.
	Usage provider.Usage
}

// NewState builds the initial pipeline state for a validated request.
func NewState(req *api.RecommendationRequest) *State {
	return &State{
		Mood:     req.Mood,
		Genres:   req.Genres,
		Language: req.Language,
		Platform: req.Platform,
		Messages: []Message{{Role: RoleHuman, Content: SeedMessage}},
	}
}

// AddHuman appends a human-authored message to the transcript.
func (s *State) AddHuman(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleHuman, Content: content})
}

// AddAI appends a model-authored message to the transcript.
func (s *State) AddAI(content string) {
	s.Messages = append(s.Messages, Message{Role: RoleAI, Content: content})
}

// LastMessage returns the newest transcript entry, or nil when the
// transcript is empty.
func (s *State) LastMessage() *Message {
	if len(s.Messages) == 0 {
		return nil
	}
	return &s.Messages[len(s.Messages)-1]
}

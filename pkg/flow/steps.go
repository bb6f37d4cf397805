package flow

import (
	"context"
	"fmt"
	"strings"
)

// Step is a single stage of the recommendation pipeline. Run mutates the
// state; an error aborts the pipeline.
type Step interface {
	// Name returns the step identifier used in logs.
	Name() string

	// Run executes the step against the state.
	Run(ctx context.Context, state *State) error
}

// moodStep states the viewer's mood in the transcript.
type moodStep struct{}

// NewMoodStep returns the step recording the viewer's mood.
func NewMoodStep() Step { return moodStep{} }

func (moodStep) Name() string { return "input_mood" }

func (moodStep) Run(_ context.Context, state *State) error {
	state.AddHuman(fmt.Sprintf("Your mood is %s", state.Mood))
	return nil
}

// genreStep states the viewer's favourite genres in the transcript.
type genreStep struct{}

// NewGenreStep returns the step recording the viewer's genres.
func NewGenreStep() Step { return genreStep{} }

func (genreStep) Name() string { return "input_genre" }

func (genreStep) Run(_ context.Context, state *State) error {
	state.AddHuman(fmt.Sprintf("Your favourite genres are: %s", strings.Join(state.Genres, ", ")))
	return nil
}

// languageStep states the viewer's preferred language in the transcript.
type languageStep struct{}

// NewLanguageStep returns the step recording the viewer's language.
func NewLanguageStep() Step { return languageStep{} }

func (languageStep) Name() string { return "input_language" }

func (languageStep) Run(_ context.Context, state *State) error {
	state.AddHuman(fmt.Sprintf("Your preferred language is: %s", state.Language))
	return nil
}

// platformStep states the viewer's streaming platform in the transcript.
type platformStep struct{}

// NewPlatformStep returns the step recording the viewer's platform.
func NewPlatformStep() Step { return platformStep{} }

func (platformStep) Name() string { return "input_platform" }

func (platformStep) Run(_ context.Context, state *State) error {
	state.AddHuman(fmt.Sprintf("Your preferred platform is: %s", state.Platform))
	return nil
}

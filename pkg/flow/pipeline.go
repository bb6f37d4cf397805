package flow

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moodreel/moodreel/pkg/debug"
	"github.com/moodreel/moodreel/pkg/provider"
)

// Pipeline runs the recommendation steps in a fixed order.
type Pipeline struct {
	steps []Step
}

// New builds the standard five-step pipeline: the four input steps followed
// by the suggestion step backed by llm.
func New(llm provider.Provider, sampling Sampling) *Pipeline {
	return NewWithSteps(
		NewMoodStep(),
		NewGenreStep(),
		NewLanguageStep(),
		NewPlatformStep(),
		NewSuggestionStep(llm, sampling),
	)
}

// NewWithSteps builds a pipeline from an explicit step sequence.
func NewWithSteps(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Run executes the steps sequentially against the state. The output of each
// step is the input of the next; the first error aborts the run.
func (p *Pipeline) Run(ctx context.Context, state *State) error {
	if len(p.steps) == 0 {
		return fmt.Errorf("flow: no steps configured")
	}

	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		if err := step.Run(ctx, state); err != nil {
			slog.Error("pipeline step failed",
				slog.String("step", step.Name()),
				slog.String("error", err.Error()))
			return fmt.Errorf("step %s: %w", step.Name(), err)
		}

		debug.Log("flow", "step completed",
			"step", step.Name(),
			"duration_ms", time.Since(start).Milliseconds(),
			"messages", len(state.Messages))
	}

	return nil
}

// StepNames returns the step names in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}

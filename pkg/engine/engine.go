package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/debug"
	"github.com/moodreel/moodreel/pkg/flow"
	"github.com/moodreel/moodreel/pkg/observability"
	"github.com/moodreel/moodreel/pkg/provider"
	"github.com/moodreel/moodreel/pkg/transport"
)

// Engine orchestrates request processing between the transport layer and
// the recommendation pipeline. It implements transport.Recommender.
type Engine struct {
	provider provider.Provider
	pipeline *flow.Pipeline
	model    string
}

// Ensure Engine implements transport.Recommender at compile time.
var _ transport.Recommender = (*Engine)(nil)

// New creates a new Engine. The provider must not be nil.
func New(p provider.Provider, cfg Config) (*Engine, error) {
	if p == nil {
		return nil, fmt.Errorf("engine: provider must not be nil")
	}

	model := cfg.model()
	return &Engine{
		provider: p,
		pipeline: flow.New(p, flow.Sampling{
			Model:       model,
			Temperature: cfg.temperature(),
			MaxTokens:   cfg.MaxTokens,
		}),
		model: model,
	}, nil
}

// ProviderName returns the identifier of the configured backend.
func (e *Engine) ProviderName() string {
	return e.provider.Name()
}

// Recommend runs the pipeline for an already validated request and maps
// failures to the API error taxonomy. Provider errors pass through with
// their own type; anything else becomes a generic server error.
func (e *Engine) Recommend(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error) {
	state := flow.NewState(req)

	start := time.Now()
	err := e.pipeline.Run(ctx, state)
	duration := time.Since(start)

	provName := e.provider.Name()
	observability.ProviderLatency.WithLabelValues(provName, e.model).Observe(duration.Seconds())

	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(provName, e.model, "error").Inc()

		slog.Error("recommendation failed",
			slog.String("provider", provName),
			slog.String("model", e.model),
			slog.String("error", err.Error()))

		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		return nil, api.NewUpstreamError(err)
	}

	observability.ProviderRequestsTotal.WithLabelValues(provName, e.model, "success").Inc()
	observability.ProviderTokensTotal.WithLabelValues(provName, e.model, "input").Add(float64(state.Usage.PromptTokens))
	observability.ProviderTokensTotal.WithLabelValues(provName, e.model, "output").Add(float64(state.Usage.CompletionTokens))

	if state.Recommendations == "" {
		return nil, api.NewServerError("Failed to generate recommendations")
	}

	debug.Log("engine", "recommendation generated",
		"provider", provName,
		"model", state.ServedModel,
		"transcript_len", len(state.Messages),
		"duration_ms", duration.Milliseconds())

	return &api.RecommendationResponse{
		Recommendations: state.Recommendations,
		Preferences:     req.Preferences(),
	}, nil
}

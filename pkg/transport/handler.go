package transport

import (
	"context"

	"github.com/moodreel/moodreel/pkg/api"
)

// Recommender handles the core recommendation operation. It is the contract
// between the transport layer and the processing engine: the implementation
// receives a validated request and returns the recommendation response or
// an error (usually an *api.APIError).
type Recommender interface {
	Recommend(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error)
}

// RecommenderFunc is an adapter that allows using an ordinary function
// as a Recommender.
type RecommenderFunc func(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error)

// Recommend calls f(ctx, req).
func (f RecommenderFunc) Recommend(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error) {
	return f(ctx, req)
}

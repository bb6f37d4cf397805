package transport

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/moodreel/moodreel/pkg/api"
)

type requestIDKey struct{}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request ID stored in the context, or an
// empty string when none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID returns middleware that guarantees every request carries an ID.
// An ID already in the context (the HTTP adapter seeds it from the
// X-Request-ID header) is kept; otherwise a fresh one is generated.
func RequestID() Middleware {
	return func(next Recommender) Recommender {
		return RecommenderFunc(func(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error) {
			if RequestIDFromContext(ctx) == "" {
				ctx = ContextWithRequestID(ctx, newRequestID())
			}
			return next.Recommend(ctx, req)
		})
	}
}

// newRequestID returns 16 random bytes hex-encoded.
func newRequestID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

package transport

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/moodreel/moodreel/pkg/api"
)

// Recovery returns middleware that converts handler panics into server
// error responses, so one bad request cannot take the process down. The
// panic value and stack are logged at ERROR.
func Recovery() Middleware {
	return func(next Recommender) Recommender {
		return RecommenderFunc(func(ctx context.Context, req *api.RecommendationRequest) (resp *api.RecommendationResponse, err error) {
			defer func() {
				if r := recover(); r != nil {
					slog.Error("panic recovered",
						"request_id", RequestIDFromContext(ctx),
						"panic", fmt.Sprint(r),
						"stack", string(debug.Stack()))
					resp = nil
					err = api.NewServerError(fmt.Sprintf("internal server error: %v", r))
				}
			}()
			return next.Recommend(ctx, req)
		})
	}
}

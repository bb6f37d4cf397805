package transport

import (
	"context"
	"log/slog"
	"time"

	"github.com/moodreel/moodreel/pkg/api"
)

// Logging returns middleware that emits one structured log record per
// recommendation request: request ID, platform, genre count, duration, and
// the error when the request failed. HTTP-level details (status codes,
// remote address) are logged by the HTTP adapter, not here.
func Logging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Recommender) Recommender {
		return RecommenderFunc(func(ctx context.Context, req *api.RecommendationRequest) (*api.RecommendationResponse, error) {
			start := time.Now()
			resp, err := next.Recommend(ctx, req)

			attrs := []slog.Attr{
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("platform", req.Platform),
				slog.Int("genres", len(req.Genres)),
				slog.Duration("duration", time.Since(start)),
			}
			level, msg := slog.LevelInfo, "recommendation completed"
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				level, msg = slog.LevelError, "recommendation failed"
			}
			logger.LogAttrs(ctx, level, msg, attrs...)

			return resp, err
		})
	}
}

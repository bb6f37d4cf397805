package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/transport"
)

// Adapter serves the movie recommendation API over HTTP.
// It routes requests to the appropriate handler and serializes responses.
type Adapter struct {
	recommender transport.Recommender
	mux         *http.ServeMux
	config      Config
}

// Config holds configuration for the HTTP adapter.
type Config struct {
	Addr         string
	MaxBodySize  int64
	ProviderName string // reported by GET /health
	Validation   api.ValidationConfig
	Metrics      bool // expose GET /metrics
}

// DefaultConfig returns the default adapter configuration.
func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		MaxBodySize: 1 << 20, // 1 MB
		Validation:  api.DefaultValidationConfig(),
		Metrics:     true,
	}
}

// NewAdapter creates an HTTP adapter with the given Recommender and options.
// Middleware is applied to the Recommender in the given order.
func NewAdapter(rec transport.Recommender, cfg Config, middlewares ...transport.Middleware) *Adapter {
	// Apply middleware chain to the recommender.
	if len(middlewares) > 0 {
		rec = transport.Chain(middlewares...)(rec)
	}

	a := &Adapter{
		recommender: rec,
		mux:         http.NewServeMux(),
		config:      cfg,
	}

	a.mux.HandleFunc("POST /api/recommend", a.handleRecommend)
	a.mux.HandleFunc("GET /health", a.handleHealth)
	a.mux.HandleFunc("GET /{$}", a.handleRoot)
	if cfg.Metrics {
		a.mux.Handle("GET /metrics", promhttp.Handler())
	}

	return a
}

// Handler returns the http.Handler for this adapter. Use this to integrate
// with an http.Server or test with httptest. The returned handler includes
// HTTP-level middleware for request ID propagation.
func (a *Adapter) Handler() http.Handler {
	return httpRequestIDMiddleware(a.mux)
}

// httpRequestIDMiddleware is HTTP-level middleware that propagates the
// X-Request-ID header. If present in the request, it is forwarded to
// the response. After the handler runs, it checks the context for a
// request ID (set by the transport-level RequestID middleware) and adds
// it to the response headers if not already set.
func httpRequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// If client sent X-Request-ID, propagate it into context.
		if id := r.Header.Get("X-Request-ID"); id != "" {
			ctx := transport.ContextWithRequestID(r.Context(), id)
			r = r.WithContext(ctx)
		}
		// Use a response writer wrapper to capture and set the request ID
		// header before the first write.
		rw := &requestIDResponseWriter{ResponseWriter: w, r: r}
		next.ServeHTTP(rw, r)
	})
}

// requestIDResponseWriter wraps http.ResponseWriter to inject the
// X-Request-ID header before the first write.
type requestIDResponseWriter struct {
	http.ResponseWriter
	r           *http.Request
	headersSent bool
}

func (w *requestIDResponseWriter) WriteHeader(statusCode int) {
	w.ensureRequestIDHeader()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *requestIDResponseWriter) Write(b []byte) (int, error) {
	w.ensureRequestIDHeader()
	return w.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for http.NewResponseController.
func (w *requestIDResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *requestIDResponseWriter) ensureRequestIDHeader() {
	if w.headersSent {
		return
	}
	w.headersSent = true
	if id := transport.RequestIDFromContext(w.r.Context()); id != "" {
		w.ResponseWriter.Header().Set("X-Request-ID", id)
	}
}

// handleRecommend handles POST /api/recommend.
func (a *Adapter) handleRecommend(w http.ResponseWriter, r *http.Request) {
	// Validate Content-Type, ignoring parameters such as charset.
	if mt := mediaType(r.Header.Get("Content-Type")); mt != "" && mt != "application/json" {
		transport.WriteErrorResponse(w,
			api.NewInvalidRequestError("content_type", "Content-Type must be application/json"),
			http.StatusUnsupportedMediaType,
		)
		return
	}

	// Limit body size.
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxBodySize)

	// Decode request.
	var req api.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			transport.WriteErrorResponse(w,
				api.NewInvalidRequestError("body", fmt.Sprintf("request body too large (max %d bytes)", a.config.MaxBodySize)),
				http.StatusRequestEntityTooLarge,
			)
			return
		}
		transport.WriteErrorResponse(w,
			api.NewInvalidRequestError("body", "invalid JSON: "+err.Error()),
			http.StatusBadRequest,
		)
		return
	}

	if apiErr := api.ValidateRecommendationRequest(&req, a.config.Validation); apiErr != nil {
		transport.WriteAPIError(w, apiErr)
		return
	}

	resp, err := a.recommender.Recommend(r.Context(), &req)
	if err != nil {
		writeHandlerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleHealth handles GET /health. The report includes whether an LLM
// provider was configured so frontends can surface a degraded state.
func (a *Adapter) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := api.HealthStatus{
		Status:         "healthy",
		LLMInitialized: a.config.ProviderName != "",
		Provider:       a.config.ProviderName,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// handleRoot handles GET / with a service descriptor.
func (a *Adapter) handleRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(api.NewAPIInfo())
}

// mediaType strips any parameters (such as charset) from a Content-Type
// value. Media types are case-insensitive.
func mediaType(ct string) string {
	mt, _, _ := strings.Cut(ct, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

// writeHandlerError writes an error response from the recommender. APIError
// values keep their type and status mapping; anything else becomes a
// generic server error.
func writeHandlerError(w http.ResponseWriter, err error) {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		apiErr = api.NewServerError(err.Error())
	}
	transport.WriteAPIError(w, apiErr)
}

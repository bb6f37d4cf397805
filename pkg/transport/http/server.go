package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/observability"
	"github.com/moodreel/moodreel/pkg/transport"
)

// Server couples an http.Server with the transport adapter and owns the
// lifecycle from startup through graceful shutdown.
type Server struct {
	httpServer *http.Server
	adapter    *Adapter
	config     ServerConfig
	logger     *slog.Logger
}

// CORSConfig controls the cross-origin policy applied to all routes.
type CORSConfig struct {
	Enabled          bool
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
	MaxAge           int // seconds
}

// DefaultCORSConfig allows any origin. The expected deployment is a browser
// frontend served from a different port, so cross-origin POSTs must work
// out of the box; production deployments narrow AllowedOrigins.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}
}

// RateLimitConfig controls per-client request throttling.
type RateLimitConfig struct {
	Enabled  bool
	Requests int // requests allowed per window, per client IP
	Window   time.Duration
}

// ServerConfig collects every knob the transport server exposes.
type ServerConfig struct {
	Addr            string
	MaxBodySize     int64
	ShutdownTimeout time.Duration
	ProviderName    string
	Validation      api.ValidationConfig
	CORS            CORSConfig
	RateLimit       RateLimitConfig
	Metrics         bool
	Logger          *slog.Logger
}

// DefaultServerConfig returns the configuration used when no options are given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		MaxBodySize:     1 << 20, // 1 MB
		ShutdownTimeout: 30 * time.Second,
		Validation:      api.DefaultValidationConfig(),
		CORS:            DefaultCORSConfig(),
		Metrics:         true,
		Logger:          slog.Default(),
	}
}

// ServerOption adjusts one server setting.
type ServerOption func(*Server)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) ServerOption {
	return func(s *Server) { s.config.Addr = addr }
}

// WithMaxBodySize caps the accepted request body size in bytes.
func WithMaxBodySize(n int64) ServerOption {
	return func(s *Server) { s.config.MaxBodySize = n }
}

// WithShutdownTimeout bounds how long shutdown waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) ServerOption {
	return func(s *Server) { s.config.ShutdownTimeout = d }
}

// WithProviderName sets the LLM provider name reported by GET /health.
func WithProviderName(name string) ServerOption {
	return func(s *Server) { s.config.ProviderName = name }
}

// WithValidation sets the request validation limits.
func WithValidation(cfg api.ValidationConfig) ServerOption {
	return func(s *Server) { s.config.Validation = cfg }
}

// WithCORS sets the cross-origin policy.
func WithCORS(cfg CORSConfig) ServerOption {
	return func(s *Server) { s.config.CORS = cfg }
}

// WithRateLimit enables per-IP rate limiting.
func WithRateLimit(cfg RateLimitConfig) ServerOption {
	return func(s *Server) { s.config.RateLimit = cfg }
}

// WithMetrics toggles the GET /metrics endpoint.
func WithMetrics(enabled bool) ServerOption {
	return func(s *Server) { s.config.Metrics = enabled }
}

// WithLogger replaces the default structured logger.
func WithLogger(l *slog.Logger) ServerOption {
	return func(s *Server) { s.config.Logger = l; s.logger = l }
}

// NewServer creates a new transport server with the given recommender and
// options. Default middleware (recovery, request ID, logging) is applied
// automatically; CORS, rate limiting, and metrics wrap the adapter at the
// HTTP level.
func NewServer(rec transport.Recommender, opts ...ServerOption) *Server {
	s := &Server{
		config: DefaultServerConfig(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	adapterCfg := Config{
		Addr:         s.config.Addr,
		MaxBodySize:  s.config.MaxBodySize,
		ProviderName: s.config.ProviderName,
		Validation:   s.config.Validation,
		Metrics:      s.config.Metrics,
	}

	defaultMW := []transport.Middleware{
		transport.Recovery(),
		transport.RequestID(),
		transport.Logging(s.logger),
	}

	s.adapter = NewAdapter(rec, adapterCfg, defaultMW...)

	handler := observability.MetricsMiddleware(s.adapter.Handler())

	if s.config.RateLimit.Enabled {
		handler = httprate.Limit(
			s.config.RateLimit.Requests,
			s.config.RateLimit.Window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				observability.RateLimitRejectedTotal.WithLabelValues("ip").Inc()
				transport.WriteAPIError(w, api.NewTooManyRequestsError("Rate limit exceeded, try again later"))
			}),
		)(handler)
	}

	if s.config.CORS.Enabled {
		handler = cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORS.AllowedOrigins,
			AllowedMethods:   s.config.CORS.AllowedMethods,
			AllowedHeaders:   s.config.CORS.AllowedHeaders,
			AllowCredentials: s.config.CORS.AllowCredentials,
			MaxAge:           s.config.CORS.MaxAge,
		})(handler)
	}

	s.httpServer = &http.Server{
		Addr:    s.config.Addr,
		Handler: handler,
	}

	return s
}

// ListenAndServe starts the server and blocks until a shutdown signal
// (SIGINT or SIGTERM) arrives, then drains in-flight requests within the
// configured timeout.
func (s *Server) ListenAndServe() error {
	return s.serve(func() error {
		s.logger.Info("server starting", slog.String("addr", s.config.Addr))
		return s.httpServer.ListenAndServe()
	})
}

// ServeOn starts the server on an existing listener. Tests use this with a
// port-zero listener.
func (s *Server) ServeOn(ln net.Listener) error {
	return s.serve(func() error {
		return s.httpServer.Serve(ln)
	})
}

// serve runs start in the background and blocks until it fails or a
// shutdown signal arrives.
func (s *Server) serve(start func() error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down gracefully", slog.Duration("timeout", s.config.ShutdownTimeout))
	if err := s.httpServer.Shutdown(drainCtx); err != nil {
		s.logger.Error("shutdown error", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// Shutdown stops the server directly, waiting for in-flight requests until
// ctx expires. ListenAndServe and ServeOn shut down on their own when
// signaled; this is for callers managing the lifecycle themselves.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

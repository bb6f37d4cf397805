// Command server runs the moodreel movie recommendation API.
//
// Configuration is layered: built-in defaults, an optional YAML file
// (-config flag, MOODREEL_CONFIG, ./config.yaml, /etc/moodreel/config.yaml),
// then environment variables. A .env file in the working directory is
// loaded first when present. Key environment variables:
//
//	GROQ_API_KEY        - Groq API key (required when llm.provider=groq)
//	GEMINI_API_KEY      - Gemini API key (required when llm.provider=gemini)
//	MOODREEL_PROVIDER   - LLM provider: "groq", "gemini" or "mock"
//	MOODREEL_MODEL      - Model name (default: llama-3.3-70b-versatile)
//	MOODREEL_PORT       - Listen port (default: 8080)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/moodreel/moodreel/pkg/api"
	"github.com/moodreel/moodreel/pkg/config"
	"github.com/moodreel/moodreel/pkg/debug"
	"github.com/moodreel/moodreel/pkg/engine"
	"github.com/moodreel/moodreel/pkg/provider"
	"github.com/moodreel/moodreel/pkg/provider/gemini"
	"github.com/moodreel/moodreel/pkg/provider/groq"
	"github.com/moodreel/moodreel/pkg/provider/mock"
	transporthttp "github.com/moodreel/moodreel/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the real environment always wins.
	_ = godotenv.Load()

	// Apply MOODREEL_DEBUG and MOODREEL_LOG_LEVEL, including values that
	// arrived via .env.
	debug.Init("", "")

	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Create provider.
	prov, err := newProvider(cfg)
	if err != nil {
		return fmt.Errorf("creating provider: %w", err)
	}
	defer prov.Close()

	// Create engine.
	eng, err := engine.New(prov, engine.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		MaxTokens:   cfg.LLM.MaxOutputTokens,
	})
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	srv := transporthttp.NewServer(eng,
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithMaxBodySize(cfg.Server.MaxBodySize),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithProviderName(prov.Name()),
		transporthttp.WithValidation(api.ValidationConfig{
			MaxGenres:      cfg.Validation.MaxGenres,
			MaxFieldLength: cfg.Validation.MaxFieldLength,
		}),
		transporthttp.WithCORS(corsConfig(cfg)),
		transporthttp.WithRateLimit(transporthttp.RateLimitConfig{
			Enabled:  cfg.RateLimit.Requests > 0,
			Requests: cfg.RateLimit.Requests,
			Window:   cfg.RateLimit.Window,
		}),
		transporthttp.WithMetrics(cfg.Observability.Metrics.Enabled),
	)

	model := cfg.LLM.Model
	if model == "" {
		model = engine.DefaultModel
	}
	slog.Info("moodreel starting", "port", cfg.Server.Port, "provider", prov.Name(), "model", model)

	return srv.ListenAndServe()
}

// newProvider constructs the LLM provider selected by the configuration.
// The configuration is validated before this runs, so a missing API key
// for the selected provider has already been rejected.
func newProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.LLM.Provider {
	case "groq":
		return groq.New(groq.Config{
			APIKey:  cfg.LLM.Groq.APIKey,
			BaseURL: cfg.LLM.Groq.BaseURL,
			Timeout: cfg.LLM.Timeout,
		})
	case "gemini":
		return gemini.New(context.Background(), gemini.Config{
			APIKey: cfg.LLM.Gemini.APIKey,
		})
	case "mock":
		return mock.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.LLM.Provider)
	}
}

// corsConfig maps the file configuration onto the transport CORS settings,
// keeping the transport defaults for allowed methods and headers.
func corsConfig(cfg *config.Config) transporthttp.CORSConfig {
	c := transporthttp.DefaultCORSConfig()
	c.Enabled = cfg.CORS.Enabled
	if len(cfg.CORS.AllowedOrigins) > 0 {
		c.AllowedOrigins = cfg.CORS.AllowedOrigins
	}
	c.AllowCredentials = cfg.CORS.AllowCredentials
	return c
}

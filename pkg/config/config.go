// Package config provides unified configuration for the moodreel service.
//
// Configuration is loaded with a layered approach:
//  1. Built-in defaults
//  2. YAML config file (discovered or explicitly specified)
//  3. Environment variable overrides (MOODREEL_ prefix plus the
//     conventional provider key variables)
//  4. File reference resolution (_file suffix fields)
//  5. Validation
package config

import "time"

// Config holds all configuration for the moodreel service.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	LLM           LLMConfig           `yaml:"llm"`
	CORS          CORSConfig          `yaml:"cors"`
	RateLimit     RateLimitConfig     `yaml:"ratelimit"`
	Validation    ValidationConfig    `yaml:"validation"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`             // default: 8080
	MaxBodySize     int64         `yaml:"max_body_size"`    // default: 1 MB
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` // default: 30s
}

// LLMConfig holds provider selection and generation settings.
type LLMConfig struct {
	Provider        string        `yaml:"provider"`          // "groq", "gemini", or "mock", default: "groq"
	Model           string        `yaml:"model"`             // optional, provider default applies
	Temperature     *float64      `yaml:"temperature"`       // optional, default 0
	MaxOutputTokens *int          `yaml:"max_output_tokens"` // optional
	Timeout         time.Duration `yaml:"timeout"`           // backend request timeout, default: 120s
	Groq            GroqConfig    `yaml:"groq"`
	Gemini          GeminiConfig  `yaml:"gemini"`
}

// GroqConfig holds Groq-specific settings.
type GroqConfig struct {
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"` // _file variant for api_key
	BaseURL    string `yaml:"base_url"`     // default: the hosted Groq endpoint
}

// GeminiConfig holds Gemini-specific settings.
type GeminiConfig struct {
	APIKey     string `yaml:"api_key"`
	APIKeyFile string `yaml:"api_key_file"` // _file variant for api_key
}

// CORSConfig holds cross-origin settings.
type CORSConfig struct {
	Enabled          bool     `yaml:"enabled"`           // default: true
	AllowedOrigins   []string `yaml:"allowed_origins"`   // default: ["*"]
	AllowCredentials bool     `yaml:"allow_credentials"` // default: false
}

// RateLimitConfig holds per-IP throttling settings.
type RateLimitConfig struct {
	Requests int           `yaml:"requests"` // per window, 0 disables limiting
	Window   time.Duration `yaml:"window"`   // default: 1m
}

// ValidationConfig holds request validation limits.
type ValidationConfig struct {
	MaxGenres      int `yaml:"max_genres"`       // default: 20
	MaxFieldLength int `yaml:"max_field_length"` // default: 256
}

// ObservabilityConfig holds monitoring and instrumentation settings.
type ObservabilityConfig struct {
	Metrics MetricsConfig `yaml:"metrics"`
}

// MetricsConfig holds Prometheus metrics endpoint settings.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"` // default: true
}

// Defaults returns a Config with all default values filled in.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			MaxBodySize:     1 << 20, // 1 MB
			ShutdownTimeout: 30 * time.Second,
		},
		LLM: LLMConfig{
			Provider: "groq",
			Timeout:  120 * time.Second,
		},
		CORS: CORSConfig{
			Enabled:        true,
			AllowedOrigins: []string{"*"},
		},
		RateLimit: RateLimitConfig{
			Window: time.Minute,
		},
		Validation: ValidationConfig{
			MaxGenres:      20,
			MaxFieldLength: 256,
		},
		Observability: ObservabilityConfig{
			Metrics: MetricsConfig{
				Enabled: true,
			},
		},
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads configuration from a layered set of sources.
//
// The loading order is:
//  1. Built-in defaults
//  2. YAML config file (explicit path, MOODREEL_CONFIG env, ./config.yaml, /etc/moodreel/config.yaml)
//  3. Environment variable overrides
//  4. File reference resolution (_file suffix)
//  5. Validation
func Load(configPath string) (*Config, error) {
	// Start with defaults.
	cfg := Defaults()

	// Discover and load YAML config file.
	filePath := discoverConfigFile(configPath)
	if filePath != "" {
		if err := loadYAMLFile(filePath, &cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", filePath, err)
		}
	}

	// Apply environment variable overrides.
	applyEnvOverrides(&cfg)

	// Resolve _file references.
	if err := resolveFileReferences(&cfg); err != nil {
		return nil, fmt.Errorf("resolving file references: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return &cfg, nil
}

// discoverConfigFile finds the config file path using the discovery order:
// 1. Explicit configPath argument
// 2. MOODREEL_CONFIG environment variable
// 3. ./config.yaml in the current directory
// 4. /etc/moodreel/config.yaml
//
// Returns empty string if no config file is found.
func discoverConfigFile(configPath string) string {
	// Explicit path takes priority.
	if configPath != "" {
		return configPath
	}

	// Check MOODREEL_CONFIG env var.
	if envPath := os.Getenv("MOODREEL_CONFIG"); envPath != "" {
		return envPath
	}

	// Check common locations.
	candidates := []string{
		"config.yaml",
		"/etc/moodreel/config.yaml",
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// loadYAMLFile reads and parses a YAML file into the Config struct.
// Fields not present in the YAML retain their current (default) values.
func loadYAMLFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// applyEnvOverrides maps environment variables to config fields.
// MOODREEL_* variables override file values. GROQ_API_KEY and
// GEMINI_API_KEY follow the conventional names used by the provider
// SDKs and deployment tooling.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MOODREEL_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("MOODREEL_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("MOODREEL_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("MOODREEL_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.LLM.Temperature = &f
		}
	}
	if v := os.Getenv("MOODREEL_MAX_OUTPUT_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.LLM.MaxOutputTokens = &n
		}
	}
	if v := os.Getenv("MOODREEL_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.LLM.Timeout = d
		}
	}
	if v := os.Getenv("MOODREEL_GROQ_BASE_URL"); v != "" {
		cfg.LLM.Groq.BaseURL = v
	}
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		cfg.LLM.Groq.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.LLM.Gemini.APIKey = v
	}
	if v := os.Getenv("MOODREEL_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("MOODREEL_RATELIMIT_REQUESTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimit.Requests = n
		}
	}
}

// splitAndTrim splits a comma-separated list and drops empty entries.
func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveFileReferences reads _file fields and populates the corresponding value fields.
// For each field ending in _file, if the value field is empty and the file field is set,
// the file is read, whitespace is trimmed, and the value field is populated.
func resolveFileReferences(cfg *Config) error {
	// llm.groq.api_key_file -> llm.groq.api_key
	if cfg.LLM.Groq.APIKeyFile != "" && cfg.LLM.Groq.APIKey == "" {
		val, err := readSecretFile(cfg.LLM.Groq.APIKeyFile)
		if err != nil {
			return fmt.Errorf("llm.groq.api_key_file: %w", err)
		}
		cfg.LLM.Groq.APIKey = val
	}

	// llm.gemini.api_key_file -> llm.gemini.api_key
	if cfg.LLM.Gemini.APIKeyFile != "" && cfg.LLM.Gemini.APIKey == "" {
		val, err := readSecretFile(cfg.LLM.Gemini.APIKeyFile)
		if err != nil {
			return fmt.Errorf("llm.gemini.api_key_file: %w", err)
		}
		cfg.LLM.Gemini.APIKey = val
	}

	return nil
}

// readSecretFile reads a file and returns its content with surrounding whitespace trimmed.
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

package config

import (
	"errors"
	"fmt"
)

// Validate checks the configuration for required fields and valid values.
// Returns an error with a descriptive field path on failure.
func (c *Config) Validate() error {
	var errs []error

	// server.port must be positive.
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be > 0, got %d", c.Server.Port))
	}

	// server.max_body_size must be positive.
	if c.Server.MaxBodySize <= 0 {
		errs = append(errs, fmt.Errorf("server.max_body_size must be > 0, got %d", c.Server.MaxBodySize))
	}

	// llm.provider must be a known value.
	switch c.LLM.Provider {
	case "groq", "gemini", "mock":
		// valid
	default:
		errs = append(errs, fmt.Errorf("llm.provider must be \"groq\", \"gemini\", or \"mock\", got %q", c.LLM.Provider))
	}

	// The selected provider needs credentials; mock runs without any.
	switch c.LLM.Provider {
	case "groq":
		if c.LLM.Groq.APIKey == "" {
			errs = append(errs, fmt.Errorf("llm.groq.api_key is required (set GROQ_API_KEY or llm.groq.api_key_file)"))
		}
	case "gemini":
		if c.LLM.Gemini.APIKey == "" {
			errs = append(errs, fmt.Errorf("llm.gemini.api_key is required (set GEMINI_API_KEY or llm.gemini.api_key_file)"))
		}
	}

	if c.LLM.Temperature != nil && (*c.LLM.Temperature < 0 || *c.LLM.Temperature > 2) {
		errs = append(errs, fmt.Errorf("llm.temperature must be between 0 and 2, got %g", *c.LLM.Temperature))
	}

	if c.LLM.MaxOutputTokens != nil && *c.LLM.MaxOutputTokens <= 0 {
		errs = append(errs, fmt.Errorf("llm.max_output_tokens must be > 0, got %d", *c.LLM.MaxOutputTokens))
	}

	if c.RateLimit.Requests < 0 {
		errs = append(errs, fmt.Errorf("ratelimit.requests must be >= 0, got %d", c.RateLimit.Requests))
	}
	if c.RateLimit.Requests > 0 && c.RateLimit.Window <= 0 {
		errs = append(errs, fmt.Errorf("ratelimit.window must be > 0 when ratelimit.requests is set, got %v", c.RateLimit.Window))
	}

	if c.Validation.MaxGenres < 0 {
		errs = append(errs, fmt.Errorf("validation.max_genres must be >= 0, got %d", c.Validation.MaxGenres))
	}
	if c.Validation.MaxFieldLength < 0 {
		errs = append(errs, fmt.Errorf("validation.max_field_length must be >= 0, got %d", c.Validation.MaxFieldLength))
	}

	return errors.Join(errs...)
}

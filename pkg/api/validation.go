package api

import (
	"fmt"
	"strings"
)

// ValidationConfig holds configurable limits for request validation.
type ValidationConfig struct {
	MaxGenres      int
	MaxFieldLength int
}

// DefaultValidationConfig returns a ValidationConfig with sensible defaults.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		MaxGenres:      20,
		MaxFieldLength: 256,
	}
}

// ValidateRecommendationRequest checks a RecommendationRequest for validity.
// It returns an *APIError describing the first validation failure, or nil if
// the request is valid. Whitespace-only values count as empty.
func ValidateRecommendationRequest(req *RecommendationRequest, cfg ValidationConfig) *APIError {
	if len(req.Genres) == 0 {
		return NewInvalidRequestError("genres", "At least one genre must be selected")
	}

	if cfg.MaxGenres > 0 && len(req.Genres) > cfg.MaxGenres {
		return NewInvalidRequestError("genres",
			fmt.Sprintf("genres exceeds maximum of %d entries", cfg.MaxGenres))
	}

	for i, genre := range req.Genres {
		if strings.TrimSpace(genre) == "" {
			return NewInvalidRequestError("genres",
				fmt.Sprintf("genre at index %d is empty", i))
		}
		if exceeds(genre, cfg.MaxFieldLength) {
			return NewInvalidRequestError("genres",
				fmt.Sprintf("genre at index %d exceeds maximum length of %d", i, cfg.MaxFieldLength))
		}
	}

	if strings.TrimSpace(req.Mood) == "" {
		return NewInvalidRequestError("mood", "mood is required")
	}
	if exceeds(req.Mood, cfg.MaxFieldLength) {
		return NewInvalidRequestError("mood",
			fmt.Sprintf("mood exceeds maximum length of %d", cfg.MaxFieldLength))
	}

	if strings.TrimSpace(req.Language) == "" {
		return NewInvalidRequestError("language", "language is required")
	}
	if exceeds(req.Language, cfg.MaxFieldLength) {
		return NewInvalidRequestError("language",
			fmt.Sprintf("language exceeds maximum length of %d", cfg.MaxFieldLength))
	}

	if strings.TrimSpace(req.Platform) == "" {
		return NewInvalidRequestError("platform", "platform is required")
	}
	if exceeds(req.Platform, cfg.MaxFieldLength) {
		return NewInvalidRequestError("platform",
			fmt.Sprintf("platform exceeds maximum length of %d", cfg.MaxFieldLength))
	}

	return nil
}

func exceeds(s string, max int) bool {
	return max > 0 && len(s) > max
}

package api

// Version is the service version reported by the root endpoint.
const Version = "1.0.0"

// ---------------------------------------------------------------------------
// Recommendation request/response
// ---------------------------------------------------------------------------

// RecommendationRequest is the client payload for POST /api/recommend.
// All four fields describe the viewer's preferences and are required;
// see ValidateRecommendationRequest for the exact rules.
type RecommendationRequest struct {
	Mood     string   `json:"mood"`
	Genres   []string `json:"genres"`
	Language string   `json:"language"`
	Platform string   `json:"platform"`
}

// Preferences echoes the validated request fields back to the client so it
// can display what the recommendations were generated from.
type Preferences struct {
	Mood     string   `json:"mood"`
	Genres   []string `json:"genres"`
	Language string   `json:"language"`
	Platform string   `json:"platform"`
}

// Preferences returns the echo payload for this request.
func (r *RecommendationRequest) Preferences() Preferences {
	return Preferences{
		Mood:     r.Mood,
		Genres:   r.Genres,
		Language: r.Language,
		Platform: r.Platform,
	}
}

// RecommendationResponse is the success payload for POST /api/recommend.
// Recommendations holds the model's free-form recommendation text.
type RecommendationResponse struct {
	Recommendations string      `json:"recommendations"`
	Preferences     Preferences `json:"preferences"`
}

// ---------------------------------------------------------------------------
// Service endpoints
// ---------------------------------------------------------------------------

// HealthStatus is the payload for GET /health. LLMInitialized reports whether
// a recommendation backend was configured at startup.
type HealthStatus struct {
	Status         string `json:"status"`
	LLMInitialized bool   `json:"llm_initialized"`
	Provider       string `json:"provider,omitempty"`
}

// APIInfo describes the service and its endpoints for GET /.
type APIInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewAPIInfo returns the service description served at the root endpoint.
func NewAPIInfo() APIInfo {
	return APIInfo{
		Message: "Movie Recommendation API",
		Version: Version,
		Endpoints: map[string]string{
			"recommend": "/api/recommend (POST)",
			"health":    "/health (GET)",
		},
	}
}
